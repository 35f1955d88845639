package crypto

// AlgorithmAES represents the AES encryption algorithm
const AlgorithmAES = "AES"

// AlgorithmRSA represents the RSA encryption/signature algorithm
const AlgorithmRSA = "RSA"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// KeyTypeSymmetric represents a symmetric key
const KeyTypeSymmetric = "symmetric"

// RSAKeySize is the modulus size in bits of every generated RSA key pair
const RSAKeySize = 2048

// RSAPKCS1v15Overhead is the number of bytes PKCS#1 v1.5 encryption padding takes from a block
const RSAPKCS1v15Overhead = 11

// AESKeySize128 is the 128-bit AES key size in bits
const AESKeySize128 = 128

// AESKeySize192 is the 192-bit AES key size in bits
const AESKeySize192 = 192

// AESKeySize256 is the 256-bit AES key size in bits
const AESKeySize256 = 256

// DefaultAESKeySize is used when no key size is requested
const DefaultAESKeySize = AESKeySize256

// IVSize is the AES-CBC initialization vector length in bytes
const IVSize = 16

// DefaultChunkSize is the number of bytes read per step by the streaming cipher runner
const DefaultChunkSize = 256

// PEM labels of exported RSA keys. The block payloads are X.509
// SubjectPublicKeyInfo and PKCS#8 DER respectively; the labels are kept for
// compatibility with previously exported files.
const (
	PEMLabelPublicKey  = "RSA PUBLIC KEY"
	PEMLabelPrivateKey = "RSA PRIVATE KEY"
)
