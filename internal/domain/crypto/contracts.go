package crypto

import (
	"io"
)

// AsymmetricSigner holds a single RSA key pair and performs operations against it.
// RSA supports both encryption/decryption AND digital signatures.
// Implementations are not safe for concurrent mutation: Generate and Import calls must be
// serialized against every other call on the same instance.
type AsymmetricSigner interface {
	// GenerateKeyPair replaces both halves with a fresh 2048-bit RSA key pair.
	GenerateKeyPair() error

	// Material returns the currently held key pair.
	Material() AsymmetricKeyMaterial

	// ExportPublicKey writes the public key as a PEM block labeled "RSA PUBLIC KEY"
	// wrapping X.509 SubjectPublicKeyInfo DER.
	ExportPublicKey(w io.Writer) error

	// ExportPrivateKey writes the private key as a PEM block labeled "RSA PRIVATE KEY"
	// wrapping PKCS#8 DER.
	ExportPrivateKey(w io.Writer) error

	// ExportKeyPair writes both halves. Both must be present.
	ExportKeyPair(privateKeyWriter, publicKeyWriter io.Writer) error

	// ExportPublicKeyBytes returns the public key as X.509 SubjectPublicKeyInfo DER.
	ExportPublicKeyBytes() ([]byte, error)

	// ExportPrivateKeyBytes returns the private key as PKCS#8 DER.
	ExportPrivateKeyBytes() ([]byte, error)

	// ImportPublicKey sets the public key from PEM or DER bytes and clears the private key.
	ImportPublicKey(data []byte) error

	// ImportPublicKeyFrom reads all of r and imports it as ImportPublicKey does.
	ImportPublicKeyFrom(r io.Reader) error

	// ImportPrivateKey sets the private key from PEM or DER bytes and clears the public key.
	ImportPrivateKey(data []byte) error

	// ImportPrivateKeyFrom reads all of r and imports it as ImportPrivateKey does.
	ImportPrivateKeyFrom(r io.Reader) error

	// ImportKeyPair replaces both halves. A nil argument leaves that half absent.
	ImportKeyPair(privateKey, publicKey []byte) error

	// Encrypt encrypts a single PKCS#1 v1.5 block with the public key.
	// The plaintext may be at most (key size in bytes - 11) bytes long.
	Encrypt(plainText []byte) ([]byte, error)

	// Decrypt decrypts exactly one RSA block with the private key.
	Decrypt(cipherText []byte) ([]byte, error)

	// Sign computes an RSASSA-PKCS1-v1_5 signature over the SHA-256 digest of data.
	Sign(data []byte) ([]byte, error)

	// Verify reports whether signature is a valid signature of data. A well-formed but
	// non-matching signature yields false and no error.
	Verify(data, signature []byte) (bool, error)

	// EncryptStream reads all of r, encrypts it as Encrypt does and writes the block to w.
	EncryptStream(r io.Reader, w io.Writer) error

	// DecryptStream reads all of r, decrypts it as Decrypt does and writes the result to w.
	DecryptStream(r io.Reader, w io.Writer) error

	// SignStream reads all of r and writes its signature to w.
	SignStream(r io.Reader, w io.Writer) error

	// VerifyStream reads data and signature fully and verifies them as Verify does.
	VerifyStream(data, signature io.Reader) (bool, error)
}

// SymmetricSigner holds a single AES key and IV and performs AES-CBC operations with PKCS#7 padding.
// NOTE: AES does NOT support signing/verification operations - use RSA for digital signatures.
// Implementations are not safe for concurrent mutation.
type SymmetricSigner interface {
	// GenerateKey replaces key and IV with a fresh AES key of keySize bits and an IV chosen by policy.
	// Supported key sizes: 128, 192, 256 bits.
	GenerateKey(keySize int, policy IVPolicy) error

	// Material returns a copy of the currently held key and IV.
	Material() SymmetricKeyMaterial

	// ExportKey writes the raw key bytes to w.
	ExportKey(w io.Writer) error

	// ExportIV writes the raw 16 IV bytes to w.
	ExportIV(w io.Writer) error

	// ExportKeyBytes returns a copy of the raw key bytes.
	ExportKeyBytes() ([]byte, error)

	// ExportIVBytes returns a copy of the raw IV bytes.
	ExportIVBytes() ([]byte, error)

	// ImportKey sets the key and leaves the IV untouched.
	ImportKey(key []byte) error

	// ImportKeyFrom reads all of r and imports it as ImportKey does.
	ImportKeyFrom(r io.Reader) error

	// ImportIV sets the IV and leaves the key untouched.
	ImportIV(iv []byte) error

	// ImportIVFrom reads all of r and imports it as ImportIV does.
	ImportIVFrom(r io.Reader) error

	// ImportKeyAndIV sets both fields.
	ImportKeyAndIV(key, iv []byte) error

	// Encrypt encrypts the whole buffer in memory.
	Encrypt(plainText []byte) ([]byte, error)

	// Decrypt decrypts the whole buffer in memory and removes the padding.
	Decrypt(cipherText []byte) ([]byte, error)

	// EncryptStream encrypts r into w in bounded chunks. The output is byte-identical to Encrypt.
	EncryptStream(r io.Reader, w io.Writer) (int64, error)

	// DecryptStream decrypts r into w in bounded chunks. The output is byte-identical to Decrypt.
	DecryptStream(r io.Reader, w io.Writer) (int64, error)
}
