package cryptography

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"

	cryptoDomain "github.com/pawga/crypto/internal/domain/crypto"
)

// EncodePublicKey returns the public key as X.509 SubjectPublicKeyInfo DER.
func EncodePublicKey(publicKey *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return der, nil
}

// EncodePrivateKey returns the private key as PKCS#8 DER.
func EncodePrivateKey(privateKey *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return der, nil
}

// DecodePublicKey parses X.509 SubjectPublicKeyInfo DER holding an RSA key.
func DecodePublicKey(der []byte) (*rsa.PublicKey, error) {
	pubKeyInterface, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse public key: %v", cryptoDomain.ErrDecode, err)
	}

	publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type RSA", cryptoDomain.ErrDecode)
	}
	return publicKey, nil
}

// DecodePrivateKey parses PKCS#8 DER holding an RSA key.
func DecodePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse private key: %v", cryptoDomain.ErrDecode, err)
	}

	privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type RSA", cryptoDomain.ErrDecode)
	}
	return privateKey, nil
}

// WritePEM wraps der in a PEM block with the given label and writes it to w.
func WritePEM(w io.Writer, label string, der []byte) error {
	if err := pem.Encode(w, &pem.Block{Type: label, Bytes: der}); err != nil {
		return fmt.Errorf("failed to encode %s: %w", label, err)
	}
	return nil
}

// ReadPEM extracts the label and payload of the single PEM block in data.
// Input without a block, or with more than one block, fails with ErrDecode.
func ReadPEM(data []byte) (string, []byte, error) {
	block, rest := pem.Decode(data)
	if block == nil {
		return "", nil, fmt.Errorf("%w: failed to parse PEM block", cryptoDomain.ErrDecode)
	}
	if next, _ := pem.Decode(rest); next != nil {
		return "", nil, fmt.Errorf("%w: expected a single PEM block, found another %q block", cryptoDomain.ErrDecode, next.Type)
	}
	return block.Type, block.Bytes, nil
}

// pemLeadingSpace is stripped before PEM detection; pem.Decode only finds a
// BEGIN boundary at the start of a line.
const pemLeadingSpace = " \t\r\n"

// isPEM reports whether data starts with a PEM boundary.
func isPEM(data []byte) bool {
	return bytes.HasPrefix(data, []byte("-----BEGIN "))
}

// decodeKeyInput returns the DER payload of data, unwrapping a PEM block when present.
// A PEM block must carry one of the accepted labels.
func decodeKeyInput(data []byte, acceptedLabels ...string) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty key input", cryptoDomain.ErrDecode)
	}
	trimmed := bytes.TrimLeft(data, pemLeadingSpace)
	if !isPEM(trimmed) {
		return data, nil
	}

	label, der, err := ReadPEM(trimmed)
	if err != nil {
		return nil, err
	}
	for _, accepted := range acceptedLabels {
		if label == accepted {
			return der, nil
		}
	}
	return nil, fmt.Errorf("%w: unexpected PEM label %q", cryptoDomain.ErrDecode, label)
}

// DecodePublicKeyInput parses a public key given either as a PEM block or as raw DER.
func DecodePublicKeyInput(data []byte) (*rsa.PublicKey, error) {
	der, err := decodeKeyInput(data, cryptoDomain.PEMLabelPublicKey, "PUBLIC KEY")
	if err != nil {
		return nil, err
	}
	return DecodePublicKey(der)
}

// DecodePrivateKeyInput parses a private key given either as a PEM block or as raw DER.
func DecodePrivateKeyInput(data []byte) (*rsa.PrivateKey, error) {
	der, err := decodeKeyInput(data, cryptoDomain.PEMLabelPrivateKey, "PRIVATE KEY")
	if err != nil {
		return nil, err
	}
	return DecodePrivateKey(der)
}

// DecodeSymmetricKey copies raw key bytes. The length is validated when a cipher is built.
func DecodeSymmetricKey(data []byte) []byte {
	return cloneNonNil(data)
}

// DecodeIV copies raw IV bytes. The length is validated when a cipher is built.
func DecodeIV(data []byte) []byte {
	return cloneNonNil(data)
}

func cloneNonNil(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
