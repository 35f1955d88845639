package crypto

import (
	"bytes"
	"crypto/rsa"
	"fmt"
	"strings"
)

// IVPolicy selects how an initialization vector is produced when an AES key is generated.
type IVPolicy string

const (
	// IVPolicySimple uses a fixed 16-byte constant. Reusing one IV with one key leaks
	// equality of leading plaintext blocks, so this policy is not suitable for production.
	IVPolicySimple IVPolicy = "simple"

	// IVPolicyRandom draws 16 bytes from crypto/rand.
	IVPolicyRandom IVPolicy = "random"
)

// DefaultIVPolicy is applied when the caller does not choose a policy
const DefaultIVPolicy = IVPolicyRandom

// ParseIVPolicy converts a case-insensitive policy name. An empty name yields DefaultIVPolicy.
func ParseIVPolicy(name string) (IVPolicy, error) {
	switch IVPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultIVPolicy, nil
	case IVPolicySimple:
		return IVPolicySimple, nil
	case IVPolicyRandom:
		return IVPolicyRandom, nil
	default:
		return "", fmt.Errorf("unsupported iv policy %q", name)
	}
}

// AsymmetricKeyMaterial is the RSA key pair held by an asymmetric signer.
// Either half may be absent.
type AsymmetricKeyMaterial struct {
	PublicKey  *rsa.PublicKey
	PrivateKey *rsa.PrivateKey
}

// HasPublicKey reports whether the public half is set
func (m AsymmetricKeyMaterial) HasPublicKey() bool { return m.PublicKey != nil }

// HasPrivateKey reports whether the private half is set
func (m AsymmetricKeyMaterial) HasPrivateKey() bool { return m.PrivateKey != nil }

// IsEmpty reports whether neither half is set
func (m AsymmetricKeyMaterial) IsEmpty() bool { return m.PublicKey == nil && m.PrivateKey == nil }

// Equal compares both halves by key value.
func (m AsymmetricKeyMaterial) Equal(other AsymmetricKeyMaterial) bool {
	if (m.PublicKey == nil) != (other.PublicKey == nil) {
		return false
	}
	if m.PublicKey != nil && !m.PublicKey.Equal(other.PublicKey) {
		return false
	}
	if (m.PrivateKey == nil) != (other.PrivateKey == nil) {
		return false
	}
	return m.PrivateKey == nil || m.PrivateKey.Equal(other.PrivateKey)
}

// SymmetricKeyMaterial is the AES key and IV held by a symmetric signer.
type SymmetricKeyMaterial struct {
	SecretKey []byte
	IV        []byte
}

// HasKey reports whether a secret key is set
func (m SymmetricKeyMaterial) HasKey() bool { return m.SecretKey != nil }

// HasIV reports whether an IV is set
func (m SymmetricKeyMaterial) HasIV() bool { return m.IV != nil }

// KeySize returns the secret key length in bits
func (m SymmetricKeyMaterial) KeySize() int { return len(m.SecretKey) * 8 }

// Equal compares key and IV bytes, distinguishing absent from empty.
func (m SymmetricKeyMaterial) Equal(other SymmetricKeyMaterial) bool {
	return m.HasKey() == other.HasKey() && m.HasIV() == other.HasIV() &&
		bytes.Equal(m.SecretKey, other.SecretKey) && bytes.Equal(m.IV, other.IV)
}

// Clone returns a copy that shares no backing arrays with m.
func (m SymmetricKeyMaterial) Clone() SymmetricKeyMaterial {
	return SymmetricKeyMaterial{
		SecretKey: cloneBytes(m.SecretKey),
		IV:        cloneBytes(m.IV),
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
