package crypto

import (
	"context"
	"io"
)

// AsymmetricSignerService exposes one shared RSA signer to concurrent callers.
// State changes are serialized against every other call.
type AsymmetricSignerService interface {
	// GenerateKeyPair replaces the held key pair with a fresh one.
	GenerateKeyPair(ctx context.Context) error

	// ExportPublicKey writes the public key PEM to w.
	ExportPublicKey(ctx context.Context, w io.Writer) error

	// ExportPrivateKey writes the private key PEM to w.
	ExportPrivateKey(ctx context.Context, w io.Writer) error

	// ImportPublicKey replaces the key pair with the given public key (PEM or DER).
	ImportPublicKey(ctx context.Context, data []byte) error

	// ImportPrivateKey replaces the key pair with the given private key (PEM or DER).
	ImportPrivateKey(ctx context.Context, data []byte) error

	// ImportKeyPair replaces both halves; a nil argument leaves that half absent.
	ImportKeyPair(ctx context.Context, privateKey, publicKey []byte) error

	Encrypt(ctx context.Context, r io.Reader, w io.Writer) error
	Decrypt(ctx context.Context, r io.Reader, w io.Writer) error
	Sign(ctx context.Context, r io.Reader, w io.Writer) error
	Verify(ctx context.Context, data, signature io.Reader) (bool, error)
}

// SymmetricSignerService exposes one shared AES signer to concurrent callers.
type SymmetricSignerService interface {
	// GenerateKey replaces key and IV. keySize is in bits.
	GenerateKey(ctx context.Context, keySize int, policy IVPolicy) error

	ExportKey(ctx context.Context, w io.Writer) error
	ExportIV(ctx context.Context, w io.Writer) error

	ImportKey(ctx context.Context, key []byte) error
	ImportIV(ctx context.Context, iv []byte) error
	ImportKeyAndIV(ctx context.Context, key, iv []byte) error

	// Encrypt streams r through AES-CBC into w and returns the number of bytes written.
	Encrypt(ctx context.Context, r io.Reader, w io.Writer) (int64, error)

	// Decrypt streams r through AES-CBC into w and returns the number of bytes written.
	Decrypt(ctx context.Context, r io.Reader, w io.Writer) (int64, error)
}
