package crypto

import "errors"

// Error kinds returned by signers. Use errors.Is to classify a returned error.
var (
	// ErrUninitializedKey is returned when an operation needs key material that has not been generated or imported.
	ErrUninitializedKey = errors.New("key material is uninitialized")

	// ErrDecode is returned when imported bytes are not a valid PEM block or encoded key.
	ErrDecode = errors.New("failed to decode key material")

	// ErrCipher is returned when the cipher rejects an operation, e.g. oversized RSA
	// plaintext, bad block size or padding, malformed signature or wrong key length.
	ErrCipher = errors.New("cipher operation failed")
)
