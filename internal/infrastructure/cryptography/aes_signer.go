package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"

	cryptoDomain "github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/pkg/logger"
)

// simpleIV is the fixed IV of IVPolicySimple.
var simpleIV = [cryptoDomain.IVSize]byte{
	0x11, 0x2E, 0x38, 0x4F, 0x5D, 0x63, 0x1F, 0x41,
	0x22, 0x3F, 0x49, 0x5D, 0x67, 0x36, 0x77, 0x4F,
}

// aesSigner struct that implements the SymmetricSigner interface
type aesSigner struct {
	material  cryptoDomain.SymmetricKeyMaterial
	chunkSize int
	logger    logger.Logger
}

// AESSignerOption configures an AES signer
type AESSignerOption func(*aesSigner)

// WithChunkSize sets the number of bytes the streaming methods read per step.
// Values below 1 keep the default.
func WithChunkSize(chunkSize int) AESSignerOption {
	return func(s *aesSigner) {
		if chunkSize > 0 {
			s.chunkSize = chunkSize
		}
	}
}

// NewAESSigner creates an AES signer without key material.
func NewAESSigner(logger logger.Logger, opts ...AESSignerOption) (cryptoDomain.SymmetricSigner, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	signer := &aesSigner{
		chunkSize: cryptoDomain.DefaultChunkSize,
		logger:    logger.With("component", "aes-signer"),
	}
	for _, opt := range opts {
		opt(signer)
	}
	return signer, nil
}

// GenerateIV returns a fresh IV for the given policy.
func GenerateIV(policy cryptoDomain.IVPolicy) ([]byte, error) {
	switch policy {
	case cryptoDomain.IVPolicySimple:
		iv := simpleIV
		return iv[:], nil
	case cryptoDomain.IVPolicyRandom:
		iv := make([]byte, cryptoDomain.IVSize)
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return nil, fmt.Errorf("failed to generate IV: %w", err)
		}
		return iv, nil
	default:
		return nil, fmt.Errorf("unsupported iv policy %q", policy)
	}
}

func (s *aesSigner) GenerateKey(keySize int, policy cryptoDomain.IVPolicy) error {
	switch keySize {
	case cryptoDomain.AESKeySize128, cryptoDomain.AESKeySize192, cryptoDomain.AESKeySize256:
	default:
		return fmt.Errorf("%w: invalid AES key size %d bits, supported sizes are 128, 192 and 256", cryptoDomain.ErrCipher, keySize)
	}

	key := make([]byte, keySize/8)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return fmt.Errorf("failed to generate AES key: %w", err)
	}

	iv, err := GenerateIV(policy)
	if err != nil {
		return err
	}

	s.material = cryptoDomain.SymmetricKeyMaterial{SecretKey: key, IV: iv}
	s.logger.Info("Generated AES-", keySize, " key with ", string(policy), " IV")
	return nil
}

func (s *aesSigner) Material() cryptoDomain.SymmetricKeyMaterial {
	return s.material.Clone()
}

func (s *aesSigner) secretKey() ([]byte, error) {
	if !s.material.HasKey() {
		return nil, fmt.Errorf("%w: the secret key is uninitialized", cryptoDomain.ErrUninitializedKey)
	}
	return s.material.SecretKey, nil
}

func (s *aesSigner) iv() ([]byte, error) {
	if !s.material.HasIV() {
		return nil, fmt.Errorf("%w: the IV is uninitialized", cryptoDomain.ErrUninitializedKey)
	}
	return s.material.IV, nil
}

func (s *aesSigner) keyAndIV() ([]byte, []byte, error) {
	key, err := s.secretKey()
	if err != nil {
		return nil, nil, err
	}
	iv, err := s.iv()
	if err != nil {
		return nil, nil, err
	}
	return key, iv, nil
}

func (s *aesSigner) ExportKeyBytes() ([]byte, error) {
	key, err := s.secretKey()
	if err != nil {
		return nil, err
	}
	return cloneNonNil(key), nil
}

func (s *aesSigner) ExportIVBytes() ([]byte, error) {
	iv, err := s.iv()
	if err != nil {
		return nil, err
	}
	return cloneNonNil(iv), nil
}

func (s *aesSigner) ExportKey(w io.Writer) error {
	key, err := s.secretKey()
	if err != nil {
		return err
	}
	if _, err := w.Write(key); err != nil {
		return fmt.Errorf("failed to write secret key: %w", err)
	}
	return nil
}

func (s *aesSigner) ExportIV(w io.Writer) error {
	iv, err := s.iv()
	if err != nil {
		return err
	}
	if _, err := w.Write(iv); err != nil {
		return fmt.Errorf("failed to write IV: %w", err)
	}
	return nil
}

func (s *aesSigner) ImportKey(key []byte) error {
	s.material = cryptoDomain.SymmetricKeyMaterial{
		SecretKey: DecodeSymmetricKey(key),
		IV:        s.material.IV,
	}
	s.logger.Info("Imported AES key")
	return nil
}

func (s *aesSigner) ImportKeyFrom(r io.Reader) error {
	key, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read secret key: %w", err)
	}
	return s.ImportKey(key)
}

func (s *aesSigner) ImportIV(iv []byte) error {
	s.material = cryptoDomain.SymmetricKeyMaterial{
		SecretKey: s.material.SecretKey,
		IV:        DecodeIV(iv),
	}
	s.logger.Info("Imported AES IV")
	return nil
}

func (s *aesSigner) ImportIVFrom(r io.Reader) error {
	iv, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read IV: %w", err)
	}
	return s.ImportIV(iv)
}

func (s *aesSigner) ImportKeyAndIV(key, iv []byte) error {
	s.material = cryptoDomain.SymmetricKeyMaterial{
		SecretKey: DecodeSymmetricKey(key),
		IV:        DecodeIV(iv),
	}
	s.logger.Info("Imported AES key and IV")
	return nil
}

func (s *aesSigner) Encrypt(plainText []byte) ([]byte, error) {
	key, iv, err := s.keyAndIV()
	if err != nil {
		return nil, err
	}

	c, err := NewCBCEncrypter(key, iv)
	if err != nil {
		return nil, err
	}

	cipherText, err := processAll(c, plainText)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AES encryption succeeded")
	return cipherText, nil
}

func (s *aesSigner) Decrypt(cipherText []byte) ([]byte, error) {
	key, iv, err := s.keyAndIV()
	if err != nil {
		return nil, err
	}

	c, err := NewCBCDecrypter(key, iv)
	if err != nil {
		return nil, err
	}

	plainText, err := processAll(c, cipherText)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AES decryption succeeded")
	return plainText, nil
}

func (s *aesSigner) EncryptStream(r io.Reader, w io.Writer) (int64, error) {
	key, iv, err := s.keyAndIV()
	if err != nil {
		return 0, err
	}

	c, err := NewCBCEncrypter(key, iv)
	if err != nil {
		return 0, err
	}

	written, err := RunStream(c, s.chunkSize, r, w)
	if err != nil {
		return written, err
	}

	s.logger.Info("AES stream encryption succeeded, wrote ", written, " bytes")
	return written, nil
}

func (s *aesSigner) DecryptStream(r io.Reader, w io.Writer) (int64, error) {
	key, iv, err := s.keyAndIV()
	if err != nil {
		return 0, err
	}

	c, err := NewCBCDecrypter(key, iv)
	if err != nil {
		return 0, err
	}

	written, err := RunStream(c, s.chunkSize, r, w)
	if err != nil {
		return written, err
	}

	s.logger.Info("AES stream decryption succeeded, wrote ", written, " bytes")
	return written, nil
}
