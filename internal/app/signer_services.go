package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/pkg/logger"
)

// contextReader fails reads once ctx is done so long streams stop with the request.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func withContext(ctx context.Context, r io.Reader) io.Reader {
	return &contextReader{ctx: ctx, r: r}
}

// asymmetricSignerService implements the AsymmetricSignerService interface
type asymmetricSignerService struct {
	mu     sync.RWMutex
	signer crypto.AsymmetricSigner
	logger logger.Logger
}

// NewAsymmetricSignerService creates a new asymmetricSignerService instance
func NewAsymmetricSignerService(signer crypto.AsymmetricSigner, logger logger.Logger) (crypto.AsymmetricSignerService, error) {
	if signer == nil {
		return nil, fmt.Errorf("signer cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &asymmetricSignerService{signer: signer, logger: logger}, nil
}

func (s *asymmetricSignerService) GenerateKeyPair(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signer.GenerateKeyPair()
}

func (s *asymmetricSignerService) ExportPublicKey(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signer.ExportPublicKey(w)
}

func (s *asymmetricSignerService) ExportPrivateKey(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signer.ExportPrivateKey(w)
}

func (s *asymmetricSignerService) ImportPublicKey(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signer.ImportPublicKey(data)
}

func (s *asymmetricSignerService) ImportPrivateKey(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signer.ImportPrivateKey(data)
}

func (s *asymmetricSignerService) ImportKeyPair(ctx context.Context, privateKey, publicKey []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.signer.ImportKeyPair(privateKey, publicKey); err != nil {
		s.logger.Warn("RSA key pair import rejected: ", err)
		return err
	}
	return nil
}

func (s *asymmetricSignerService) Encrypt(ctx context.Context, r io.Reader, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signer.EncryptStream(withContext(ctx, r), w)
}

func (s *asymmetricSignerService) Decrypt(ctx context.Context, r io.Reader, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.signer.DecryptStream(withContext(ctx, r), w); err != nil {
		s.logger.Warn("RSA decryption failed: ", err)
		return err
	}
	return nil
}

func (s *asymmetricSignerService) Sign(ctx context.Context, r io.Reader, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signer.SignStream(withContext(ctx, r), w)
}

func (s *asymmetricSignerService) Verify(ctx context.Context, data, signature io.Reader) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signer.VerifyStream(withContext(ctx, data), withContext(ctx, signature))
}

// symmetricSignerService implements the SymmetricSignerService interface
type symmetricSignerService struct {
	mu     sync.RWMutex
	signer crypto.SymmetricSigner
	logger logger.Logger
}

// NewSymmetricSignerService creates a new symmetricSignerService instance
func NewSymmetricSignerService(signer crypto.SymmetricSigner, logger logger.Logger) (crypto.SymmetricSignerService, error) {
	if signer == nil {
		return nil, fmt.Errorf("signer cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &symmetricSignerService{signer: signer, logger: logger}, nil
}

func (s *symmetricSignerService) GenerateKey(ctx context.Context, keySize int, policy crypto.IVPolicy) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signer.GenerateKey(keySize, policy)
}

func (s *symmetricSignerService) ExportKey(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signer.ExportKey(w)
}

func (s *symmetricSignerService) ExportIV(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signer.ExportIV(w)
}

func (s *symmetricSignerService) ImportKey(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signer.ImportKey(key)
}

func (s *symmetricSignerService) ImportIV(ctx context.Context, iv []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signer.ImportIV(iv)
}

func (s *symmetricSignerService) ImportKeyAndIV(ctx context.Context, key, iv []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signer.ImportKeyAndIV(key, iv)
}

func (s *symmetricSignerService) Encrypt(ctx context.Context, r io.Reader, w io.Writer) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	written, err := s.signer.EncryptStream(withContext(ctx, r), w)
	if err != nil {
		s.logger.Warn("AES stream encryption failed after ", written, " bytes: ", err)
		return written, err
	}
	return written, nil
}

func (s *symmetricSignerService) Decrypt(ctx context.Context, r io.Reader, w io.Writer) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	written, err := s.signer.DecryptStream(withContext(ctx, r), w)
	if err != nil {
		s.logger.Warn("AES stream decryption failed after ", written, " bytes: ", err)
		return written, err
	}
	return written, nil
}
