//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/pawga/crypto/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// MockAsymmetricSignerService is a mock implementation of AsymmetricSignerService
type MockAsymmetricSignerService struct {
	mock.Mock
}

func (m *MockAsymmetricSignerService) GenerateKeyPair(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) ExportPublicKey(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) ExportPrivateKey(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) ImportPublicKey(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) ImportPrivateKey(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) ImportKeyPair(ctx context.Context, privateKey, publicKey []byte) error {
	args := m.Called(ctx, privateKey, publicKey)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) Encrypt(ctx context.Context, r io.Reader, w io.Writer) error {
	args := m.Called(ctx, r, w)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) Decrypt(ctx context.Context, r io.Reader, w io.Writer) error {
	args := m.Called(ctx, r, w)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) Sign(ctx context.Context, r io.Reader, w io.Writer) error {
	args := m.Called(ctx, r, w)
	return args.Error(0)
}

func (m *MockAsymmetricSignerService) Verify(ctx context.Context, data, signature io.Reader) (bool, error) {
	args := m.Called(ctx, data, signature)
	return args.Bool(0), args.Error(1)
}

// MockSymmetricSignerService is a mock implementation of SymmetricSignerService
type MockSymmetricSignerService struct {
	mock.Mock
}

func (m *MockSymmetricSignerService) GenerateKey(ctx context.Context, keySize int, policy crypto.IVPolicy) error {
	args := m.Called(ctx, keySize, policy)
	return args.Error(0)
}

func (m *MockSymmetricSignerService) ExportKey(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockSymmetricSignerService) ExportIV(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockSymmetricSignerService) ImportKey(ctx context.Context, key []byte) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockSymmetricSignerService) ImportIV(ctx context.Context, iv []byte) error {
	args := m.Called(ctx, iv)
	return args.Error(0)
}

func (m *MockSymmetricSignerService) ImportKeyAndIV(ctx context.Context, key, iv []byte) error {
	args := m.Called(ctx, key, iv)
	return args.Error(0)
}

func (m *MockSymmetricSignerService) Encrypt(ctx context.Context, r io.Reader, w io.Writer) (int64, error) {
	args := m.Called(ctx, r, w)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSymmetricSignerService) Decrypt(ctx context.Context, r io.Reader, w io.Writer) (int64, error) {
	args := m.Called(ctx, r, w)
	return args.Get(0).(int64), args.Error(1)
}
