package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"io"

	cryptoDomain "github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/pkg/logger"
)

// rsaSigner struct that implements the AsymmetricSigner interface
type rsaSigner struct {
	material cryptoDomain.AsymmetricKeyMaterial
	logger   logger.Logger
}

// NewRSASigner creates an RSA signer without key material. Call GenerateKeyPair or one of
// the import methods before any cipher operation.
func NewRSASigner(logger logger.Logger) (cryptoDomain.AsymmetricSigner, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &rsaSigner{
		logger: logger.With("component", "rsa-signer"),
	}, nil
}

func (r *rsaSigner) GenerateKeyPair() error {
	privateKey, err := rsa.GenerateKey(rand.Reader, cryptoDomain.RSAKeySize)
	if err != nil {
		return fmt.Errorf("%w: failed to generate RSA keys: %v", cryptoDomain.ErrCipher, err)
	}

	r.material = cryptoDomain.AsymmetricKeyMaterial{
		PublicKey:  &privateKey.PublicKey,
		PrivateKey: privateKey,
	}
	r.logger.Info("Generated RSA key pair")
	return nil
}

func (r *rsaSigner) Material() cryptoDomain.AsymmetricKeyMaterial {
	return r.material
}

func (r *rsaSigner) publicKey() (*rsa.PublicKey, error) {
	if r.material.PublicKey == nil {
		return nil, fmt.Errorf("%w: the public key is uninitialized", cryptoDomain.ErrUninitializedKey)
	}
	return r.material.PublicKey, nil
}

func (r *rsaSigner) privateKey() (*rsa.PrivateKey, error) {
	if r.material.PrivateKey == nil {
		return nil, fmt.Errorf("%w: the private key is uninitialized", cryptoDomain.ErrUninitializedKey)
	}
	return r.material.PrivateKey, nil
}

func (r *rsaSigner) ExportPublicKeyBytes() ([]byte, error) {
	publicKey, err := r.publicKey()
	if err != nil {
		return nil, err
	}
	return EncodePublicKey(publicKey)
}

func (r *rsaSigner) ExportPrivateKeyBytes() ([]byte, error) {
	privateKey, err := r.privateKey()
	if err != nil {
		return nil, err
	}
	return EncodePrivateKey(privateKey)
}

func (r *rsaSigner) ExportPublicKey(w io.Writer) error {
	der, err := r.ExportPublicKeyBytes()
	if err != nil {
		return err
	}
	return WritePEM(w, cryptoDomain.PEMLabelPublicKey, der)
}

func (r *rsaSigner) ExportPrivateKey(w io.Writer) error {
	der, err := r.ExportPrivateKeyBytes()
	if err != nil {
		return err
	}
	return WritePEM(w, cryptoDomain.PEMLabelPrivateKey, der)
}

func (r *rsaSigner) ExportKeyPair(privateKeyWriter, publicKeyWriter io.Writer) error {
	if _, err := r.privateKey(); err != nil {
		return err
	}
	if _, err := r.publicKey(); err != nil {
		return err
	}
	if err := r.ExportPrivateKey(privateKeyWriter); err != nil {
		return err
	}
	return r.ExportPublicKey(publicKeyWriter)
}

func (r *rsaSigner) ImportPublicKey(data []byte) error {
	publicKey, err := DecodePublicKeyInput(data)
	if err != nil {
		return err
	}

	r.material = cryptoDomain.AsymmetricKeyMaterial{PublicKey: publicKey}
	r.logger.Info("Imported RSA public key")
	return nil
}

func (r *rsaSigner) ImportPublicKeyFrom(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("unable to read public key: %w", err)
	}
	return r.ImportPublicKey(data)
}

func (r *rsaSigner) ImportPrivateKey(data []byte) error {
	privateKey, err := DecodePrivateKeyInput(data)
	if err != nil {
		return err
	}

	r.material = cryptoDomain.AsymmetricKeyMaterial{PrivateKey: privateKey}
	r.logger.Info("Imported RSA private key")
	return nil
}

func (r *rsaSigner) ImportPrivateKeyFrom(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("unable to read private key: %w", err)
	}
	return r.ImportPrivateKey(data)
}

func (r *rsaSigner) ImportKeyPair(privateKeyData, publicKeyData []byte) error {
	var material cryptoDomain.AsymmetricKeyMaterial

	if privateKeyData != nil {
		privateKey, err := DecodePrivateKeyInput(privateKeyData)
		if err != nil {
			return err
		}
		material.PrivateKey = privateKey
	}

	if publicKeyData != nil {
		publicKey, err := DecodePublicKeyInput(publicKeyData)
		if err != nil {
			return err
		}
		material.PublicKey = publicKey
	}

	r.material = material
	r.logger.Info("Imported RSA key pair")
	return nil
}

// Encrypt does not split the input into several blocks; plaintext longer than
// the PKCS#1 v1.5 limit is rejected.
func (r *rsaSigner) Encrypt(plainText []byte) ([]byte, error) {
	publicKey, err := r.publicKey()
	if err != nil {
		return nil, err
	}

	maxSize := publicKey.Size() - cryptoDomain.RSAPKCS1v15Overhead
	if len(plainText) > maxSize {
		return nil, fmt.Errorf("%w: plaintext of %d bytes exceeds the maximum of %d bytes", cryptoDomain.ErrCipher, len(plainText), maxSize)
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, plainText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encrypt data: %v", cryptoDomain.ErrCipher, err)
	}

	r.logger.Info("RSA encryption succeeded")
	return encrypted, nil
}

func (r *rsaSigner) Decrypt(cipherText []byte) ([]byte, error) {
	privateKey, err := r.privateKey()
	if err != nil {
		return nil, err
	}

	if len(cipherText) != privateKey.Size() {
		return nil, fmt.Errorf("%w: ciphertext must be exactly one %d byte block, got %d bytes", cryptoDomain.ErrCipher, privateKey.Size(), len(cipherText))
	}

	decrypted, err := rsa.DecryptPKCS1v15(nil, privateKey, cipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data: %v", cryptoDomain.ErrCipher, err)
	}

	r.logger.Info("RSA decryption succeeded")
	return decrypted, nil
}

func (r *rsaSigner) Sign(data []byte) ([]byte, error) {
	privateKey, err := r.privateKey()
	if err != nil {
		return nil, err
	}

	hashed := sha256.Sum256(data)

	signature, err := rsa.SignPKCS1v15(nil, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign data: %v", cryptoDomain.ErrCipher, err)
	}

	r.logger.Info("RSA signing succeeded")
	return signature, nil
}

func (r *rsaSigner) Verify(data, signature []byte) (bool, error) {
	publicKey, err := r.publicKey()
	if err != nil {
		return false, err
	}

	if len(signature) != publicKey.Size() {
		return false, fmt.Errorf("%w: signature must be %d bytes, got %d", cryptoDomain.ErrCipher, publicKey.Size(), len(signature))
	}

	hashed := sha256.Sum256(data)

	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature); err != nil {
		r.logger.Info("RSA signature did not match")
		return false, nil
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

func (r *rsaSigner) EncryptStream(reader io.Reader, w io.Writer) error {
	if _, err := r.publicKey(); err != nil {
		return err
	}
	return transformAll(reader, w, r.Encrypt)
}

func (r *rsaSigner) DecryptStream(reader io.Reader, w io.Writer) error {
	if _, err := r.privateKey(); err != nil {
		return err
	}
	return transformAll(reader, w, r.Decrypt)
}

func (r *rsaSigner) SignStream(reader io.Reader, w io.Writer) error {
	if _, err := r.privateKey(); err != nil {
		return err
	}
	return transformAll(reader, w, r.Sign)
}

func (r *rsaSigner) VerifyStream(data, signature io.Reader) (bool, error) {
	if _, err := r.publicKey(); err != nil {
		return false, err
	}

	content, err := io.ReadAll(data)
	if err != nil {
		return false, fmt.Errorf("unable to read data: %w", err)
	}
	sig, err := io.ReadAll(signature)
	if err != nil {
		return false, fmt.Errorf("unable to read signature: %w", err)
	}
	return r.Verify(content, sig)
}

// transformAll reads the whole input, applies op and writes the result. RSA operates on
// a single block, so there is nothing to gain from chunking.
func transformAll(r io.Reader, w io.Writer, op func([]byte) ([]byte, error)) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	output, err := op(input)
	if err != nil {
		return err
	}

	if _, err := w.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
