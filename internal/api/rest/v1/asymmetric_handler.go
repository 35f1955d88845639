package v1

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/pkg/logger"
)

// AsymmetricHandler defines the interface for handling RSA key and cipher operations
type AsymmetricHandler interface {
	GenerateKeyPair(ctx *gin.Context)
	ExportPublicKey(ctx *gin.Context)
	ExportPrivateKey(ctx *gin.Context)
	ImportPublicKey(ctx *gin.Context)
	ImportPrivateKey(ctx *gin.Context)
	ImportKeyPair(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

// asymmetricHandler struct holds the service
type asymmetricHandler struct {
	signerService crypto.AsymmetricSignerService
	logger        logger.Logger
}

// NewAsymmetricHandler creates a new AsymmetricHandler
func NewAsymmetricHandler(signerService crypto.AsymmetricSignerService, logger logger.Logger) AsymmetricHandler {
	return &asymmetricHandler{
		signerService: signerService,
		logger:        logger,
	}
}

// GenerateKeyPair handles the POST request to replace the held key pair with a fresh one
// @Summary Generate an RSA key pair
// @Tags Asymmetric
// @Produce json
// @Success 201 {object} InfoResponse
// @Failure 500 {object} ErrorResponse
// @Router /asymmetric/keys [post]
func (handler *asymmetricHandler) GenerateKeyPair(ctx *gin.Context) {
	if err := handler.signerService.GenerateKeyPair(ctx.Request.Context()); err != nil {
		respondError(ctx, handler.logger, "generate RSA key pair", err)
		return
	}

	ctx.JSON(http.StatusCreated, InfoResponse{Message: "RSA key pair generated"})
}

// ExportPublicKey handles the GET request to download the public key
// @Summary Export the public key as PEM
// @Tags Asymmetric
// @Produce application/x-pem-file
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Router /asymmetric/keys/public [get]
func (handler *asymmetricHandler) ExportPublicKey(ctx *gin.Context) {
	var pemBuffer bytes.Buffer
	if err := handler.signerService.ExportPublicKey(ctx.Request.Context(), &pemBuffer); err != nil {
		respondError(ctx, handler.logger, "export public key", err)
		return
	}

	writePEM(ctx, crypto.KeyTypePublic+"_key.pem", pemBuffer.Bytes())
}

// ExportPrivateKey handles the GET request to download the private key
// @Summary Export the private key as PEM
// @Tags Asymmetric
// @Produce application/x-pem-file
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Router /asymmetric/keys/private [get]
func (handler *asymmetricHandler) ExportPrivateKey(ctx *gin.Context) {
	var pemBuffer bytes.Buffer
	if err := handler.signerService.ExportPrivateKey(ctx.Request.Context(), &pemBuffer); err != nil {
		respondError(ctx, handler.logger, "export private key", err)
		return
	}

	writePEM(ctx, crypto.KeyTypePrivate+"_key.pem", pemBuffer.Bytes())
}

// ImportPublicKey handles the PUT request that replaces the key pair with an uploaded public key
// @Summary Import a public key (PEM or DER)
// @Tags Asymmetric
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Public key"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /asymmetric/keys/public [put]
func (handler *asymmetricHandler) ImportPublicKey(ctx *gin.Context) {
	data, err := readFormFile(ctx, "file")
	if err != nil {
		respondError(ctx, handler.logger, "read public key", err)
		return
	}

	if err := handler.signerService.ImportPublicKey(ctx.Request.Context(), data); err != nil {
		respondError(ctx, handler.logger, "import public key", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "public key imported"})
}

// ImportPrivateKey handles the PUT request that replaces the key pair with an uploaded private key
// @Summary Import a private key (PEM or DER)
// @Tags Asymmetric
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Private key"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /asymmetric/keys/private [put]
func (handler *asymmetricHandler) ImportPrivateKey(ctx *gin.Context) {
	data, err := readFormFile(ctx, "file")
	if err != nil {
		respondError(ctx, handler.logger, "read private key", err)
		return
	}

	if err := handler.signerService.ImportPrivateKey(ctx.Request.Context(), data); err != nil {
		respondError(ctx, handler.logger, "import private key", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "private key imported"})
}

// ImportKeyPair handles the PUT request that replaces both halves of the key pair
// @Summary Import a key pair; an omitted half is left absent
// @Tags Asymmetric
// @Accept multipart/form-data
// @Produce json
// @Param private formData file false "Private key"
// @Param public formData file false "Public key"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /asymmetric/keys/pair [put]
func (handler *asymmetricHandler) ImportKeyPair(ctx *gin.Context) {
	privateKey, err := readOptionalFormFile(ctx, "private")
	if err != nil {
		respondError(ctx, handler.logger, "read private key", err)
		return
	}

	publicKey, err := readOptionalFormFile(ctx, "public")
	if err != nil {
		respondError(ctx, handler.logger, "read public key", err)
		return
	}

	if privateKey == nil && publicKey == nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "at least one of the form files private and public is required"})
		return
	}

	if err := handler.signerService.ImportKeyPair(ctx.Request.Context(), privateKey, publicKey); err != nil {
		respondError(ctx, handler.logger, "import key pair", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "key pair imported"})
}

// Encrypt handles the POST request to encrypt a single RSA block
// @Summary Encrypt with the public key (PKCS#1 v1.5)
// @Tags Asymmetric
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Plaintext, at most 245 bytes"
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /asymmetric/encrypt [post]
func (handler *asymmetricHandler) Encrypt(ctx *gin.Context) {
	handler.transform(ctx, "encrypt", "encrypted.bin", handler.signerService.Encrypt)
}

// Decrypt handles the POST request to decrypt a single RSA block
// @Summary Decrypt with the private key (PKCS#1 v1.5)
// @Tags Asymmetric
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Ciphertext block"
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /asymmetric/decrypt [post]
func (handler *asymmetricHandler) Decrypt(ctx *gin.Context) {
	handler.transform(ctx, "decrypt", "decrypted.bin", handler.signerService.Decrypt)
}

// Sign handles the POST request to sign the uploaded file
// @Summary Sign with the private key (RSASSA-PKCS1-v1_5, SHA-256)
// @Tags Asymmetric
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Data to sign"
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Router /asymmetric/sign [post]
func (handler *asymmetricHandler) Sign(ctx *gin.Context) {
	handler.transform(ctx, "sign", "signature.bin", handler.signerService.Sign)
}

// Verify handles the POST request to verify a signature
// @Summary Verify a signature with the public key
// @Tags Asymmetric
// @Accept multipart/form-data
// @Produce json
// @Param data formData file true "Signed data"
// @Param signature formData file true "Signature"
// @Success 200 {object} VerifyResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /asymmetric/verify [post]
func (handler *asymmetricHandler) Verify(ctx *gin.Context) {
	data, err := openFormFile(ctx, "data")
	if err != nil {
		respondError(ctx, handler.logger, "read data", err)
		return
	}
	defer data.Close()

	signature, err := openFormFile(ctx, "signature")
	if err != nil {
		respondError(ctx, handler.logger, "read signature", err)
		return
	}
	defer signature.Close()

	valid, err := handler.signerService.Verify(ctx.Request.Context(), data, signature)
	if err != nil {
		respondError(ctx, handler.logger, "verify signature", err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

type streamOperation func(ctx context.Context, r io.Reader, w io.Writer) error

// transform runs a single-block RSA operation over the form file "file". RSA output is
// one block, so it is buffered and the status can reflect the outcome.
func (handler *asymmetricHandler) transform(ctx *gin.Context, action, filename string, op streamOperation) {
	file, err := openFormFile(ctx, "file")
	if err != nil {
		respondError(ctx, handler.logger, "read file", err)
		return
	}
	defer file.Close()

	var out bytes.Buffer
	if err := op(ctx.Request.Context(), file, &out); err != nil {
		respondError(ctx, handler.logger, action, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "application/octet-stream", out.Bytes())
}

func writePEM(ctx *gin.Context, filename string, pemBytes []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "application/x-pem-file", pemBytes)
}
