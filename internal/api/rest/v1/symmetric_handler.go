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

// SymmetricHandler defines the interface for handling AES key and cipher operations
type SymmetricHandler interface {
	GenerateKey(ctx *gin.Context)
	ExportKey(ctx *gin.Context)
	ExportIV(ctx *gin.Context)
	ImportKey(ctx *gin.Context)
	ImportIV(ctx *gin.Context)
	ImportKeyAndIV(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// symmetricHandler struct holds the service
type symmetricHandler struct {
	signerService crypto.SymmetricSignerService
	logger        logger.Logger
}

// NewSymmetricHandler creates a new SymmetricHandler
func NewSymmetricHandler(signerService crypto.SymmetricSignerService, logger logger.Logger) SymmetricHandler {
	return &symmetricHandler{
		signerService: signerService,
		logger:        logger,
	}
}

// GenerateKey handles the POST request to replace the held AES key and IV
// @Summary Generate an AES key and IV
// @Description An empty body generates an AES-256 key with a random IV.
// @Tags Symmetric
// @Accept json
// @Produce json
// @Param requestBody body GenerateSymmetricKeyRequest false "Key size and IV policy"
// @Success 201 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /symmetric/keys [post]
func (handler *symmetricHandler) GenerateKey(ctx *gin.Context) {
	var request GenerateSymmetricKeyRequest

	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid key data: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	policy := crypto.IVPolicy(request.IVPolicy)
	if err := handler.signerService.GenerateKey(ctx.Request.Context(), request.KeySize, policy); err != nil {
		respondError(ctx, handler.logger, "generate AES key", err)
		return
	}

	ctx.JSON(http.StatusCreated, InfoResponse{
		Message: fmt.Sprintf("AES-%d key generated with %s IV", request.KeySize, policy),
	})
}

// ExportKey handles the GET request to download the raw AES key
// @Summary Export the raw AES key
// @Tags Symmetric
// @Produce application/octet-stream
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Router /symmetric/keys [get]
func (handler *symmetricHandler) ExportKey(ctx *gin.Context) {
	handler.export(ctx, "export AES key", crypto.KeyTypeSymmetric+"_key.bin", handler.signerService.ExportKey)
}

// ExportIV handles the GET request to download the raw IV
// @Summary Export the raw IV
// @Tags Symmetric
// @Produce application/octet-stream
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Router /symmetric/iv [get]
func (handler *symmetricHandler) ExportIV(ctx *gin.Context) {
	handler.export(ctx, "export IV", "aes.iv", handler.signerService.ExportIV)
}

// ImportKey handles the PUT request to replace the AES key, leaving the IV untouched
// @Summary Import a raw AES key
// @Tags Symmetric
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Raw key bytes"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /symmetric/keys [put]
func (handler *symmetricHandler) ImportKey(ctx *gin.Context) {
	key, err := readFormFile(ctx, "file")
	if err != nil {
		respondError(ctx, handler.logger, "read AES key", err)
		return
	}

	if err := handler.signerService.ImportKey(ctx.Request.Context(), key); err != nil {
		respondError(ctx, handler.logger, "import AES key", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "AES key imported"})
}

// ImportIV handles the PUT request to replace the IV, leaving the key untouched
// @Summary Import a raw IV
// @Tags Symmetric
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Raw IV bytes"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /symmetric/iv [put]
func (handler *symmetricHandler) ImportIV(ctx *gin.Context) {
	iv, err := readFormFile(ctx, "file")
	if err != nil {
		respondError(ctx, handler.logger, "read IV", err)
		return
	}

	if err := handler.signerService.ImportIV(ctx.Request.Context(), iv); err != nil {
		respondError(ctx, handler.logger, "import IV", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "IV imported"})
}

// ImportKeyAndIV handles the PUT request to replace both the AES key and the IV
// @Summary Import a raw AES key and IV
// @Tags Symmetric
// @Accept multipart/form-data
// @Produce json
// @Param key formData file true "Raw key bytes"
// @Param iv formData file true "Raw IV bytes"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /symmetric/keys-iv [put]
func (handler *symmetricHandler) ImportKeyAndIV(ctx *gin.Context) {
	key, err := readFormFile(ctx, "key")
	if err != nil {
		respondError(ctx, handler.logger, "read AES key", err)
		return
	}

	iv, err := readFormFile(ctx, "iv")
	if err != nil {
		respondError(ctx, handler.logger, "read IV", err)
		return
	}

	if err := handler.signerService.ImportKeyAndIV(ctx.Request.Context(), key, iv); err != nil {
		respondError(ctx, handler.logger, "import AES key and IV", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "AES key and IV imported"})
}

// Encrypt handles the POST request to encrypt the uploaded file with AES-CBC
// @Summary Encrypt a file with AES-CBC and PKCS#7 padding
// @Tags Symmetric
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Plaintext"
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /symmetric/encrypt [post]
func (handler *symmetricHandler) Encrypt(ctx *gin.Context) {
	handler.stream(ctx, "encrypt", "encrypted.bin", handler.signerService.Encrypt)
}

// Decrypt handles the POST request to decrypt the uploaded file with AES-CBC
// @Summary Decrypt a file with AES-CBC and remove the PKCS#7 padding
// @Tags Symmetric
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Ciphertext"
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /symmetric/decrypt [post]
func (handler *symmetricHandler) Decrypt(ctx *gin.Context) {
	handler.stream(ctx, "decrypt", "decrypted.bin", handler.signerService.Decrypt)
}

func (handler *symmetricHandler) export(ctx *gin.Context, action, filename string, op func(context.Context, io.Writer) error) {
	var out bytes.Buffer
	if err := op(ctx.Request.Context(), &out); err != nil {
		respondError(ctx, handler.logger, action, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "application/octet-stream", out.Bytes())
}

// stream pipes the form file "file" through op straight into the response. A failure after
// the first output byte can only be logged because the status line is already sent.
func (handler *symmetricHandler) stream(ctx *gin.Context, action, filename string,
	op func(context.Context, io.Reader, io.Writer) (int64, error)) {
	file, err := openFormFile(ctx, "file")
	if err != nil {
		respondError(ctx, handler.logger, "read file", err)
		return
	}
	defer file.Close()

	w := &lazyWriter{ctx: ctx, contentType: "application/octet-stream", filename: filename}
	written, err := op(ctx.Request.Context(), file, w)
	if err != nil {
		if !w.committed {
			respondError(ctx, handler.logger, action, err)
			return
		}
		handler.logger.Error("AES ", action, " stream aborted after ", written, " bytes: ", err)
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}
	w.finish()
}
