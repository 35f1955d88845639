package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/pkg/logger"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	asymmetricSignerService crypto.AsymmetricSignerService,
	symmetricSignerService crypto.SymmetricSignerService,
	logger logger.Logger) {

	v1 := r.Group(BasePath) // lookup in version file

	// Asymmetric Routes
	asymmetricHandler := NewAsymmetricHandler(asymmetricSignerService, logger)
	v1.POST("/asymmetric/keys", asymmetricHandler.GenerateKeyPair)
	v1.GET("/asymmetric/keys/public", asymmetricHandler.ExportPublicKey)
	v1.GET("/asymmetric/keys/private", asymmetricHandler.ExportPrivateKey)
	v1.PUT("/asymmetric/keys/public", asymmetricHandler.ImportPublicKey)
	v1.PUT("/asymmetric/keys/private", asymmetricHandler.ImportPrivateKey)
	v1.PUT("/asymmetric/keys/pair", asymmetricHandler.ImportKeyPair)
	v1.POST("/asymmetric/encrypt", asymmetricHandler.Encrypt)
	v1.POST("/asymmetric/decrypt", asymmetricHandler.Decrypt)
	v1.POST("/asymmetric/sign", asymmetricHandler.Sign)
	v1.POST("/asymmetric/verify", asymmetricHandler.Verify)

	// Symmetric Routes
	symmetricHandler := NewSymmetricHandler(symmetricSignerService, logger)
	v1.POST("/symmetric/keys", symmetricHandler.GenerateKey)
	v1.GET("/symmetric/keys", symmetricHandler.ExportKey)
	v1.GET("/symmetric/iv", symmetricHandler.ExportIV)
	v1.PUT("/symmetric/keys", symmetricHandler.ImportKey)
	v1.PUT("/symmetric/iv", symmetricHandler.ImportIV)
	v1.PUT("/symmetric/keys-iv", symmetricHandler.ImportKeyAndIV)
	v1.POST("/symmetric/encrypt", symmetricHandler.Encrypt)
	v1.POST("/symmetric/decrypt", symmetricHandler.Decrypt)
}

// MaxBodySize limits request bodies to limit bytes. Reads beyond the limit fail and
// the multipart parser reports the request as malformed.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		ctx.Next()
	}
}
