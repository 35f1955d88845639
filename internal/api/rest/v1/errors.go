package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/pkg/logger"
)

var errMissingFormFile = errors.New("missing form file")

// statusFor maps an operation error to the HTTP status returned to the client
func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingFormFile):
		return http.StatusBadRequest
	case errors.Is(err, crypto.ErrUninitializedKey):
		return http.StatusConflict
	case errors.Is(err, crypto.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, crypto.ErrCipher):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes an ErrorResponse and logs the failure under a fresh request id
func respondError(ctx *gin.Context, log logger.Logger, action string, err error) {
	requestID := uuid.New().String()
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		log.Error("request ", requestID, " failed to ", action, ": ", err)
	} else {
		log.Warn("request ", requestID, " failed to ", action, ": ", err)
	}

	ctx.JSON(status, ErrorResponse{
		Message:   "failed to " + action + ": " + err.Error(),
		RequestID: requestID,
	})
}

// openFormFile opens the multipart file sent under field
func openFormFile(ctx *gin.Context, field string) (multipart.File, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return nil, &formFileError{field: field, cause: err}
	}
	return fileHeader.Open()
}

// readFormFile returns the content of the multipart file sent under field
func readFormFile(ctx *gin.Context, field string) ([]byte, error) {
	file, err := openFormFile(ctx, field)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// readOptionalFormFile is readFormFile for fields that may be omitted; a missing field yields nil
func readOptionalFormFile(ctx *gin.Context, field string) ([]byte, error) {
	data, err := readFormFile(ctx, field)
	if errors.Is(err, errMissingFormFile) {
		return nil, nil
	}
	return data, err
}

// formFileError matches errMissingFormFile and keeps the multipart cause
type formFileError struct {
	field string
	cause error
}

func (e *formFileError) Error() string {
	return "missing form file " + e.field + ": " + e.cause.Error()
}

func (e *formFileError) Is(target error) bool { return target == errMissingFormFile }

func (e *formFileError) Unwrap() error { return e.cause }

// lazyWriter commits the response status and content type on the first write so that
// a stream failing before any output can still be answered with an ErrorResponse.
type lazyWriter struct {
	ctx         *gin.Context
	contentType string
	filename    string
	committed   bool
}

func (w *lazyWriter) Write(p []byte) (int, error) {
	if !w.committed {
		w.committed = true
		w.ctx.Header("Content-Type", w.contentType)
		if w.filename != "" {
			w.ctx.Header("Content-Disposition", "attachment; filename="+w.filename)
		}
		w.ctx.Status(http.StatusOK)
	}
	return w.ctx.Writer.Write(p)
}

// finish answers an empty but successful stream
func (w *lazyWriter) finish() {
	if !w.committed {
		w.committed = true
		w.ctx.Header("Content-Type", w.contentType)
		w.ctx.Status(http.StatusOK)
		w.ctx.Writer.WriteHeaderNow()
	}
}
