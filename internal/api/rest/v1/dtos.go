package v1

import (
	"fmt"

	"github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/pkg/validators"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

// VerifyResponse carries the result of a signature verification
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// GenerateSymmetricKeyRequest selects the AES key size in bits and the IV policy.
// Zero values fall back to AES-256 with a random IV.
type GenerateSymmetricKeyRequest struct {
	KeySize  int    `json:"key_size" validate:"omitempty,keysize=AES"`
	IVPolicy string `json:"iv_policy" validate:"omitempty,ivpolicy"`
}

// Validate checks the request and fills in defaults for omitted fields
func (r *GenerateSymmetricKeyRequest) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if r.KeySize == 0 {
		r.KeySize = crypto.DefaultAESKeySize
	}
	if r.IVPolicy == "" {
		r.IVPolicy = string(crypto.DefaultIVPolicy)
	}
	return nil
}
