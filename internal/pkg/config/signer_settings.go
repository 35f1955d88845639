package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// IV policy names accepted in configuration
const (
	IVPolicySimple = "simple"
	IVPolicyRandom = "random"
)

// SignerSettings controls key generation defaults and the streaming chunk size.
type SignerSettings struct {
	ChunkSize         int    `mapstructure:"chunk_size" validate:"required,min=1,max=16777216"`
	SymmetricKeySize  int    `mapstructure:"symmetric_key_size" validate:"required,oneof=128 192 256"`
	IVPolicy          string `mapstructure:"iv_policy" validate:"required,oneof=simple random"`
	GenerateOnStartup bool   `mapstructure:"generate_on_startup"`
}

// Validate checks that all fields in SignerSettings are valid
func (s *SignerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SignerSettings: %w", err)
	}
	return nil
}
