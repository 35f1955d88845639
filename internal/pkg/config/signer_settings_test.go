//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignerSettingsValidation(t *testing.T) {
	valid := func() SignerSettings {
		return SignerSettings{ChunkSize: 256, SymmetricKeySize: 256, IVPolicy: IVPolicyRandom}
	}

	tests := []struct {
		name          string
		mutate        func(s *SignerSettings)
		expectedError bool
	}{
		{"valid settings", func(s *SignerSettings) {}, false},
		{"simple iv policy", func(s *SignerSettings) { s.IVPolicy = IVPolicySimple }, false},
		{"aes-128", func(s *SignerSettings) { s.SymmetricKeySize = 128 }, false},
		{"missing chunk size", func(s *SignerSettings) { s.ChunkSize = 0 }, true},
		{"negative chunk size", func(s *SignerSettings) { s.ChunkSize = -1 }, true},
		{"unsupported key size", func(s *SignerSettings) { s.SymmetricKeySize = 512 }, true},
		{"unknown iv policy", func(s *SignerSettings) { s.IVPolicy = "rightly" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := valid()
			tt.mutate(&settings)

			err := settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
