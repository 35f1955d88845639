//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadSize)
	assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, 256, cfg.Signer.ChunkSize)
	assert.Equal(t, 256, cfg.Signer.SymmetricKeySize)
	assert.Equal(t, IVPolicyRandom, cfg.Signer.IVPolicy)
	assert.True(t, cfg.Signer.GenerateOnStartup)
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
signer:
  chunk_size: 4096
  symmetric_key_size: 128
  iv_policy: simple
  generate_on_startup: false
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 4096, cfg.Signer.ChunkSize)
	assert.Equal(t, 128, cfg.Signer.SymmetricKeySize)
	assert.Equal(t, IVPolicySimple, cfg.Signer.IVPolicy)
	assert.False(t, cfg.Signer.GenerateOnStartup)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
signer:
  chunk_size: 4096
`)
	t.Setenv("CRYPTO_SIGNER_PORT", "7070")
	t.Setenv("CRYPTO_SIGNER_SIGNER_CHUNK_SIZE", "64")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 64, cfg.Signer.ChunkSize)
}

func TestInitializeRestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non numeric port", "port: abc\n"},
		{"bad log level", "logger:\n  log_level: loud\n"},
		{"bad key size", "signer:\n  symmetric_key_size: 100\n"},
		{"file logger without path", "logger:\n  log_type: file\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitializeRestConfig(writeConfigFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
