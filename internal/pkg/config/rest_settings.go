package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables overriding configuration keys,
// e.g. CRYPTO_SIGNER_LOGGER_LOG_LEVEL overrides logger.log_level.
const EnvPrefix = "CRYPTO_SIGNER"

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port          string         `mapstructure:"port" validate:"required,numeric"`
	MaxUploadSize int64          `mapstructure:"max_upload_size" validate:"min=1"`
	Logger        LoggerSettings `mapstructure:"logger"`
	Signer        SignerSettings `mapstructure:"signer"`
}

// Validate checks the server fields and the nested settings
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Signer.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("max_upload_size", 32<<20)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("signer.chunk_size", 256)
	v.SetDefault("signer.symmetric_key_size", 256)
	v.SetDefault("signer.iv_policy", IVPolicyRandom)
	v.SetDefault("signer.generate_on_startup", true)
}

func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// InitializeRestConfig loads the YAML file at path, applies environment overrides and validates
// the result. An empty path skips the file and uses defaults and environment only.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViperInstance()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
