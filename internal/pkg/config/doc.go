// Package config provides functionality for loading and validating the crypto signer configuration.
//
// Settings are read from a YAML file and CRYPTO_SIGNER_* environment variables and
// validated with struct tags before they are handed to the logger, the signers and the
// REST server.
package config
