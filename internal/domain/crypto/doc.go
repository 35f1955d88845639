// Package crypto defines the contracts, key material models, constants and error kinds
// of the crypto signer: RSA key pairs used for encryption and signatures and AES keys
// with an initialization vector used for CBC encryption of buffers and streams.
package crypto
