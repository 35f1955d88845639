package validators

import (
	"reflect"

	"github.com/pawga/crypto/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates a key size in bits for the algorithm named by the tag
// parameter (keysize=AES) or, without a parameter, by the sibling field Algorithm.
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Param()
	if algorithm == "" {
		field := fl.Parent().FieldByName("Algorithm")
		if !field.IsValid() || field.Kind() != reflect.String {
			return false
		}
		algorithm = field.String()
	}

	var keySize int64
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		keySize = fl.Field().Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		keySize = int64(fl.Field().Uint())
	default:
		return false
	}

	switch algorithm {
	case crypto.AlgorithmAES:
		return keySize == crypto.AESKeySize128 || keySize == crypto.AESKeySize192 || keySize == crypto.AESKeySize256
	case crypto.AlgorithmRSA:
		return keySize == crypto.RSAKeySize
	default:
		return false
	}
}

// IVPolicyValidation accepts the names of the supported IV policies.
func IVPolicyValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case string(crypto.IVPolicySimple), string(crypto.IVPolicyRandom):
		return true
	default:
		return false
	}
}

// New returns a validator with the key size and IV policy rules registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", KeySizeValidation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("ivpolicy", IVPolicyValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
