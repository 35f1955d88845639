package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/infrastructure/cryptography"
	"github.com/pawga/crypto/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ErrInvalidSignature is returned by verify-rsa when the signature does not match.
var ErrInvalidSignature = errors.New("signature is invalid")

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	logger logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RSACommandHandler{
		logger: loggerInstance,
	}, nil
}

// newSigner returns a signer without key material; every command loads its own keys.
func (commandHandler *RSACommandHandler) newSigner() (crypto.AsymmetricSigner, error) {
	signer, err := cryptography.NewRSASigner(commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA signer: %w", err)
	}
	return signer, nil
}

// GenerateRSAKeysCmd generates an RSA key pair and persists it in the selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	signer, err := commandHandler.newSigner()
	if err != nil {
		return err
	}
	if err := signer.GenerateKeyPair(); err != nil {
		return err
	}

	uniqueID := uuid.New()
	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-%s-key.pem", uniqueID.String(), crypto.KeyTypePrivate))
	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-%s-key.pem", uniqueID.String(), crypto.KeyTypePublic))

	if err := writeOutputFile(privateKeyFilePath, signer.ExportPrivateKey); err != nil {
		return err
	}
	if err := writeOutputFile(publicKeyFilePath, signer.ExportPublicKey); err != nil {
		return errors.Join(err, removeIfExists(privateKeyFilePath))
	}

	commandHandler.logger.Info("Private key path ", privateKeyFilePath)
	commandHandler.logger.Info("Public key path ", publicKeyFilePath)
	return nil
}

// EncryptRSACmd encrypts a file of at most one RSA block using a public key
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	inputFile, outputFile, err := inputOutputFlags(cmd)
	if err != nil {
		return err
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}

	signer, err := commandHandler.newSigner()
	if err != nil {
		return err
	}
	if err := withInputFile(publicKeyPath, signer.ImportPublicKeyFrom); err != nil {
		return err
	}

	if err := transformFile(inputFile, outputFile, signer.EncryptStream); err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
	return nil
}

// DecryptRSACmd decrypts a single RSA block using a private key
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	inputFile, outputFile, err := inputOutputFlags(cmd)
	if err != nil {
		return err
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}

	signer, err := commandHandler.newSigner()
	if err != nil {
		return err
	}
	if err := withInputFile(privateKeyPath, signer.ImportPrivateKeyFrom); err != nil {
		return err
	}

	if err := transformFile(inputFile, outputFile, signer.DecryptStream); err != nil {
		return err
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
	return nil
}

// SignRSACmd signs a file using RSA and saves the signature
func (commandHandler *RSACommandHandler) SignRSACmd(cmd *cobra.Command, _ []string) error {
	inputFile, signatureFile, err := inputOutputFlags(cmd)
	if err != nil {
		return err
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}

	signer, err := commandHandler.newSigner()
	if err != nil {
		return err
	}
	if err := withInputFile(privateKeyPath, signer.ImportPrivateKeyFrom); err != nil {
		return err
	}

	if err := transformFile(inputFile, signatureFile, signer.SignStream); err != nil {
		return err
	}

	commandHandler.logger.Info("Signature saved at ", signatureFile)
	return nil
}

// VerifyRSACmd verifies a signature using RSA
func (commandHandler *RSACommandHandler) VerifyRSACmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		return fmt.Errorf("invalid signature-file flag: %w", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}

	signer, err := commandHandler.newSigner()
	if err != nil {
		return err
	}
	if err := withInputFile(publicKeyPath, signer.ImportPublicKeyFrom); err != nil {
		return err
	}

	var valid bool
	err = withInputFile(inputFile, func(data io.Reader) error {
		return withInputFile(signatureFile, func(signature io.Reader) error {
			var verifyErr error
			valid, verifyErr = signer.VerifyStream(data, signature)
			return verifyErr
		})
	})
	if err != nil {
		return err
	}

	if !valid {
		commandHandler.logger.Error("Signature is invalid")
		return ErrInvalidSignature
	}
	commandHandler.logger.Info("Signature is valid")
	return nil
}

func inputOutputFlags(cmd *cobra.Command) (string, string, error) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return "", "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	return inputFile, outputFile, nil
}

// transformFile streams inputFile through op into outputFile.
func transformFile(inputFile, outputFile string, op func(io.Reader, io.Writer) error) error {
	return withInputFile(inputFile, func(r io.Reader) error {
		return writeOutputFile(outputFile, func(w io.Writer) error {
			return op(r, w)
		})
	})
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate an RSA-2048 key pair",
		RunE:  handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a file of at most 245 bytes using RSA",
		RunE:  handler.EncryptRSACmd,
	}
	encryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptRSAFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key (PEM or DER)")
	markRequired(encryptRSAFileCmd, "input-file", "output-file", "public-key")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a file using RSA",
		RunE:  handler.DecryptRSACmd,
	}
	decryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptRSAFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key (PEM or DER)")
	markRequired(decryptRSAFileCmd, "input-file", "output-file", "private-key")
	rootCmd.AddCommand(decryptRSAFileCmd)

	var signRSAFileCmd = &cobra.Command{
		Use:   "sign-rsa",
		Short: "Sign a file using RSA",
		RunE:  handler.SignRSACmd,
	}
	signRSAFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signRSAFileCmd.Flags().StringP("output-file", "", "", "Path to signature output file")
	signRSAFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key (PEM or DER)")
	markRequired(signRSAFileCmd, "input-file", "output-file", "private-key")
	rootCmd.AddCommand(signRSAFileCmd)

	var verifyRSAFileCmd = &cobra.Command{
		Use:   "verify-rsa",
		Short: "Verify a file is valid using RSA",
		RunE:  handler.VerifyRSACmd,
	}
	verifyRSAFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be validated")
	verifyRSAFileCmd.Flags().StringP("signature-file", "", "", "Path to signature input file")
	verifyRSAFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key (PEM or DER)")
	markRequired(verifyRSAFileCmd, "input-file", "signature-file", "public-key")
	rootCmd.AddCommand(verifyRSAFileCmd)
	return nil
}
