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

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	logger logger.Logger
}

// NewAESCommandHandler initializes a new AESCommandHandler with logging.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AESCommandHandler{
		logger: loggerInstance,
	}, nil
}

func (commandHandler *AESCommandHandler) newSigner(cmd *cobra.Command) (crypto.SymmetricSigner, error) {
	var opts []cryptography.AESSignerOption
	if cmd.Flags().Lookup("chunk-size") != nil {
		chunkSize, err := cmd.Flags().GetInt("chunk-size")
		if err != nil {
			return nil, fmt.Errorf("invalid chunk-size flag: %w", err)
		}
		if chunkSize < 1 {
			return nil, fmt.Errorf("chunk-size must be positive, got %d", chunkSize)
		}
		opts = append(opts, cryptography.WithChunkSize(chunkSize))
	}

	signer, err := cryptography.NewAESSigner(commandHandler.logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES signer: %w", err)
	}
	return signer, nil
}

// GenerateAESKeysCmd generates an AES key and IV and persists them in the selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	policyName, err := cmd.Flags().GetString("iv-policy")
	if err != nil {
		return fmt.Errorf("invalid iv-policy flag: %w", err)
	}

	policy, err := crypto.ParseIVPolicy(policyName)
	if err != nil {
		return err
	}

	signer, err := commandHandler.newSigner(cmd)
	if err != nil {
		return err
	}
	if err := signer.GenerateKey(keySize, policy); err != nil {
		return err
	}

	uniqueID := uuid.New()
	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-%s-key.bin", uniqueID.String(), crypto.KeyTypeSymmetric))
	ivFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-iv.bin", uniqueID.String()))

	if err := writeOutputFile(keyFilePath, signer.ExportKey); err != nil {
		return err
	}
	if err := writeOutputFile(ivFilePath, signer.ExportIV); err != nil {
		return errors.Join(err, removeIfExists(keyFilePath))
	}

	commandHandler.logger.Info("Symmetric key path ", keyFilePath)
	commandHandler.logger.Info("IV path ", ivFilePath)
	return nil
}

// EncryptAESCmd encrypts a file using AES-CBC
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	signer, inputFile, outputFile, err := commandHandler.loadKeyAndIV(cmd)
	if err != nil {
		return err
	}

	if err := transformFile(inputFile, outputFile, discardCount(signer.EncryptStream)); err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
	return nil
}

// DecryptAESCmd decrypts a file using AES-CBC
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	signer, inputFile, outputFile, err := commandHandler.loadKeyAndIV(cmd)
	if err != nil {
		return err
	}

	if err := transformFile(inputFile, outputFile, discardCount(signer.DecryptStream)); err != nil {
		return err
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
	return nil
}

// loadKeyAndIV reads the file flags and imports the key and IV into a fresh signer.
func (commandHandler *AESCommandHandler) loadKeyAndIV(cmd *cobra.Command) (crypto.SymmetricSigner, string, string, error) {
	inputFile, outputFile, err := inputOutputFlags(cmd)
	if err != nil {
		return nil, "", "", err
	}
	keyPath, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid symmetric-key flag: %w", err)
	}
	ivPath, err := cmd.Flags().GetString("iv")
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid iv flag: %w", err)
	}

	signer, err := commandHandler.newSigner(cmd)
	if err != nil {
		return nil, "", "", err
	}
	if err := withInputFile(keyPath, signer.ImportKeyFrom); err != nil {
		return nil, "", "", err
	}
	if err := withInputFile(ivPath, signer.ImportIVFrom); err != nil {
		return nil, "", "", err
	}
	return signer, inputFile, outputFile, nil
}

func discardCount(op func(io.Reader, io.Writer) (int64, error)) func(io.Reader, io.Writer) error {
	return func(r io.Reader, w io.Writer) error {
		_, err := op(r, w)
		return err
	}
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	var generateAESKeysCmd = &cobra.Command{
		Use:   "generate-aes-keys",
		Short: "Generate an AES key and IV",
		RunE:  handler.GenerateAESKeysCmd,
	}
	generateAESKeysCmd.Flags().IntP("key-size", "", crypto.DefaultAESKeySize, "AES key size in bits (128, 192 or 256)")
	generateAESKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the key and IV")
	generateAESKeysCmd.Flags().StringP("iv-policy", "", string(crypto.DefaultIVPolicy), "IV policy: random, or simple (fixed IV, testing only)")
	rootCmd.AddCommand(generateAESKeysCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES-CBC",
		RunE:  handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	encryptAESFileCmd.Flags().StringP("iv", "", "", "Path to the IV")
	encryptAESFileCmd.Flags().IntP("chunk-size", "", crypto.DefaultChunkSize, "Bytes read per streaming step")
	markRequired(encryptAESFileCmd, "input-file", "output-file", "symmetric-key", "iv")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file using AES-CBC",
		RunE:  handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	decryptAESFileCmd.Flags().StringP("iv", "", "", "Path to the IV")
	decryptAESFileCmd.Flags().IntP("chunk-size", "", crypto.DefaultChunkSize, "Bytes read per streaming step")
	markRequired(decryptAESFileCmd, "input-file", "output-file", "symmetric-key", "iv")
	rootCmd.AddCommand(decryptAESFileCmd)
	return nil
}
