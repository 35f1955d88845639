// Package main is the entry point for the crypto-signer-cli application.
// It initializes the root command, registers the RSA and AES sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/pawga/crypto/cmd/crypto-signer-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-signer-cli",
		Short: "Cryptographic operations CLI tool",
		Long: `crypto-signer-cli is a command-line tool for cryptographic operations.
Supports RSA-2048 key generation, PKCS#1 v1.5 encryption/decryption and SHA-256 signatures,
and AES-CBC key generation and file encryption/decryption.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register AES commands
	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	// Register RSA commands
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	return nil
}
