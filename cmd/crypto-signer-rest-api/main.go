// cmd/crypto-signer-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/pawga/crypto/internal/api/rest/v1"
	"github.com/pawga/crypto/internal/app"
	"github.com/pawga/crypto/internal/domain/crypto"
	"github.com/pawga/crypto/internal/infrastructure/cryptography"
	"github.com/pawga/crypto/internal/pkg/config"
	"github.com/pawga/crypto/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds the signer sessions shared by all requests
type appServices struct {
	asymmetric crypto.AsymmetricSignerService
	symmetric  crypto.SymmetricSignerService
}

// initializeServices creates the signers and, when configured, generates their initial keys
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	rsaSigner, err := cryptography.NewRSASigner(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA signer: %w", err)
	}

	aesSigner, err := cryptography.NewAESSigner(log, cryptography.WithChunkSize(cfg.Signer.ChunkSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create AES signer: %w", err)
	}

	asymmetricService, err := app.NewAsymmetricSignerService(rsaSigner, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create asymmetric signer service: %w", err)
	}

	symmetricService, err := app.NewSymmetricSignerService(aesSigner, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric signer service: %w", err)
	}

	if cfg.Signer.GenerateOnStartup {
		ctx := context.Background()
		if err := asymmetricService.GenerateKeyPair(ctx); err != nil {
			return nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
		}

		policy, err := crypto.ParseIVPolicy(cfg.Signer.IVPolicy)
		if err != nil {
			return nil, err
		}
		if err := symmetricService.GenerateKey(ctx, cfg.Signer.SymmetricKeySize, policy); err != nil {
			return nil, fmt.Errorf("failed to generate AES key: %w", err)
		}
		log.Info("Initial key material generated")
	}

	log.Info("Signer services initialized successfully")
	return &appServices{
		asymmetric: asymmetricService,
		symmetric:  symmetricService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadSize

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(v1.MaxBodySize(cfg.MaxUploadSize))

	// Setup API routes
	v1.SetupRoutes(r, services.asymmetric, services.symmetric, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
