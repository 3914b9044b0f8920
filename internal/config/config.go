// Package config loads runtime configuration from the environment, with
// production secrets resolved through AWS Secrets Manager.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/sealpoint/billing-api/internal/client/aws"
	"github.com/sealpoint/billing-api/internal/helpers"
	"github.com/sealpoint/billing-api/internal/logger"
)

// Config holds everything the api and processor binaries need at startup.
type Config struct {
	Stage       string
	Port        string
	DatabaseURL string

	EscrowBaseURL string
	EscrowAPIKey  string
	StripeAPIKey  string

	ResendAPIKey    string
	AdminAlertEmail string
}

// Load reads .env (best effort), then the environment, then Secrets Manager
// for the prod stage.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional outside local development
		logger.Log.Debug("no .env file loaded", zap.Error(err))
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q", stage)
	}

	cfg := &Config{
		Stage:           stage,
		Port:            getEnvDefault("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		EscrowBaseURL:   getEnvDefault("ESCROW_BASE_URL", "http://localhost:9090"),
		EscrowAPIKey:    os.Getenv("ESCROW_API_KEY"),
		StripeAPIKey:    os.Getenv("STRIPE_API_KEY"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		AdminAlertEmail: os.Getenv("ADMIN_ALERT_EMAIL"),
	}

	if stage == helpers.StageProd {
		secrets, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create secrets manager client: %w", err)
		}

		if cfg.DatabaseURL, err = secrets.GetSecretString(ctx, "DATABASE_URL_SECRET_ARN", "DATABASE_URL"); err != nil {
			return nil, fmt.Errorf("failed to resolve database url: %w", err)
		}
		if cfg.EscrowAPIKey, err = secrets.GetSecretString(ctx, "ESCROW_API_KEY_SECRET_ARN", "ESCROW_API_KEY"); err != nil {
			return nil, fmt.Errorf("failed to resolve escrow api key: %w", err)
		}
		if cfg.StripeAPIKey, err = secrets.GetSecretString(ctx, "STRIPE_API_KEY_SECRET_ARN", "STRIPE_API_KEY"); err != nil {
			return nil, fmt.Errorf("failed to resolve stripe api key: %w", err)
		}
		// Resend is optional; admin alerts degrade to database-only recording.
		if key, err := secrets.GetSecretString(ctx, "RESEND_API_KEY_SECRET_ARN", "RESEND_API_KEY"); err == nil {
			cfg.ResendAPIKey = key
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
