package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// SESConfig holds AWS SES credentials for the "ses" email provider.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// OwnerEmail is the single address that receives all form notifications.
	// Its presence is a precondition for handling submissions; when empty the
	// relay answers every submission with a generic failure.
	OwnerEmail string

	// EmailProvider selects the outbound mailer: "resend", "ses" or "noop".
	EmailProvider string
	ResendAPIKey  string
	FromEmail     string
	FromName      string
	SES           SESConfig

	SiteName       string
	AllowedOrigins []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		Port:          os.Getenv("PORT"),
		OwnerEmail:    os.Getenv("OWNER_EMAIL"),
		EmailProvider: os.Getenv("EMAIL_PROVIDER"),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		FromEmail:     os.Getenv("FROM_EMAIL"),
		FromName:      os.Getenv("FROM_NAME"),
		SES: SESConfig{
			Region:          os.Getenv("AWS_SES_REGION"),
			AccessKeyID:     os.Getenv("AWS_SES_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
		},
		SiteName: os.Getenv("SITE_NAME"),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "resend"
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = "onboarding@resend.dev"
	}
	if cfg.SiteName == "" {
		cfg.SiteName = "Bina Adult Care"
	}
	if cfg.FromName == "" {
		cfg.FromName = cfg.SiteName
	}

	// OwnerEmail intentionally has no default: an unset value must surface as
	// a request-time failure rather than silently mailing a wrong address.

	return cfg, nil
}
