package email

import (
	"context"
	"fmt"
	"log"

	"careformrelay/internal/domain"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider     string
	FromAddress  string
	FromName     string
	ResendAPIKey string
	SES          SESConfig
}

// NewMailer creates a mailer from config. Provider "resend" uses the Resend
// API, "ses" uses AWS SES; "noop" or unknown uses a no-op mailer.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	switch config.Provider {
	case "resend":
		if config.ResendAPIKey == "" {
			return nil, fmt.Errorf("resend mailer requires an API key")
		}
		return newResendMailer(config), nil
	case "ses":
		return newSESMailer(config), nil
	case "noop":
		return &noopMailer{}, nil
	default:
		log.Printf("[MAILER] Unknown email provider %q, using noop", config.Provider)
		return &noopMailer{}, nil
	}
}

// sender formats the fixed from identity as "Name <address>".
func sender(config MailerConfig) string {
	if config.FromName != "" {
		return fmt.Sprintf("%s <%s>", config.FromName, config.FromAddress)
	}
	return config.FromAddress
}

type noopMailer struct{}

func (n *noopMailer) Send(ctx context.Context, email *domain.OutboundEmail) error {
	log.Println("[MAILER] Email would be sent (noop)", "to", email.To, "subject", email.Subject)
	return nil
}
