package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/resend/resend-go/v3"

	"careformrelay/internal/domain"
)

// resendMailer implements domain.Mailer using the Resend API.
type resendMailer struct {
	client *resend.Client
	from   string
}

func newResendMailer(config MailerConfig) *resendMailer {
	return &resendMailer{
		client: resend.NewClient(config.ResendAPIKey),
		from:   sender(config),
	}
}

func (m *resendMailer) Send(ctx context.Context, email *domain.OutboundEmail) error {
	req := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email.To},
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTML,
	}

	for _, a := range email.Attachments {
		content, err := base64.StdEncoding.DecodeString(a.Content)
		if err != nil {
			return fmt.Errorf("decode attachment %q: %w", a.Filename, err)
		}
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  content,
		})
	}

	sent, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}
	log.Printf("[MAILER] Email sent via Resend. ID: %s", sent.Id)
	return nil
}
