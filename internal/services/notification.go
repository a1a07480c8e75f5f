package services

import (
	"context"
	"fmt"
	"log/slog"

	"careformrelay/internal/domain"
)

type notificationService struct {
	logger     *slog.Logger
	mailer     domain.Mailer
	renderer   domain.SubmissionRenderer
	ownerEmail string
}

// NewNotificationService returns a NotificationService that renders form
// submissions and dispatches them to the owner notification address using the
// given Mailer. ownerEmail may be empty; in that case every submission fails
// with domain.ErrOwnerEmailMissing.
func NewNotificationService(logger *slog.Logger, mailer domain.Mailer, renderer domain.SubmissionRenderer, ownerEmail string) domain.NotificationService {
	return &notificationService{
		logger:     logger,
		mailer:     mailer,
		renderer:   renderer,
		ownerEmail: ownerEmail,
	}
}

// ProcessSubmission classifies the envelope, renders the notification email
// and dispatches exactly one send attempt. A filled honeypot drops the
// submission without sending; the caller still reports success so automated
// submitters learn nothing.
func (s *notificationService) ProcessSubmission(ctx context.Context, env *domain.Envelope) error {
	if env.Honeypot != "" {
		s.logger.InfoContext(ctx, "submission dropped", "reason", "honeypot", "type", env.Type)
		return nil
	}

	if s.ownerEmail == "" {
		return domain.ErrOwnerEmailMissing
	}

	sub, err := domain.DecodeSubmission(env)
	if err != nil {
		return err
	}

	rendered, err := s.renderer.Render(sub)
	if err != nil {
		return fmt.Errorf("failed to render %s notification: %w", sub.Type, err)
	}

	email := &domain.OutboundEmail{
		To:          s.ownerEmail,
		ReplyTo:     sub.SubmitterEmail(),
		Subject:     rendered.Subject,
		HTML:        rendered.HTMLBody,
		Attachments: rendered.Attachments,
	}
	if err := s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send %s notification: %w", sub.Type, err)
	}

	s.logger.InfoContext(ctx, "notification sent",
		"type", sub.Type,
		"subject", rendered.Subject,
		"attachments", len(rendered.Attachments),
	)
	return nil
}
