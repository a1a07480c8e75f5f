package domain

import "context"

// Attachment is a file carried by a notification email. Content is the base64
// payload exactly as it will be handed to the provider; decoding is the
// provider adapter's concern so a corrupt upload fails at dispatch, not before.
type Attachment struct {
	Filename string
	Content  string
}

// RenderedEmail is the output of the submission renderer: a single-line
// subject, a complete HTML body, and zero or one attachments.
type RenderedEmail struct {
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// OutboundEmail is a fully addressed notification ready for dispatch.
// The sender identity is fixed per mailer instance and not part of this value.
type OutboundEmail struct {
	To          string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, email *OutboundEmail) error
}

// SubmissionRenderer turns a classified submission into a notification email.
// Rendering is deterministic apart from the footer's copyright year.
type SubmissionRenderer interface {
	Render(sub *Submission) (*RenderedEmail, error)
}

// NotificationService handles a form submission end to end: classify, render,
// dispatch. Exactly one send attempt is made per accepted submission.
type NotificationService interface {
	ProcessSubmission(ctx context.Context, env *Envelope) error
}
