package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"careformrelay/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Fallback display texts substituted for absent optional fields. The
// notification must never show an empty table cell.
const (
	fallbackService    = "General Inquiry"
	fallbackJobNote    = "No additional information provided"
	fallbackNotes      = "No additional notes"
	fallbackResumeName = "Resume.pdf"
)

// templateRenderer implements domain.SubmissionRenderer using embedded
// template files. All field values are interpolated through html/template so
// attacker-controlled input cannot inject markup into the notification.
type templateRenderer struct {
	brand string
	now   func() time.Time
}

// NewTemplateRenderer returns a SubmissionRenderer branded with the given
// site name for the email header and footer.
func NewTemplateRenderer(brand string) domain.SubmissionRenderer {
	return &templateRenderer{brand: brand, now: time.Now}
}

type baseView struct {
	Brand string
	Year  int
}

type contactView struct {
	baseView
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

type jobView struct {
	baseView
	Name       string
	Position   string
	Experience string
	Email      string
	Phone      string
	Note       string
	HasResume  bool
}

type bookingView struct {
	baseView
	Name        string
	ServiceType string
	Date        string
	Time        string
	Email       string
	Phone       string
	Notes       string
}

// Render builds the notification email for a classified submission: a
// type-specific subject, the branded HTML body, and the resume attachment
// for job submissions that carry one.
func (r *templateRenderer) Render(sub *domain.Submission) (*domain.RenderedEmail, error) {
	base := baseView{Brand: r.brand, Year: r.now().Year()}

	switch sub.Type {
	case domain.SubmissionContact:
		c := sub.Contact
		view := contactView{
			baseView: base,
			Name:     c.Name,
			Email:    c.Email,
			Phone:    c.Phone,
			Service:  fallback(c.Service, fallbackService),
			Message:  c.Message,
		}
		return r.render("contact", view, nil)

	case domain.SubmissionJob:
		j := sub.Job
		attachments := resumeAttachment(j.Resume)
		view := jobView{
			baseView:   base,
			Name:       j.Name,
			Position:   j.Position,
			Experience: j.Experience,
			Email:      j.Email,
			Phone:      j.Phone,
			Note:       fallback(j.Message, fallbackJobNote),
			HasResume:  len(attachments) > 0,
		}
		return r.render("job", view, attachments)

	case domain.SubmissionBooking:
		b := sub.Booking
		view := bookingView{
			baseView:    base,
			Name:        b.Name,
			ServiceType: b.ServiceType,
			Date:        b.Date,
			Time:        b.Time,
			Email:       b.Email,
			Phone:       b.Phone,
			Notes:       fallback(b.Notes, fallbackNotes),
		}
		return r.render("booking", view, nil)

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSubmissionType, sub.Type)
	}
}

func (r *templateRenderer) render(name string, view any, attachments []domain.Attachment) (*domain.RenderedEmail, error) {
	subject, err := r.renderSubject(name+"_subject.txt", view)
	if err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	htmlBody, err := r.renderHTML(name+".html", view)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return &domain.RenderedEmail{
		Subject:     subject,
		HTMLBody:    htmlBody,
		Attachments: attachments,
	}, nil
}

func (r *templateRenderer) renderSubject(name string, view any) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	t, err := texttemplate.New(name).Parse(string(raw))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return "", err
	}
	return singleLine(buf.String()), nil
}

func (r *templateRenderer) renderHTML(name string, view any) (string, error) {
	t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// resumeAttachment extracts the resume payload when one was supplied. A data
// URL loses its "data:<mime>;base64," prefix so only the base64 payload is
// handed to the provider. Omitting the resume is not an error here.
func resumeAttachment(res *domain.Resume) []domain.Attachment {
	if res == nil || res.Content == "" {
		return nil
	}
	content := res.Content
	if _, payload, found := strings.Cut(content, ","); found {
		content = payload
	}
	filename := res.Filename
	if filename == "" {
		filename = fallbackResumeName
	}
	return []domain.Attachment{{Filename: filename, Content: content}}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// singleLine collapses a rendered subject to one line. Subject fields come
// from the public form and may contain newlines.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
