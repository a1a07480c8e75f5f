package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SubmissionType tags the envelope and selects the rendering branch.
type SubmissionType string

const (
	SubmissionContact SubmissionType = "contact"
	SubmissionJob     SubmissionType = "job"
	SubmissionBooking SubmissionType = "booking"
)

var (
	// ErrInvalidSubmissionType is returned when the envelope type is not one
	// of the recognized submission types. It maps to a 400 at the HTTP layer;
	// every other submission error is flattened into a generic failure.
	ErrInvalidSubmissionType = errors.New("invalid submission type")

	// ErrOwnerEmailMissing means the owner notification address is not
	// configured. The caller only ever sees a generic failure for this.
	ErrOwnerEmailMissing = errors.New("owner notification address is not configured")

	// ErrMissingField is returned when a required submission field is absent.
	ErrMissingField = errors.New("missing required field")
)

// Envelope is the wire-level form submission: a type tag, an untyped payload
// decoded per type, and an optional honeypot value filled only by bots.
type Envelope struct {
	Type     SubmissionType  `json:"type"`
	Data     json.RawMessage `json:"data"`
	Honeypot string          `json:"honeypot,omitempty"`
}

// ContactSubmission is the payload of a "contact" envelope.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"` // optional
	Message string `json:"message"`
}

// Resume is the optional attachment of a job application. Content is either a
// base64 data-URL (as produced by FileReader.readAsDataURL in the browser) or
// a raw base64 string.
type Resume struct {
	Content  string `json:"content"`
	Filename string `json:"filename"` // optional
}

// JobSubmission is the payload of a "job" envelope.
type JobSubmission struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Position   string  `json:"position"`
	Experience string  `json:"experience"`
	Message    string  `json:"message"` // optional
	Resume     *Resume `json:"resume"`  // optional
}

// BookingSubmission is the payload of a "booking" envelope.
type BookingSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"` // optional
}

// Submission is the classified form of an Envelope. Exactly one of Contact,
// Job and Booking is non-nil, matching Type.
type Submission struct {
	Type    SubmissionType
	Contact *ContactSubmission
	Job     *JobSubmission
	Booking *BookingSubmission
}

// SubmitterEmail returns the email address the submitter entered, used as the
// reply-to of the notification.
func (s *Submission) SubmitterEmail() string {
	switch s.Type {
	case SubmissionContact:
		return s.Contact.Email
	case SubmissionJob:
		return s.Job.Email
	case SubmissionBooking:
		return s.Booking.Email
	}
	return ""
}

// DecodeSubmission classifies an envelope and decodes its payload into the
// matching typed submission. An unrecognized type yields
// ErrInvalidSubmissionType. Required fields are checked for presence only;
// no syntactic validation (email format, phone format) is performed here,
// that is the submitting form's concern.
func DecodeSubmission(env *Envelope) (*Submission, error) {
	switch env.Type {
	case SubmissionContact:
		var c ContactSubmission
		if err := json.Unmarshal(env.Data, &c); err != nil {
			return nil, fmt.Errorf("decode contact payload: %w", err)
		}
		if err := requireFields(map[string]string{
			"name":    c.Name,
			"email":   c.Email,
			"phone":   c.Phone,
			"message": c.Message,
		}); err != nil {
			return nil, err
		}
		return &Submission{Type: SubmissionContact, Contact: &c}, nil

	case SubmissionJob:
		var j JobSubmission
		if err := json.Unmarshal(env.Data, &j); err != nil {
			return nil, fmt.Errorf("decode job payload: %w", err)
		}
		if err := requireFields(map[string]string{
			"name":       j.Name,
			"email":      j.Email,
			"phone":      j.Phone,
			"position":   j.Position,
			"experience": j.Experience,
		}); err != nil {
			return nil, err
		}
		return &Submission{Type: SubmissionJob, Job: &j}, nil

	case SubmissionBooking:
		var b BookingSubmission
		if err := json.Unmarshal(env.Data, &b); err != nil {
			return nil, fmt.Errorf("decode booking payload: %w", err)
		}
		if err := requireFields(map[string]string{
			"name":        b.Name,
			"email":       b.Email,
			"phone":       b.Phone,
			"serviceType": b.ServiceType,
			"date":        b.Date,
			"time":        b.Time,
		}); err != nil {
			return nil, err
		}
		return &Submission{Type: SubmissionBooking, Booking: &b}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubmissionType, env.Type)
	}
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}
	return nil
}
