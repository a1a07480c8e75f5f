package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careformrelay/internal/domain"
)

const testBrand = "Bina Adult Care"

func contactSubmission() *domain.Submission {
	return &domain.Submission{
		Type: domain.SubmissionContact,
		Contact: &domain.ContactSubmission{
			Name:    "Sita Sharma",
			Email:   "sita@example.com",
			Phone:   "+977-9841000000",
			Message: "Looking for day care options.",
		},
	}
}

func TestRender_Contact(t *testing.T) {
	r := NewTemplateRenderer(testBrand)

	rendered, err := r.Render(contactSubmission())
	require.NoError(t, err)

	assert.Equal(t, "[New Inquiry] Sita Sharma - General Inquiry", rendered.Subject)
	assert.Contains(t, rendered.HTMLBody, "New Contact Inquiry")
	assert.Contains(t, rendered.HTMLBody, "Sita Sharma")
	assert.Contains(t, rendered.HTMLBody, `<a href="mailto:sita@example.com">sita@example.com</a>`)
	assert.Contains(t, rendered.HTMLBody, "+977-9841000000")
	assert.Contains(t, rendered.HTMLBody, "General Inquiry", "omitted service falls back in the table too")
	assert.Contains(t, rendered.HTMLBody, "Looking for day care options.")
	assert.Contains(t, rendered.HTMLBody, testBrand)
	assert.Empty(t, rendered.Attachments)
}

func TestRender_ContactWithService(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	sub := contactSubmission()
	sub.Contact.Service = "Home Nursing"

	rendered, err := r.Render(sub)
	require.NoError(t, err)
	assert.Equal(t, "[New Inquiry] Sita Sharma - Home Nursing", rendered.Subject)
	assert.Contains(t, rendered.HTMLBody, "Home Nursing")
}

func TestRender_JobWithResume(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	sub := &domain.Submission{
		Type: domain.SubmissionJob,
		Job: &domain.JobSubmission{
			Name:       "Ram Karki",
			Email:      "ram@example.com",
			Phone:      "9841000001",
			Position:   "Caregiver",
			Experience: "3 years",
			Resume: &domain.Resume{
				Content:  "data:application/pdf;base64,AAAABBBB",
				Filename: "ram-karki.pdf",
			},
		},
	}

	rendered, err := r.Render(sub)
	require.NoError(t, err)

	assert.Equal(t, "[Job Application] Caregiver - Ram Karki", rendered.Subject)
	assert.Contains(t, rendered.HTMLBody, "New Job Application")
	assert.Contains(t, rendered.HTMLBody, "See attachment")
	assert.Contains(t, rendered.HTMLBody, "No additional information provided",
		"omitted note gets fallback text, not an empty cell")

	require.Len(t, rendered.Attachments, 1)
	assert.Equal(t, "ram-karki.pdf", rendered.Attachments[0].Filename)
	assert.Equal(t, "AAAABBBB", rendered.Attachments[0].Content,
		"data-URL prefix is stripped at the first comma")
}

func TestRender_JobResumeDefaults(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	sub := &domain.Submission{
		Type: domain.SubmissionJob,
		Job: &domain.JobSubmission{
			Name:       "Ram Karki",
			Email:      "ram@example.com",
			Phone:      "9841000001",
			Position:   "Caregiver",
			Experience: "3 years",
			Message:    "Available immediately.",
			Resume:     &domain.Resume{Content: "QkJCQg=="},
		},
	}

	rendered, err := r.Render(sub)
	require.NoError(t, err)

	require.Len(t, rendered.Attachments, 1)
	assert.Equal(t, "Resume.pdf", rendered.Attachments[0].Filename)
	assert.Equal(t, "QkJCQg==", rendered.Attachments[0].Content,
		"raw base64 without a data-URL prefix passes through unchanged")
	assert.Contains(t, rendered.HTMLBody, "Available immediately.")
}

func TestRender_JobWithoutResume(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	sub := &domain.Submission{
		Type: domain.SubmissionJob,
		Job: &domain.JobSubmission{
			Name:       "Ram Karki",
			Email:      "ram@example.com",
			Phone:      "9841000001",
			Position:   "Caregiver",
			Experience: "3 years",
		},
	}

	rendered, err := r.Render(sub)
	require.NoError(t, err)
	assert.Empty(t, rendered.Attachments)
	assert.NotContains(t, rendered.HTMLBody, "See attachment")
}

func TestRender_Booking(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	sub := &domain.Submission{
		Type: domain.SubmissionBooking,
		Booking: &domain.BookingSubmission{
			Name:        "Gita Rai",
			Email:       "gita@example.com",
			Phone:       "9841000002",
			ServiceType: "Respite Care",
			Date:        "2026-10-01",
			Time:        "10:00 AM",
		},
	}

	rendered, err := r.Render(sub)
	require.NoError(t, err)

	assert.Equal(t, "[New Booking] Gita Rai - Respite Care", rendered.Subject)
	assert.Contains(t, rendered.HTMLBody, "Preferred Date")
	assert.Contains(t, rendered.HTMLBody, "2026-10-01")
	assert.Contains(t, rendered.HTMLBody, "Time Slot")
	assert.Contains(t, rendered.HTMLBody, "No additional notes",
		"omitted notes get fallback text, not an empty cell")
}

func TestRender_Deterministic(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	sub := contactSubmission()

	first, err := r.Render(sub)
	require.NoError(t, err)
	second, err := r.Render(sub)
	require.NoError(t, err)

	assert.Equal(t, first.Subject, second.Subject)
	assert.Equal(t, first.HTMLBody, second.HTMLBody)
}

func TestRender_EscapesUserInput(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	sub := contactSubmission()
	sub.Contact.Name = `<script>alert("x")</script>`
	sub.Contact.Message = `<img src=x onerror=alert(1)>`

	rendered, err := r.Render(sub)
	require.NoError(t, err)

	assert.NotContains(t, rendered.HTMLBody, "<script>")
	assert.NotContains(t, rendered.HTMLBody, "<img")
	assert.Contains(t, rendered.HTMLBody, "&lt;script&gt;")
}

func TestRender_SubjectIsSingleLine(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	sub := contactSubmission()
	sub.Contact.Name = "Sita\r\nBcc: attacker@example.com"

	rendered, err := r.Render(sub)
	require.NoError(t, err)

	assert.False(t, strings.ContainsAny(rendered.Subject, "\r\n"))
}

func TestRender_InvalidType(t *testing.T) {
	r := NewTemplateRenderer(testBrand)
	_, err := r.Render(&domain.Submission{Type: "spam"})
	require.ErrorIs(t, err, domain.ErrInvalidSubmissionType)
}
