package email

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careformrelay/internal/domain"
)

func TestBuildRawMessage(t *testing.T) {
	email := &domain.OutboundEmail{
		To:      "owner@example.com",
		ReplyTo: "ram@example.com",
		Subject: "[Job Application] Caregiver - Ram Karki",
		HTML:    "<p>application</p>",
		Attachments: []domain.Attachment{{
			Filename: "resume.pdf",
			Content:  base64.StdEncoding.EncodeToString([]byte("pdf bytes")),
		}},
	}

	raw, err := buildRawMessage("Bina Adult Care <noreply@example.com>", email)
	require.NoError(t, err)
	msg := string(raw)

	assert.Contains(t, msg, "From: Bina Adult Care <noreply@example.com>\r\n")
	assert.Contains(t, msg, "To: owner@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: ram@example.com\r\n")
	assert.Contains(t, msg, "Subject: [Job Application] Caregiver - Ram Karki\r\n")
	assert.Contains(t, msg, "Content-Type: multipart/mixed")
	assert.Contains(t, msg, "text/html; charset=UTF-8")
	assert.Contains(t, msg, "<p>application</p>")
	assert.Contains(t, msg, "filename=resume.pdf")
	assert.Contains(t, msg, base64.StdEncoding.EncodeToString([]byte("pdf bytes")))
}

func TestBuildRawMessage_NoReplyTo(t *testing.T) {
	email := &domain.OutboundEmail{
		To:          "owner@example.com",
		Subject:     "s",
		HTML:        "<p>b</p>",
		Attachments: []domain.Attachment{{Filename: "a.pdf", Content: "QQ=="}},
	}

	raw, err := buildRawMessage("noreply@example.com", email)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Reply-To:")
}

func TestBuildRawMessage_MalformedAttachment(t *testing.T) {
	email := &domain.OutboundEmail{
		To:          "owner@example.com",
		Subject:     "s",
		HTML:        "<p>b</p>",
		Attachments: []domain.Attachment{{Filename: "a.pdf", Content: "not!!base64"}},
	}

	_, err := buildRawMessage("noreply@example.com", email)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.pdf")
}

func TestEncodeBase64WithLineBreaks(t *testing.T) {
	encoded := encodeBase64WithLineBreaks(bytes.Repeat([]byte{0xAB}, 200))
	for _, line := range strings.Split(encoded, "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\r\n", ""))
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xAB}, 200), decoded)
}
