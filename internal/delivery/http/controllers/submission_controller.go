package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	h "careformrelay/internal/delivery/http/helpers"
	"careformrelay/internal/domain"
)

// maxBodyBytes bounds the submission body. The job form caps resumes at 3 MB
// before base64 encoding, so 8 MB leaves room for the encoded payload plus
// the rest of the envelope.
const maxBodyBytes = 8 << 20

type SubmissionController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

func NewSubmissionController(logger *slog.Logger, svc domain.NotificationService) *SubmissionController {
	return &SubmissionController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitForm godoc
// @Summary Relay a form submission to the owner notification address
// @Description Accepts a contact, job application, or booking submission and forwards it as an HTML notification email. Job submissions may carry a base64-encoded resume attachment.
// @Tags forms
// @Accept json
// @Produce json
// @Param body body domain.Envelope true "Submission envelope"
// @Success 200 {object} helpers.FormResponse
// @Failure 400 {object} helpers.FormResponse "unrecognized submission type"
// @Failure 405 {object} helpers.FormResponse
// @Failure 500 {object} helpers.FormResponse "configuration, payload, or provider failure"
// @Router /api/submit-form [post]
func (c *SubmissionController) SubmitForm(w http.ResponseWriter, r *http.Request) {
	// Method is checked here rather than in the route pattern so non-POST
	// requests get the JSON 405 body the forms expect.
	if r.Method != http.MethodPost {
		h.WriteJSON(w, http.StatusMethodNotAllowed, false, h.MsgMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var env domain.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		// A malformed body is deliberately indistinguishable from a send
		// failure on the wire; the distinction lives in the logs.
		c.Logger.ErrorContext(r.Context(), "submission rejected", "code", "bad_payload", "err", err)
		h.WriteJSON(w, http.StatusInternalServerError, false, h.MsgEmailFailed)
		return
	}

	if err := c.Service.ProcessSubmission(r.Context(), &env); err != nil {
		if errors.Is(err, domain.ErrInvalidSubmissionType) {
			h.WriteJSON(w, http.StatusBadRequest, false, h.MsgInvalidType)
			return
		}
		c.Logger.ErrorContext(r.Context(), "submission failed",
			"code", errorCode(err),
			"type", env.Type,
			"err", err,
		)
		h.WriteJSON(w, http.StatusInternalServerError, false, h.MsgEmailFailed)
		return
	}

	h.WriteJSON(w, http.StatusOK, true, h.MsgEmailSent)
}

// errorCode maps an internal failure to a stable log code so operators can
// tell configuration, payload, and provider problems apart even though the
// wire response is the same for all of them.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrOwnerEmailMissing):
		return "config_missing"
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	default:
		return "send_failed"
	}
}
