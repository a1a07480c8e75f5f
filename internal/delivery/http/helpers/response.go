package helpers

import (
	"encoding/json"
	"net/http"
)

// Caller-visible response messages. These are part of the wire contract; any
// detail beyond them stays in server logs.
const (
	MsgEmailSent        = "Email sent successfully"
	MsgEmailFailed      = "Failed to send email"
	MsgInvalidType      = "Invalid submission type"
	MsgMethodNotAllowed = "Method not allowed"
)

// FormResponse is the wire envelope for every relay response.
// swagger:model FormResponse
type FormResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes a FormResponse with the given outcome and message.
func WriteJSON(w http.ResponseWriter, statusCode int, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(FormResponse{Success: success, Message: message})
}
