package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"careformrelay/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(submissionController *controllers.SubmissionController) *http.ServeMux {
	mux := http.NewServeMux()

	// No method in the pattern: the controller answers non-POST requests
	// with the JSON 405 body the forms expect, not the mux default.
	mux.HandleFunc("/api/submit-form", submissionController.SubmitForm)

	mux.HandleFunc("GET /healthz", healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
