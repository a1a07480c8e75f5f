package main

import (
	"log"
	"net/http"

	"careformrelay/config"
	_ "careformrelay/docs"
	emailadapter "careformrelay/internal/adapters/email"
	delivery "careformrelay/internal/delivery/http"
	"careformrelay/internal/delivery/http/controllers"
	"careformrelay/internal/delivery/http/middleware"
	"careformrelay/internal/services"
)

// @title Form Submission Relay API
// @version 1.0
// @description Relays public contact, job application, and booking form submissions to the owner notification address as HTML emails.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	if cfg.OwnerEmail == "" {
		// Not fatal: the relay stays up and answers with a generic failure,
		// but the reason is only visible here.
		logger.Error("OWNER_EMAIL is not set; all submissions will fail")
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:     cfg.EmailProvider,
		FromAddress:  cfg.FromEmail,
		FromName:     cfg.FromName,
		ResendAPIKey: cfg.ResendAPIKey,
		SES: emailadapter.SESConfig{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}

	renderer := emailadapter.NewTemplateRenderer(cfg.SiteName)
	notificationService := services.NewNotificationService(logger, mailer, renderer, cfg.OwnerEmail)
	submissionController := controllers.NewSubmissionController(logger, notificationService)

	mux := delivery.NewRouter(submissionController)
	handler := middleware.LoggingMiddleware(logger,
		middleware.CORS(cfg.AllowedOrigins, mux))

	addr := ":" + cfg.Port
	logger.Info("starting form relay", "addr", addr, "provider", cfg.EmailProvider, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
