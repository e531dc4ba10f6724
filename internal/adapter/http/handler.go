package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"adwizard/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign usecase to execute business logic, a logger
// for structured logging, and a validator for inbound payloads. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.CampaignUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// usecase implementation, a logger and the origins allowed by CORS. The
// returned Handler registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, allowedOrigins []string) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleLaunchCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Patch("/campaigns/{id}/status", h.handleUpdateStatus)
		r.Get("/campaigns/{id}/dashboard", h.handleDashboard)

		r.Post("/suggest/adcopy", h.handleSuggestAdCopy)
		r.Post("/suggest/persona", h.handleSuggestPersona)
		r.Post("/projections/budget", h.handleProjectBudget)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
