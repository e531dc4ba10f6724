package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adwizard/internal/core/port"
)

// handleDashboard returns the campaign together with its derived
// presentation data: hourly engagement, insights and the weekly projection.
// The derived parts are recomputed on every call and never stored, so two
// consecutive requests yield different hourly shapes. Unknown ids produce
// HTTP 404.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Dashboard(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("dashboard error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err = writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
