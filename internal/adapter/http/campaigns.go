package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adwizard/internal/core/domain"
	"adwizard/internal/core/port"
)

// launchCampaignRequest is the payload collected by the wizard's review
// step. Dates arrive in the wizard's date-only format; endDate is omitted
// for a continuously running campaign.
type launchCampaignRequest struct {
	CampaignName string `json:"campaignName" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	BusinessType string `json:"businessType" validate:"required"`
	Goal         string `json:"goal" validate:"required"`

	Location                  string `json:"location"`
	Radius                    string `json:"radius"`
	AudiencePreset            string `json:"audiencePreset"`
	CustomAudienceDescription string `json:"customAudienceDescription"`

	BudgetType   string  `json:"budgetType" validate:"required"`
	BudgetAmount float64 `json:"budgetAmount" validate:"gt=0"`
	StartDate    string  `json:"startDate" validate:"required"`
	EndDate      *string `json:"endDate"`

	OfferDescription string                   `json:"offerDescription"`
	SelectedAdCopy   *domain.AdCopySuggestion `json:"selectedAdCopy"`
	EditedAdCopy     *domain.AdCopySuggestion `json:"editedAdCopy"`
	ImageURL         string                   `json:"imageUrl"`

	// Status defaults to Active when omitted.
	Status string `json:"status"`
}

// handleLaunchCampaign validates the wizard payload, synthesizes metrics and
// stores the campaign. Returns 201 with the stored record on success,
// HTTP 400 on malformed or invalid input and HTTP 500 on internal errors.
func (h *Handler) handleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	var req launchCampaignRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	businessType := domain.BusinessType(req.BusinessType)
	goal := domain.CampaignGoal(req.Goal)
	budgetType := domain.BudgetType(req.BudgetType)
	if !businessType.Valid() || !goal.Valid() || !budgetType.Valid() {
		http.Error(w, "unknown businessType, goal or budgetType", http.StatusBadRequest)
		return
	}

	status := domain.StatusActive
	if req.Status != "" {
		status = domain.CampaignStatus(req.Status)
		if !status.Valid() {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		http.Error(w, "invalid startDate", http.StatusBadRequest)
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		http.Error(w, "invalid endDate", http.StatusBadRequest)
		return
	}

	draft := domain.CampaignDraft{
		CampaignName:              req.CampaignName,
		BusinessName:              req.BusinessName,
		BusinessType:              businessType,
		Goal:                      goal,
		Location:                  req.Location,
		Radius:                    req.Radius,
		AudiencePreset:            domain.AudiencePreset(req.AudiencePreset),
		CustomAudienceDescription: req.CustomAudienceDescription,
		BudgetType:                budgetType,
		BudgetAmount:              req.BudgetAmount,
		StartDate:                 start,
		EndDate:                   end,
		OfferDescription:          req.OfferDescription,
		SelectedAdCopy:            req.SelectedAdCopy,
		EditedAdCopy:              req.EditedAdCopy,
		ImageURL:                  req.ImageURL,
	}

	campaign, err := h.svc.Launch(r.Context(), draft, status)
	if err != nil {
		h.logger.Error("launch campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err = writeJSON(w, http.StatusCreated, campaign); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleListCampaigns returns all stored campaigns as a JSON array.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err = writeJSON(w, http.StatusOK, campaigns); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleGetCampaign returns one campaign by its {id} path parameter.
// Unknown ids produce HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err = writeJSON(w, http.StatusOK, campaign); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// handleUpdateStatus flips a campaign between Active and Draft, the only
// mutation permitted after launch.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	status := domain.CampaignStatus(req.Status)
	if !status.Valid() {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}

	campaign, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("update status error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err = writeJSON(w, http.StatusOK, campaign); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
