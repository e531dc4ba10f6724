package httpadapter

import (
	"log/slog"
	"net/http"

	"adwizard/internal/core/domain"
	"adwizard/internal/core/port"
)

type suggestAdCopyRequest struct {
	BusinessName string `json:"businessName" validate:"required"`
	Offer        string `json:"offer" validate:"required"`
	Goal         string `json:"goal" validate:"required"`
	BusinessType string `json:"businessType"`
}

// handleSuggestAdCopy fabricates ad copy variants for the wizard. An
// unrecognised goal is a defined no-match outcome and yields an empty array,
// not an error.
func (h *Handler) handleSuggestAdCopy(w http.ResponseWriter, r *http.Request) {
	var req suggestAdCopyRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	suggestions := h.svc.SuggestAdCopy(port.SuggestAdCopyReq{
		BusinessName: req.BusinessName,
		Offer:        req.Offer,
		Goal:         domain.CampaignGoal(req.Goal),
		BusinessType: domain.BusinessType(req.BusinessType),
	})
	if suggestions == nil {
		suggestions = []domain.AdCopySuggestion{}
	}
	if err := writeJSON(w, http.StatusOK, suggestions); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type suggestPersonaRequest struct {
	BusinessType string `json:"businessType" validate:"required"`
	Goal         string `json:"goal" validate:"required"`
	Description  string `json:"description"`
}

// handleSuggestPersona fabricates an audience persona for the wizard. An
// unrecognised business type falls through to the generic persona.
func (h *Handler) handleSuggestPersona(w http.ResponseWriter, r *http.Request) {
	var req suggestPersonaRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	persona := h.svc.SuggestPersona(port.SuggestPersonaReq{
		BusinessType: domain.BusinessType(req.BusinessType),
		Goal:         domain.CampaignGoal(req.Goal),
		Description:  req.Description,
	})
	if err := writeJSON(w, http.StatusOK, persona); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type projectBudgetRequest struct {
	BudgetType   string  `json:"budgetType" validate:"required"`
	BudgetAmount float64 `json:"budgetAmount" validate:"gte=0"`
	StartDate    string  `json:"startDate" validate:"required"`
	EndDate      *string `json:"endDate"`
}

// handleProjectBudget returns a live weekly reach/click projection for the
// budget step. Called reactively on every field change, so it does no
// persistence at all.
func (h *Handler) handleProjectBudget(w http.ResponseWriter, r *http.Request) {
	var req projectBudgetRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	budgetType := domain.BudgetType(req.BudgetType)
	if !budgetType.Valid() {
		http.Error(w, "unknown budgetType", http.StatusBadRequest)
		return
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

	projection := h.svc.ProjectBudget(port.ProjectBudgetReq{
		BudgetType:   budgetType,
		BudgetAmount: req.BudgetAmount,
		StartDate:    start,
		EndDate:      end,
	})
	if err := writeJSON(w, http.StatusOK, projection); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
