package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"adwizard/internal/adapter/memory"
	"adwizard/internal/adapter/usecase"
	"adwizard/internal/core/domain"
	"adwizard/internal/core/synth"
)

func newTestHandler() *Handler {
	svc := usecase.NewCampaignUseCase(
		memory.NewCampaignRepository(),
		synth.NewMetricSynthesizer(rand.New(rand.NewSource(1)), nil),
		synth.NewHourlyEngagementSynthesizer(rand.New(rand.NewSource(2))),
		nil,
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger, []string{"*"})
}

func postJSON(t *testing.T, h *Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestSuggestAdCopyEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/v1/suggest/adcopy", map[string]any{
		"businessName": "Acme",
		"offer":        "20% off",
		"goal":         "Online sales",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var suggestions []domain.AdCopySuggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 3)
	require.Equal(t, "Shop Now", suggestions[0].CTALabel)
}

func TestSuggestAdCopyUnknownGoalReturnsEmptyArray(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/v1/suggest/adcopy", map[string]any{
		"businessName": "Acme",
		"offer":        "20% off",
		"goal":         "Brand awareness",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestSuggestAdCopyMissingFields(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/v1/suggest/adcopy", map[string]any{"goal": "Online sales"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectBudgetEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/v1/projections/budget", map[string]any{
		"budgetType":   "Daily budget",
		"budgetAmount": 10,
		"startDate":    "2024-05-01",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var projection domain.BudgetProjection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projection))
	require.Equal(t, 140, projection.ClicksLow)
	require.Equal(t, 1400, projection.ReachLow)
}

func TestProjectBudgetZeroAmount(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/v1/projections/budget", map[string]any{
		"budgetType":   "Daily budget",
		"budgetAmount": 0,
		"startDate":    "2024-05-01",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var projection domain.BudgetProjection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projection))
	require.Equal(t, domain.BudgetProjection{}, projection)
}

func launchPayload() map[string]any {
	return map[string]any{
		"campaignName": "Summer Push",
		"businessName": "Acme",
		"businessType": "Retail / D2C",
		"goal":         "Online sales",
		"budgetType":   "Daily budget",
		"budgetAmount": 100,
		"startDate":    "2024-05-01",
		"endDate":      "2024-05-08",
	}
}

func TestLaunchCampaignEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/v1/campaigns", launchPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var campaign domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaign))
	require.NotEmpty(t, campaign.ID)
	require.Equal(t, domain.StatusActive, campaign.Status)
	require.Len(t, campaign.Metrics.DailyPerformance, 7)

	// launched campaign is readable back through the API
	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+campaign.ID, nil)
	getRec := httptest.NewRecorder()
	h.Router().ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)

	dashReq := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+campaign.ID+"/dashboard", nil)
	dashRec := httptest.NewRecorder()
	h.Router().ServeHTTP(dashRec, dashReq)
	require.Equal(t, http.StatusOK, dashRec.Code)
}

func TestLaunchCampaignRejectsUnknownGoal(t *testing.T) {
	h := newTestHandler()

	payload := launchPayload()
	payload["goal"] = "Brand awareness"
	rec := postJSON(t, h, "/api/v1/campaigns", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLaunchCampaignRejectsZeroBudget(t *testing.T) {
	h := newTestHandler()

	payload := launchPayload()
	payload["budgetAmount"] = 0
	rec := postJSON(t, h, "/api/v1/campaigns", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/v1/campaigns", launchPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var campaign domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaign))

	raw, _ := json.Marshal(map[string]any{"status": "Draft"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/campaigns/"+campaign.ID+"/status", bytes.NewReader(raw))
	patched := httptest.NewRecorder()
	h.Router().ServeHTTP(patched, req)
	require.Equal(t, http.StatusOK, patched.Code)

	var updated domain.Campaign
	require.NoError(t, json.Unmarshal(patched.Body.Bytes(), &updated))
	require.Equal(t, domain.StatusDraft, updated.Status)
}

func TestGetCampaignNotFound(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/unknown", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
