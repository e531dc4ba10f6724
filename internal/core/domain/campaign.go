package domain

import (
	"math"
	"time"
)

// CampaignStatus is the lifecycle state of a saved campaign. Status is the
// only mutable field of a Campaign after launch.
type CampaignStatus string

const (
	StatusActive CampaignStatus = "Active"
	StatusDraft  CampaignStatus = "Draft"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	return s == StatusActive || s == StatusDraft
}

// CampaignDraft holds the wizard-collected fields of a campaign before launch.
type CampaignDraft struct {
	CampaignName string       `json:"campaignName"`
	BusinessName string       `json:"businessName"`
	BusinessType BusinessType `json:"businessType"`
	Goal         CampaignGoal `json:"goal"`

	Location                  string         `json:"location"`
	Radius                    string         `json:"radius"`
	AudiencePreset            AudiencePreset `json:"audiencePreset"`
	CustomAudienceDescription string         `json:"customAudienceDescription"`

	BudgetType   BudgetType `json:"budgetType"`
	BudgetAmount float64    `json:"budgetAmount"`
	StartDate    time.Time  `json:"startDate"`
	// EndDate is nil when the campaign runs continuously.
	EndDate *time.Time `json:"endDate"`

	OfferDescription string `json:"offerDescription"`
	// SelectedAdCopy is the suggestion the user picked; EditedAdCopy is the
	// user's derivative of it. EditedAdCopy always wins for display and launch.
	SelectedAdCopy *AdCopySuggestion `json:"selectedAdCopy"`
	EditedAdCopy   *AdCopySuggestion `json:"editedAdCopy"`
	ImageURL       string            `json:"imageUrl"`
}

// AdCopy returns the creative to use for the campaign: the edited copy when
// present, otherwise the selected one. Nil when the user chose neither.
func (d CampaignDraft) AdCopy() *AdCopySuggestion {
	if d.EditedAdCopy != nil {
		return d.EditedAdCopy
	}
	return d.SelectedAdCopy
}

// ActiveDays returns the number of days the draft's schedule covers, rounded
// up. A continuous campaign (no end date) counts as 7 days.
func (d CampaignDraft) ActiveDays() int {
	return ActiveDays(d.StartDate, d.EndDate)
}

// ActiveDays computes ceil(end-start) in days, or 7 when end is nil. The
// result is never below 1 so downstream synthesis cannot divide by zero.
func ActiveDays(start time.Time, end *time.Time) int {
	if end == nil {
		return 7
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Campaign is a launched campaign record. Metrics are synthesized once at
// save time and frozen; only Status changes afterwards.
type Campaign struct {
	CampaignDraft

	ID        string          `json:"id"`
	Status    CampaignStatus  `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Metrics   CampaignMetrics `json:"metrics"`
}

// DailyPerformancePoint is one day of synthesized clicks and impressions.
// Points are ordered oldest to newest, the last one dated "today".
type DailyPerformancePoint struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Clicks      int    `json:"clicks"`
	Impressions int    `json:"impressions"`
}

// CampaignMetrics is the frozen synthetic performance snapshot attached to a
// campaign at save time.
type CampaignMetrics struct {
	Impressions      int                     `json:"impressions"`
	Clicks           int                     `json:"clicks"`
	CTR              float64                 `json:"ctr"` // percent, 2 decimals
	Conversions      int                     `json:"conversions"`
	Spend            float64                 `json:"spend"` // currency, 2 decimals
	DailyPerformance []DailyPerformancePoint `json:"dailyPerformance"`
}
