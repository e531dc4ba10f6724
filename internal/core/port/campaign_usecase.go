package port

import (
	"context"
	"time"

	"adwizard/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// builder. This interface is the primary port into the application domain;
// the HTTP adapter is its only caller in this service.
type CampaignUseCase interface {
	// Launch validates the draft, synthesizes a frozen metrics snapshot
	// from its budget and schedule, and stores the resulting campaign.
	Launch(ctx context.Context, draft domain.CampaignDraft, status domain.CampaignStatus) (*domain.Campaign, error)

	// List returns all stored campaigns.
	List(ctx context.Context) ([]domain.Campaign, error)

	// Get returns a single campaign by id, or ErrCampaignNotFound.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// UpdateStatus flips a campaign between Active and Draft.
	UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error)

	// Dashboard derives the presentation data for one campaign from its
	// stored metrics: hourly engagement, insights and a weekly projection.
	// Recomputed on every call, never persisted.
	Dashboard(ctx context.Context, id string) (*DashboardResp, error)

	// SuggestAdCopy fabricates ad copy variants for the wizard. The result
	// may be empty when the goal is unrecognised.
	SuggestAdCopy(in SuggestAdCopyReq) []domain.AdCopySuggestion

	// SuggestPersona fabricates an audience persona for the wizard.
	SuggestPersona(in SuggestPersonaReq) domain.AudiencePersona

	// ProjectBudget estimates weekly reach and clicks for a budget and
	// schedule, recalculated live as the wizard fields change.
	ProjectBudget(in ProjectBudgetReq) domain.BudgetProjection
}

// DashboardResp bundles a campaign with the derived presentation data the
// dashboard renders alongside its frozen metrics.
type DashboardResp struct {
	Campaign         domain.Campaign                `json:"campaign"`
	HourlyEngagement []domain.HourlyEngagementPoint `json:"hourlyEngagement"`
	Insights         []string                       `json:"insights"`
	Projection       domain.BudgetProjection        `json:"projection"`
}

// SuggestAdCopyReq carries the wizard fields for ad copy generation.
type SuggestAdCopyReq struct {
	BusinessName string
	Offer        string
	Goal         domain.CampaignGoal
	BusinessType domain.BusinessType
}

// SuggestPersonaReq carries the wizard fields for persona generation.
type SuggestPersonaReq struct {
	BusinessType domain.BusinessType
	Goal         domain.CampaignGoal
	Description  string
}

// ProjectBudgetReq carries the budget step fields for a live projection.
type ProjectBudgetReq struct {
	BudgetType   domain.BudgetType
	BudgetAmount float64
	StartDate    time.Time
	EndDate      *time.Time
}
