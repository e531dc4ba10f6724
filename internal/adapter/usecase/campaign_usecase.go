package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adwizard/internal/core/domain"
	"adwizard/internal/core/port"
	"adwizard/internal/core/synth"
)

// CampaignUseCase provides business logic for the campaign builder. It
// orchestrates the repository and the synthesis layer to implement the
// port.CampaignUseCase interface.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	metrics *synth.MetricSynthesizer
	hourly  *synth.HourlyEngagementSynthesizer
	now     func() time.Time
}

// NewCampaignUseCase creates a usecase with the provided repository and
// synthesizers. A nil now falls back to time.Now.
func NewCampaignUseCase(repo port.CampaignRepository, metrics *synth.MetricSynthesizer, hourly *synth.HourlyEngagementSynthesizer, now func() time.Time) *CampaignUseCase {
	if now == nil {
		now = time.Now
	}
	return &CampaignUseCase{repo: repo, metrics: metrics, hourly: hourly, now: now}
}

// Launch synthesizes a metrics snapshot for the draft's budget and schedule,
// assigns an id and creation time, and appends the campaign to the store.
// The snapshot is computed exactly once here and never recomputed.
func (u *CampaignUseCase) Launch(ctx context.Context, draft domain.CampaignDraft, status domain.CampaignStatus) (*domain.Campaign, error) {
	metrics, err := u.metrics.Synthesize(draft.BudgetAmount, draft.ActiveDays())
	if err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{
		CampaignDraft: draft,
		ID:            uuid.NewString(),
		Status:        status,
		CreatedAt:     u.now().UTC(),
		Metrics:       metrics,
	}
	if err = u.repo.Save(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// List returns all stored campaigns.
func (u *CampaignUseCase) List(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.List(ctx)
}

// Get returns a single campaign by id.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.repo.GetByID(ctx, id)
}

// UpdateStatus changes a campaign's status, the only mutation after launch.
func (u *CampaignUseCase) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	return u.repo.UpdateStatus(ctx, id, status)
}

// Dashboard reads the campaign and derives its presentation data fresh:
// hourly engagement from the stored totals, insights from the stored metrics
// plus budget, and a weekly projection from the budget and schedule.
func (u *CampaignUseCase) Dashboard(ctx context.Context, id string) (*port.DashboardResp, error) {
	campaign, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	insights := synth.GenerateInsights(synth.InsightMetrics{
		Impressions: campaign.Metrics.Impressions,
		Clicks:      campaign.Metrics.Clicks,
		CTR:         campaign.Metrics.CTR,
		Conversions: campaign.Metrics.Conversions,
		Spend:       campaign.Metrics.Spend,
		Budget:      campaign.BudgetAmount,
	})

	return &port.DashboardResp{
		Campaign:         *campaign,
		HourlyEngagement: u.hourly.Synthesize(campaign.Metrics.Clicks, campaign.Metrics.Impressions),
		Insights:         insights,
		Projection:       synth.ProjectBudget(campaign.BudgetType, campaign.BudgetAmount, campaign.StartDate, campaign.EndDate),
	}, nil
}

// SuggestAdCopy fabricates ad copy variants from the wizard fields.
func (u *CampaignUseCase) SuggestAdCopy(in port.SuggestAdCopyReq) []domain.AdCopySuggestion {
	return synth.GenerateAdCopy(synth.AdCopyInput{
		BusinessName: in.BusinessName,
		Offer:        in.Offer,
		Goal:         in.Goal,
		BusinessType: in.BusinessType,
	})
}

// SuggestPersona fabricates an audience persona from the wizard fields.
func (u *CampaignUseCase) SuggestPersona(in port.SuggestPersonaReq) domain.AudiencePersona {
	return synth.GeneratePersona(synth.PersonaInput{
		BusinessType: in.BusinessType,
		Goal:         in.Goal,
		Description:  in.Description,
	})
}

// ProjectBudget estimates weekly reach and clicks for the budget step.
func (u *CampaignUseCase) ProjectBudget(in port.ProjectBudgetReq) domain.BudgetProjection {
	return synth.ProjectBudget(in.BudgetType, in.BudgetAmount, in.StartDate, in.EndDate)
}
