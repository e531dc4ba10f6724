package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adwizard/internal/adapter/memory"
	"adwizard/internal/core/domain"
	"adwizard/internal/core/port"
	"adwizard/internal/core/synth"
)

func newTestUseCase() *CampaignUseCase {
	now := func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	return NewCampaignUseCase(
		memory.NewCampaignRepository(),
		synth.NewMetricSynthesizer(rand.New(rand.NewSource(1)), now),
		synth.NewHourlyEngagementSynthesizer(rand.New(rand.NewSource(2))),
		now,
	)
}

func testDraft(end *time.Time) domain.CampaignDraft {
	return domain.CampaignDraft{
		CampaignName:     "Summer Push",
		BusinessName:     "Acme",
		BusinessType:     domain.BusinessRetailD2C,
		Goal:             domain.GoalOnlineSales,
		BudgetType:       domain.BudgetDaily,
		BudgetAmount:     100,
		StartDate:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          end,
		OfferDescription: "20% off",
	}
}

func TestLaunchAttachesFrozenMetrics(t *testing.T) {
	svc := newTestUseCase()
	ctx := context.Background()

	end := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	campaign, err := svc.Launch(ctx, testDraft(&end), domain.StatusActive)
	require.NoError(t, err)

	require.NotEmpty(t, campaign.ID)
	require.Equal(t, domain.StatusActive, campaign.Status)
	require.Len(t, campaign.Metrics.DailyPerformance, 10)
	require.LessOrEqual(t, campaign.Metrics.Spend, campaign.BudgetAmount)

	// the stored record must carry the exact snapshot computed at launch
	stored, err := svc.Get(ctx, campaign.ID)
	require.NoError(t, err)
	require.Equal(t, campaign.Metrics, stored.Metrics)
}

func TestLaunchContinuousDefaultsToSevenDays(t *testing.T) {
	svc := newTestUseCase()

	campaign, err := svc.Launch(context.Background(), testDraft(nil), domain.StatusDraft)
	require.NoError(t, err)
	require.Len(t, campaign.Metrics.DailyPerformance, 7)
	require.Equal(t, domain.StatusDraft, campaign.Status)
}

func TestDashboardDerivesFreshData(t *testing.T) {
	svc := newTestUseCase()
	ctx := context.Background()

	campaign, err := svc.Launch(ctx, testDraft(nil), domain.StatusActive)
	require.NoError(t, err)

	resp, err := svc.Dashboard(ctx, campaign.ID)
	require.NoError(t, err)
	require.Equal(t, campaign.ID, resp.Campaign.ID)
	require.Len(t, resp.HourlyEngagement, 24)
	require.NotEmpty(t, resp.Insights)
	require.LessOrEqual(t, len(resp.Insights), 3)
	require.Positive(t, resp.Projection.ReachLow)

	// hourly data is regenerated per call; the stored metrics are not
	again, err := svc.Dashboard(ctx, campaign.ID)
	require.NoError(t, err)
	require.Equal(t, resp.Campaign.Metrics, again.Campaign.Metrics)
}

func TestDashboardUnknownCampaign(t *testing.T) {
	svc := newTestUseCase()

	_, err := svc.Dashboard(context.Background(), "nope")
	require.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestUpdateStatusRoundTrip(t *testing.T) {
	svc := newTestUseCase()
	ctx := context.Background()

	campaign, err := svc.Launch(ctx, testDraft(nil), domain.StatusActive)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, campaign.ID, domain.StatusDraft)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDraft, updated.Status)
	// metrics survive the status flip untouched
	require.Equal(t, campaign.Metrics, updated.Metrics)
}

func TestSuggestionsPassThrough(t *testing.T) {
	svc := newTestUseCase()

	copies := svc.SuggestAdCopy(port.SuggestAdCopyReq{
		BusinessName: "Acme",
		Offer:        "20% off",
		Goal:         domain.GoalOnlineSales,
	})
	require.Len(t, copies, 3)

	persona := svc.SuggestPersona(port.SuggestPersonaReq{
		BusinessType: domain.BusinessOnlineSaaS,
		Goal:         domain.GoalWebsiteVisits,
	})
	require.NotEmpty(t, persona.Title)

	projection := svc.ProjectBudget(port.ProjectBudgetReq{
		BudgetType:   domain.BudgetDaily,
		BudgetAmount: 10,
		StartDate:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Equal(t, 140, projection.ClicksLow)
}
