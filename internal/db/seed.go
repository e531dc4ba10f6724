package db

import (
	"context"
	"fmt"
	"time"

	"adwizard/internal/core/domain"
	"adwizard/internal/core/port"
)

// Seed launches a handful of demo campaigns through the normal launch path
// so the dashboard has data to render immediately. Works with any storage
// driver since it goes through the usecase.
func Seed(ctx context.Context, uc port.CampaignUseCase) error {
	demos := []struct {
		name     string
		business string
		btype    domain.BusinessType
		goal     domain.CampaignGoal
		offer    string
		budget   float64
		days     int
	}{
		{"Spring Sale Push", "Willow & Co", domain.BusinessRetailD2C, domain.GoalOnlineSales, "20% off everything this week", 500, 7},
		{"New Patient Drive", "Brightsmile Dental", domain.BusinessLocalService, domain.GoalCallsEnquiries, "Free first consultation", 300, 14},
		{"Trial Signups Q2", "Flowdeck", domain.BusinessOnlineSaaS, domain.GoalWebsiteVisits, "14-day free trial, no card required", 800, 30},
	}

	for i, d := range demos {
		start := time.Now().AddDate(0, 0, -d.days)
		end := time.Now()
		draft := domain.CampaignDraft{
			CampaignName:     d.name,
			BusinessName:     d.business,
			BusinessType:     d.btype,
			Goal:             d.goal,
			AudiencePreset:   domain.AudienceBroad,
			BudgetType:       domain.BudgetDaily,
			BudgetAmount:     d.budget,
			StartDate:        start,
			EndDate:          &end,
			OfferDescription: d.offer,
		}
		if copies := uc.SuggestAdCopy(port.SuggestAdCopyReq{
			BusinessName: d.business,
			Offer:        d.offer,
			Goal:         d.goal,
			BusinessType: d.btype,
		}); len(copies) > 0 {
			draft.SelectedAdCopy = &copies[0]
		}
		if _, err := uc.Launch(ctx, draft, domain.StatusActive); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i+1, err)
		}
	}
	return nil
}
