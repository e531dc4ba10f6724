package synth

import (
	"time"

	"adwizard/internal/core/domain"
)

// Fixed unit-cost assumptions behind the forward-looking estimate.
const (
	costPerClick      = 0.50
	costPerImpression = 0.05

	reachUpperFactor  = 1.5
	clicksUpperFactor = 1.6
)

// ProjectBudget estimates weekly reach and click ranges for a budget and
// schedule. A daily budget is scaled by the number of active days before
// being normalised to a week. A zero budget projects to all-zero ranges.
func ProjectBudget(budgetType domain.BudgetType, amount float64, start time.Time, end *time.Time) domain.BudgetProjection {
	if amount == 0 {
		return domain.BudgetProjection{}
	}

	days := domain.ActiveDays(start, end)
	total := amount
	if budgetType == domain.BudgetDaily {
		total = amount * float64(days)
	}
	weekly := total / (float64(days) / 7)

	clicks := int(weekly / costPerClick)
	reach := int(weekly / costPerImpression)
	return domain.BudgetProjection{
		ReachLow:   reach,
		ReachHigh:  int(float64(reach) * reachUpperFactor),
		ClicksLow:  clicks,
		ClicksHigh: int(float64(clicks) * clicksUpperFactor),
	}
}
