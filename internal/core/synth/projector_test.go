package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adwizard/internal/core/domain"
)

func TestProjectBudgetZeroAmount(t *testing.T) {
	p := ProjectBudget(domain.BudgetDaily, 0, time.Now(), nil)
	require.Equal(t, domain.BudgetProjection{}, p)
}

func TestProjectBudgetContinuousDaily(t *testing.T) {
	// no end date counts as 7 days: daily 10 -> total 70 -> weekly 70
	p := ProjectBudget(domain.BudgetDaily, 10, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), nil)

	require.Equal(t, 140, p.ClicksLow)  // 70 / 0.50
	require.Equal(t, 224, p.ClicksHigh) // 140 * 1.6
	require.Equal(t, 1400, p.ReachLow)  // 70 / 0.05
	require.Equal(t, 2100, p.ReachHigh) // 1400 * 1.5
}

func TestProjectBudgetTotalOverTwoWeeks(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	// total 140 over 14 days -> weekly 70, same ranges as the daily case
	p := ProjectBudget(domain.BudgetTotal, 140, start, &end)
	require.Equal(t, 140, p.ClicksLow)
	require.Equal(t, 1400, p.ReachLow)
}

func TestProjectBudgetDailyScalesByDays(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	// daily 10 over 14 days -> total 140 -> weekly 70
	p := ProjectBudget(domain.BudgetDaily, 10, start, &end)
	require.Equal(t, 140, p.ClicksLow)
	require.Equal(t, 1400, p.ReachLow)
}

func TestProjectBudgetRangeOrdering(t *testing.T) {
	p := ProjectBudget(domain.BudgetTotal, 333.33, time.Now(), nil)
	require.LessOrEqual(t, p.ReachLow, p.ReachHigh)
	require.LessOrEqual(t, p.ClicksLow, p.ClicksHigh)
}
