package synth

import "fmt"

// industryBaselineCTR is the average click-through rate percentage insights
// are judged against.
const industryBaselineCTR = 2.0

// InsightMetrics is the snapshot the insight rules evaluate: a campaign's
// frozen metrics plus its budget.
type InsightMetrics struct {
	Impressions int
	Clicks      int
	CTR         float64
	Conversions int
	Spend       float64
	Budget      float64
}

// GenerateInsights applies threshold rules to the snapshot and returns one
// to three observations in rule order: CTR vs. the industry baseline, budget
// utilisation bands, conversion rate. When no rule fires, a single generic
// message is returned. No randomness; repeated calls yield the same list.
func GenerateInsights(m InsightMetrics) []string {
	var insights []string

	if m.CTR > industryBaselineCTR*1.2 {
		insights = append(insights, fmt.Sprintf("Your CTR of %.2f%% is above average for your industry. Consider increasing budget by 20%% to scale successful campaigns.", m.CTR))
	} else if m.CTR < industryBaselineCTR*0.8 {
		insights = append(insights, "Your CTR is below average. Try A/B testing different ad copy or adjusting your audience targeting.")
	}

	// A zero budget has no meaningful utilisation, so the band rule is
	// skipped rather than dividing by zero.
	if m.Budget > 0 {
		utilization := m.Spend / m.Budget * 100
		if utilization < 50 {
			insights = append(insights, fmt.Sprintf("You're only using %.0f%% of your budget. Consider increasing daily spend to reach more potential customers.", utilization))
		} else if utilization > 90 {
			insights = append(insights, "Your budget is nearly exhausted. Campaign is performing well - consider extending the duration or increasing budget.")
		}
	}

	if m.Conversions > 0 && m.Clicks > 0 {
		rate := float64(m.Conversions) / float64(m.Clicks) * 100
		insights = append(insights, fmt.Sprintf("Your conversion rate is %.1f%%. Most engagement happens on weekdays; think about scheduling heavier spend Mon-Fri.", rate))
	}

	if len(insights) == 0 {
		insights = append(insights, "Your campaign is performing steadily. Monitor metrics closely and adjust targeting or creative based on performance trends.")
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}
