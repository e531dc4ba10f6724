package domain

// HourlyEngagementPoint is one hour of redistributed clicks and impressions.
// A full series holds exactly 24 points, one per hour of day.
type HourlyEngagementPoint struct {
	Hour        int `json:"hour"` // 0-23
	Clicks      int `json:"clicks"`
	Impressions int `json:"impressions"`
	// EngagementRate is clicks/impressions as a percentage, rounded to two
	// decimals, or 0 when the hour received no impressions.
	EngagementRate float64 `json:"engagementRate"`
}

// BudgetProjection is a forward-looking weekly estimate derived from budget
// and schedule. Ranges are [low, high]; all zero when the budget is zero.
type BudgetProjection struct {
	ReachLow   int `json:"reachLow"`
	ReachHigh  int `json:"reachHigh"`
	ClicksLow  int `json:"clicksLow"`
	ClicksHigh int `json:"clicksHigh"`
}
