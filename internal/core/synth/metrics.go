// Package synth fabricates campaign performance data: aggregate metrics at
// save time, hourly engagement and insights at dashboard render time, and
// copy/persona suggestions during the wizard. Nothing here performs I/O;
// randomness and the clock are injected so tests can replay generation.
package synth

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"adwizard/internal/core/domain"
)

// ErrNoActiveDays is returned when metrics are requested for a schedule
// covering less than one day.
var ErrNoActiveDays = errors.New("active days must be at least 1")

// MetricSynthesizer fabricates aggregate and per-day performance numbers for
// a freshly launched campaign. The result is attached to the campaign record
// once and never recomputed.
type MetricSynthesizer struct {
	rnd *rand.Rand
	now func() time.Time
}

// NewMetricSynthesizer returns a synthesizer using the given random source
// and clock. Nil arguments fall back to a time-seeded source and time.Now.
func NewMetricSynthesizer(rnd *rand.Rand, now func() time.Time) *MetricSynthesizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &MetricSynthesizer{rnd: rnd, now: now}
}

// Synthesize fabricates a metrics snapshot for the given budget and number
// of active days. Spend never exceeds budget and daily counts are clamped to
// zero, so every invariant of the data model holds at generation time.
func (s *MetricSynthesizer) Synthesize(budget float64, activeDays int) (domain.CampaignMetrics, error) {
	if activeDays < 1 {
		return domain.CampaignMetrics{}, ErrNoActiveDays
	}

	impressions := int(1000+s.rnd.Float64()*2000) * activeDays
	clicks := int(50+s.rnd.Float64()*100) * activeDays
	ctr := round2(float64(clicks) / float64(impressions) * 100)
	conversions := int(float64(clicks) * (0.05 + s.rnd.Float64()*0.1))
	spend := round2(math.Min(budget*0.7+s.rnd.Float64()*budget*0.3, budget))

	daily := make([]domain.DailyPerformancePoint, 0, activeDays)
	today := s.now()
	for i := activeDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		dayClicks := int(float64(clicks)/float64(activeDays) + (s.rnd.Float64()-0.5)*20)
		dayImpressions := int(float64(impressions)/float64(activeDays) + (s.rnd.Float64()-0.5)*200)
		daily = append(daily, domain.DailyPerformancePoint{
			Date:        day.Format("2006-01-02"),
			Clicks:      max(0, dayClicks),
			Impressions: max(0, dayImpressions),
		})
	}

	return domain.CampaignMetrics{
		Impressions:      impressions,
		Clicks:           clicks,
		CTR:              ctr,
		Conversions:      conversions,
		Spend:            spend,
		DailyPerformance: daily,
	}, nil
}

// round2 rounds v to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
