package synth

import (
	"math/rand"
	"time"

	"adwizard/internal/core/domain"
)

// diurnalWeights models a typical engagement curve over the day: near-zero
// overnight, climbing through the morning, peaking noon to 5pm with a
// secondary evening peak, then falling back towards midnight. Index is the
// hour of day; values are normalised before use.
var diurnalWeights = [24]float64{
	0.02, 0.01, 0.01, 0.01, 0.01, 0.02, // 12am-5am
	0.03, 0.04, 0.05, 0.07, 0.08, 0.09, // 6am-11am
	0.10, 0.11, 0.12, 0.11, 0.10, 0.09, // 12pm-5pm
	0.08, 0.09, 0.10, 0.08, 0.05, 0.03, // 6pm-11pm
}

// HourlyEngagementSynthesizer redistributes campaign totals across the 24
// hours of the day. Output is presentation data, regenerated on every
// dashboard render and never stored, so repeated calls intentionally yield
// different shapes.
type HourlyEngagementSynthesizer struct {
	rnd *rand.Rand
}

// NewHourlyEngagementSynthesizer returns a synthesizer using the given
// random source, or a time-seeded one when rnd is nil.
func NewHourlyEngagementSynthesizer(rnd *rand.Rand) *HourlyEngagementSynthesizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HourlyEngagementSynthesizer{rnd: rnd}
}

// Synthesize spreads totalClicks and totalImpressions over hours 0..23 using
// the diurnal curve plus bounded jitter. It always returns exactly 24 points
// with non-negative counts; the per-hour sum approximates the totals rather
// than matching them exactly.
func (s *HourlyEngagementSynthesizer) Synthesize(totalClicks, totalImpressions int) []domain.HourlyEngagementPoint {
	var sum float64
	for _, w := range diurnalWeights {
		sum += w
	}

	points := make([]domain.HourlyEngagementPoint, 0, len(diurnalWeights))
	for hour, w := range diurnalWeights {
		weight := w / sum
		clicks := int(float64(totalClicks)*weight + (s.rnd.Float64()-0.5)*float64(totalClicks)*0.1)
		impressions := int(float64(totalImpressions)*weight + (s.rnd.Float64()-0.5)*float64(totalImpressions)*0.1)
		clicks = max(0, clicks)
		impressions = max(0, impressions)

		var rate float64
		if impressions > 0 {
			rate = round2(float64(clicks) / float64(impressions) * 100)
		}
		points = append(points, domain.HourlyEngagementPoint{
			Hour:           hour,
			Clicks:         clicks,
			Impressions:    impressions,
			EngagementRate: rate,
		})
	}
	return points
}
