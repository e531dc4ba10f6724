package synth

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMetricSynthesizerBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s := NewMetricSynthesizer(rnd, fixedClock(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)))

	budgets := []float64{1, 50, 100, 999.99, 10000}
	days := []int{1, 3, 7, 30}
	for i := 0; i < 50; i++ {
		budget := budgets[i%len(budgets)]
		activeDays := days[i%len(days)]

		m, err := s.Synthesize(budget, activeDays)
		require.NoError(t, err)

		require.LessOrEqual(t, m.Spend, budget, "spend must never exceed budget")
		require.GreaterOrEqual(t, m.CTR, 0.0)
		require.LessOrEqual(t, m.CTR, 100.0)
		require.Positive(t, m.Impressions)
		require.Positive(t, m.Clicks)
		require.GreaterOrEqual(t, m.Conversions, 0)
	}
}

func TestMetricSynthesizerCTRInvariant(t *testing.T) {
	s := NewMetricSynthesizer(rand.New(rand.NewSource(7)), fixedClock(time.Now()))

	m, err := s.Synthesize(250, 5)
	require.NoError(t, err)

	want := math.Round(float64(m.Clicks)/float64(m.Impressions)*100*100) / 100
	require.Equal(t, want, m.CTR)
}

func TestMetricSynthesizerDailyPerformance(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	s := NewMetricSynthesizer(rand.New(rand.NewSource(3)), fixedClock(today))

	const activeDays = 7
	m, err := s.Synthesize(100, activeDays)
	require.NoError(t, err)
	require.Len(t, m.DailyPerformance, activeDays)

	// oldest first, most recent point dated today
	for i, p := range m.DailyPerformance {
		wantDate := today.AddDate(0, 0, -(activeDays - 1 - i)).Format("2006-01-02")
		require.Equal(t, wantDate, p.Date)
		require.GreaterOrEqual(t, p.Clicks, 0)
		require.GreaterOrEqual(t, p.Impressions, 0)
	}
	require.Equal(t, "2024-05-10", m.DailyPerformance[activeDays-1].Date)
}

func TestMetricSynthesizerSingleDay(t *testing.T) {
	s := NewMetricSynthesizer(rand.New(rand.NewSource(9)), fixedClock(time.Now()))

	m, err := s.Synthesize(40, 1)
	require.NoError(t, err)
	require.Len(t, m.DailyPerformance, 1)
}

func TestMetricSynthesizerRejectsZeroDays(t *testing.T) {
	s := NewMetricSynthesizer(rand.New(rand.NewSource(2)), nil)

	_, err := s.Synthesize(100, 0)
	require.ErrorIs(t, err, ErrNoActiveDays)

	_, err = s.Synthesize(100, -3)
	require.ErrorIs(t, err, ErrNoActiveDays)
}

func TestMetricSynthesizerReplayable(t *testing.T) {
	clock := fixedClock(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))

	a, err := NewMetricSynthesizer(rand.New(rand.NewSource(11)), clock).Synthesize(500, 14)
	require.NoError(t, err)
	b, err := NewMetricSynthesizer(rand.New(rand.NewSource(11)), clock).Synthesize(500, 14)
	require.NoError(t, err)

	require.Equal(t, a, b, "same seed and clock must replay the same snapshot")
}
