package services

import (
	"math"

	"github.com/maheshathikala/stress-detect/models"
)

const (
	// trendWindow caps the charted series at the most recent entries.
	trendWindow = 10
	// recentSpan is how many trailing entries form the "recent" average.
	recentSpan = 3
	// stableBand is the recent-vs-older delta below which the trend is flat.
	stableBand = 5.0
)

// BuildTrendSummary derives dashboard statistics from a user's logs, newest
// first. The average covers the whole input sequence while the charted
// series is windowed, matching what the dashboard has always displayed.
func BuildTrendSummary(logs []models.StressLog) models.TrendSummary {
	window := len(logs)
	if window > trendWindow {
		window = trendWindow
	}

	// Most recent entries, reversed to ascending order for charting.
	series := make([]int, window)
	for i := 0; i < window; i++ {
		series[window-1-i] = logs[i].StressLevel
	}

	return models.TrendSummary{
		AverageLevel:   averageLevel(logs),
		TrendDirection: trendDirection(series),
		WindowedSeries: series,
	}
}

// averageLevel is the mean stress level over all logs, rounded half up.
// An empty sequence averages to 0 rather than erroring.
func averageLevel(logs []models.StressLog) int {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, log := range logs {
		sum += log.StressLevel
	}
	return int(math.Floor(float64(sum)/float64(len(logs)) + 0.5))
}

func trendDirection(series []int) models.TrendDirection {
	if len(series) < 2 {
		return models.TrendInsufficientData
	}
	if len(series) <= recentSpan {
		return models.TrendNewUser
	}

	recent := series[len(series)-recentSpan:]
	older := series[:len(series)-recentSpan]

	diff := mean(recent) - mean(older)
	switch {
	case math.Abs(diff) < stableBand:
		return models.TrendStable
	case diff > 0:
		return models.TrendIncreasing
	default:
		return models.TrendDecreasing
	}
}

func mean(levels []int) float64 {
	sum := 0
	for _, level := range levels {
		sum += level
	}
	return float64(sum) / float64(len(levels))
}
