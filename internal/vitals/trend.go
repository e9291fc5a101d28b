package vitals

import (
	"fmt"
	"time"

	"github.com/summit-health/backend/internal/models"
)

const (
	// MinTrendSamples is the minimum number of observed values a
	// window must contain before a trend is computed.
	MinTrendSamples = 3

	// SignificanceThreshold is the percent-change cutoff separating a
	// stable reading from an improving or declining one. It was tuned
	// against the first/last-third windowing below; do not retune it
	// independently of that split.
	SignificanceThreshold = 10.0
)

// invertedMetrics are the kinds where a numeric decrease is the
// favorable direction. Inversion affects classification only, never
// the reported percent change.
var invertedMetrics = map[models.MetricKind]bool{
	models.MetricStress:    true,
	models.MetricRestingHR: true,
}

// Analyze computes the trend for one metric over one timeframe from an
// ordered-by-date history. It returns (nil, nil) when the window holds
// fewer than MinTrendSamples observed values or the baseline averages
// to zero; both are normal outcomes, not errors. Unknown kinds and
// timeframes are caller bugs and fail immediately.
func Analyze(history []models.HealthMetrics, kind models.MetricKind, tf models.Timeframe) (*models.Trend, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown metric kind %q", kind)
	}
	days, ok := models.TimeframeDays[tf]
	if !ok {
		return nil, fmt.Errorf("unknown timeframe %q", tf)
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	values := make([]float64, 0, len(history))
	for _, rec := range history {
		if rec.Date.Before(cutoff) {
			continue
		}
		if v, present := rec.Value(kind); present {
			values = append(values, v)
		}
	}
	if len(values) < MinTrendSamples {
		return nil, nil
	}

	// Split the window into three positional chunks and compare the
	// first against the last. The middle chunk is discarded: it
	// buffers the baseline from the current group so boundary days
	// never land in both.
	chunk := len(values) / 3
	baseline := mean(values[:chunk])
	current := mean(values[len(values)-chunk:])
	if baseline == 0 {
		return nil, nil
	}

	pct := (current - baseline) / baseline * 100

	classified := pct
	if invertedMetrics[kind] {
		classified = -classified
	}

	direction := models.DirectionStable
	switch {
	case classified > SignificanceThreshold:
		direction = models.DirectionImproving
	case classified < -SignificanceThreshold:
		direction = models.DirectionDeclining
	}

	return &models.Trend{
		Metric:        kind,
		Timeframe:     tf,
		Baseline:      baseline,
		CurrentAvg:    current,
		PercentChange: pct,
		Direction:     direction,
		DetectedAt:    time.Now().UTC(),
	}, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
