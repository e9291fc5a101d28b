package vitals

import (
	"fmt"
	"math"
	"sort"

	"github.com/summit-health/backend/internal/models"
)

// Explain builds the user-facing narrative for a trend: a one-sentence
// summary, a "why it matters" rationale, and concrete follow-up
// actions. The summary's direction word follows the raw sign of the
// percent change, so a falling resting heart rate reads "decreased"
// even though its Direction is improving.
func Explain(t models.Trend) models.TrendInsight {
	word := "increased"
	if t.PercentChange < 0 {
		word = "decreased"
	}
	magnitude := int(math.Round(math.Abs(t.PercentChange)))

	summary := fmt.Sprintf("Your %s has %s %d%% over %s.",
		metricLabels[t.Metric], word, magnitude, timeframePhrases[t.Timeframe])

	rationale := stableRationale
	actions := []string{stableAction}
	if t.Direction != models.DirectionStable {
		g := trendGuidance[t.Metric][t.Direction]
		rationale = g.Rationale
		actions = g.Actions
	}

	return models.TrendInsight{
		Metric:        t.Metric,
		Timeframe:     t.Timeframe,
		Direction:     t.Direction,
		PercentChange: t.PercentChange,
		Summary:       summary,
		Rationale:     rationale,
		Actions:       actions,
	}
}

// SignificantShifts surfaces the trends worth interrupting the user
// for: declining metrics whose change magnitude clears the
// significance threshold, most urgent first. The sort is stable, so
// equal magnitudes keep the order of the input slice.
func SignificantShifts(trends []models.Trend) []models.TrendInsight {
	shifts := make([]models.TrendInsight, 0)
	for _, t := range trends {
		if t.Direction != models.DirectionDeclining {
			continue
		}
		if math.Abs(t.PercentChange) <= SignificanceThreshold {
			continue
		}
		shifts = append(shifts, Explain(t))
	}

	sort.SliceStable(shifts, func(i, j int) bool {
		return math.Abs(shifts[i].PercentChange) > math.Abs(shifts[j].PercentChange)
	})

	return shifts
}
