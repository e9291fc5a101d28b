// Package vitals is the analytical core: pure functions that turn daily
// health metrics into a composite vital score, multi-timeframe trends,
// and narrative insights. The package holds no state, performs no I/O,
// and needs no initialization; callers own persistence and scheduling.
package vitals

import (
	"math"

	"github.com/summit-health/backend/internal/models"
)

// ScoreWeights controls how the four score inputs are blended. The
// weights must sum to 1.0; the calculator does not renormalize.
type ScoreWeights struct {
	Recovery float64
	Sleep    float64
	Stress   float64
	HRV      float64
}

// DefaultScoreWeights is the shipped blend.
var DefaultScoreWeights = ScoreWeights{
	Recovery: 0.35,
	Sleep:    0.35,
	Stress:   0.20,
	HRV:      0.10,
}

const (
	// neutralComponent stands in for any missing measurement.
	neutralComponent = 50

	// strainTargetMinutes maps to maximum strain; it is roughly twice
	// the daily recommended activity target.
	strainTargetMinutes = 42.0

	// HRV below hrvFloor ms scores 0; hrvFloor+hrvRange and above
	// scores 100.
	hrvFloor = 20.0
	hrvRange = 80.0
)

// ComputeScore derives the day's composite vital score and component
// breakdown. Every input is optional and defaults to a neutral value,
// so there are no error conditions. All components and the final score
// are clamped to [0,100] even for out-of-range inputs.
func ComputeScore(day models.HealthMetrics, w ScoreWeights) models.VitalScore {
	recovery := neutralComponent
	if day.BodyBattery != nil {
		recovery = clampInt(*day.BodyBattery, 0, 100)
	}

	sleep := neutralComponent
	if day.SleepScore != nil {
		sleep = clampInt(*day.SleepScore, 0, 100)
	}

	strain := 0
	if day.IntensityMinutes != nil {
		strain = clampInt(int(math.Round(float64(*day.IntensityMinutes)/strainTargetMinutes*100)), 0, 100)
	}

	stressContribution := neutralComponent
	if day.StressAvg != nil {
		stressContribution = clampInt(100-*day.StressAvg, 0, 100)
	}

	hrvContribution := neutralComponent
	if day.HRVAvg != nil {
		hrvContribution = clampInt(int(math.Round((float64(*day.HRVAvg)-hrvFloor)/hrvRange*100)), 0, 100)
	}

	score := clampInt(int(math.Round(
		float64(recovery)*w.Recovery+
			float64(sleep)*w.Sleep+
			float64(stressContribution)*w.Stress+
			float64(hrvContribution)*w.HRV)), 0, 100)

	return models.VitalScore{
		Date:              day.Date,
		Score:             score,
		SleepComponent:    sleep,
		RecoveryComponent: recovery,
		StrainComponent:   strain,
		Recommendation:    recommendFor(score, sleep, recovery),
	}
}

// recommendationRule is one row of the recommendation decision table.
// Rules are evaluated top to bottom; the first match wins, so the
// order of the table is load-bearing.
type recommendationRule struct {
	minScore int
	// condition is an optional extra check on the sleep and recovery
	// components. A nil condition always matches.
	condition func(sleep, recovery int) bool
	message   string
}

var recommendationRules = []recommendationRule{
	{minScore: 80, message: "You're primed today. Take on your hardest session or your biggest task."},
	{minScore: 60, message: "Good capacity today. A moderate workout or a full day's effort is a safe bet."},
	{minScore: 40, condition: func(sleep, _ int) bool { return sleep < 50 },
		message: "Short on sleep. Keep intensity low and protect an early bedtime tonight."},
	{minScore: 40, condition: func(_, recovery int) bool { return recovery < 50 },
		message: "Your body is still recovering. Light movement only, skip the hard efforts."},
	{minScore: 40, message: "Take it easy today and let your body catch up."},
	{minScore: 0, message: "Rest day. Recovery will do more for you than training right now."},
}

func recommendFor(score, sleep, recovery int) string {
	for _, rule := range recommendationRules {
		if score < rule.minScore {
			continue
		}
		if rule.condition != nil && !rule.condition(sleep, recovery) {
			continue
		}
		return rule.message
	}
	return recommendationRules[len(recommendationRules)-1].message
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
