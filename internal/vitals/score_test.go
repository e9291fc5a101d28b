package vitals

import (
	"strings"
	"testing"
	"time"

	"github.com/summit-health/backend/internal/models"
)

func intPtr(v int) *int { return &v }

func day(fields models.HealthMetrics) models.HealthMetrics {
	fields.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return fields
}

func TestComputeScore_TypicalDay(t *testing.T) {
	// recovery=80, sleep=80, stress contribution=80, hrv defaults to 50,
	// strain = round(21/42*100) = 50
	// score = round(80*.35 + 80*.35 + 80*.20 + 50*.10) = 77
	score := ComputeScore(day(models.HealthMetrics{
		BodyBattery:      intPtr(80),
		SleepScore:       intPtr(80),
		StressAvg:        intPtr(20),
		IntensityMinutes: intPtr(21),
	}), DefaultScoreWeights)

	if score.Score != 77 {
		t.Errorf("Expected score 77, got %d", score.Score)
	}
	if score.RecoveryComponent != 80 {
		t.Errorf("Expected recovery component 80, got %d", score.RecoveryComponent)
	}
	if score.SleepComponent != 80 {
		t.Errorf("Expected sleep component 80, got %d", score.SleepComponent)
	}
	if score.StrainComponent != 50 {
		t.Errorf("Expected strain component 50, got %d", score.StrainComponent)
	}
	// 77 falls in the >=60 band
	if score.Recommendation != recommendationRules[1].message {
		t.Errorf("Expected the >=60 band recommendation, got %q", score.Recommendation)
	}
}

func TestComputeScore_AllFieldsAbsent(t *testing.T) {
	// Every input defaults to neutral 50 except strain, which is 0.
	// score = round(50*.35 + 50*.35 + 50*.20 + 50*.10) = 50
	score := ComputeScore(day(models.HealthMetrics{}), DefaultScoreWeights)

	if score.Score != 50 {
		t.Errorf("Expected score 50, got %d", score.Score)
	}
	if score.RecoveryComponent != 50 || score.SleepComponent != 50 {
		t.Errorf("Expected neutral components, got recovery=%d sleep=%d",
			score.RecoveryComponent, score.SleepComponent)
	}
	if score.StrainComponent != 0 {
		t.Errorf("Expected strain 0 with no intensity minutes, got %d", score.StrainComponent)
	}
	// Sleep and recovery are exactly 50, so neither mid-band
	// sub-condition triggers and the generic message applies.
	if !strings.Contains(score.Recommendation, "Take it easy") {
		t.Errorf("Expected the generic take-it-easy message, got %q", score.Recommendation)
	}
}

func TestComputeScore_StrainClampsAt100(t *testing.T) {
	score := ComputeScore(day(models.HealthMetrics{
		IntensityMinutes: intPtr(300),
	}), DefaultScoreWeights)

	if score.StrainComponent != 100 {
		t.Errorf("Expected strain clamped to 100, got %d", score.StrainComponent)
	}
}

func TestComputeScore_HRVContribution(t *testing.T) {
	// hrv=100 -> (100-20)/80*100 = 100; everything else neutral.
	// score = round(50*.35 + 50*.35 + 50*.20 + 100*.10) = 55
	score := ComputeScore(day(models.HealthMetrics{
		HRVAvg: intPtr(100),
	}), DefaultScoreWeights)

	if score.Score != 55 {
		t.Errorf("Expected score 55, got %d", score.Score)
	}

	// hrv below the floor contributes 0.
	// score = round(50*.35 + 50*.35 + 50*.20 + 0*.10) = 45
	score = ComputeScore(day(models.HealthMetrics{
		HRVAvg: intPtr(10),
	}), DefaultScoreWeights)

	if score.Score != 45 {
		t.Errorf("Expected score 45 with HRV below floor, got %d", score.Score)
	}
}

func TestComputeScore_BoundsHoldForPathologicalInputs(t *testing.T) {
	cases := []models.HealthMetrics{
		{BodyBattery: intPtr(500), SleepScore: intPtr(500), StressAvg: intPtr(-100), HRVAvg: intPtr(10000), IntensityMinutes: intPtr(100000)},
		{BodyBattery: intPtr(-500), SleepScore: intPtr(-500), StressAvg: intPtr(500), HRVAvg: intPtr(-10000), IntensityMinutes: intPtr(-1)},
	}

	for i, c := range cases {
		score := ComputeScore(day(c), DefaultScoreWeights)
		for name, v := range map[string]int{
			"score":    score.Score,
			"sleep":    score.SleepComponent,
			"recovery": score.RecoveryComponent,
			"strain":   score.StrainComponent,
		} {
			if v < 0 || v > 100 {
				t.Errorf("Case %d: %s out of [0,100]: %d", i, name, v)
			}
		}
	}
}

func TestRecommendFor_BandsAndSubConditions(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		sleep    int
		recovery int
		want     string
	}{
		{"top band", 85, 90, 90, recommendationRules[0].message},
		{"top band boundary", 80, 90, 90, recommendationRules[0].message},
		{"good band", 65, 70, 70, recommendationRules[1].message},
		{"mid band low sleep", 45, 40, 70, recommendationRules[2].message},
		{"mid band low recovery", 45, 70, 40, recommendationRules[3].message},
		{"mid band low sleep wins over low recovery", 45, 40, 40, recommendationRules[2].message},
		{"mid band generic", 45, 60, 60, recommendationRules[4].message},
		{"bottom band", 30, 20, 20, recommendationRules[5].message},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommendFor(tt.score, tt.sleep, tt.recovery)
			if got != tt.want {
				t.Errorf("recommendFor(%d,%d,%d) = %q, want %q",
					tt.score, tt.sleep, tt.recovery, got, tt.want)
			}
		})
	}
}
