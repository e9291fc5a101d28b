package models

import "time"

// VitalScore is the composite daily readiness score derived from one
// day of health metrics. It is recomputed whole; a score row is never
// partially updated.
type VitalScore struct {
	ID                uint      `json:"-" gorm:"primaryKey"`
	Date              time.Time `json:"date" gorm:"uniqueIndex;not null"`
	Score             int       `json:"score"`
	SleepComponent    int       `json:"sleep_component"`
	RecoveryComponent int       `json:"recovery_component"`
	StrainComponent   int       `json:"strain_component"`
	Recommendation    string    `json:"recommendation"`
	CreatedAt         time.Time `json:"created_at"`
}

// Trend is the derived comparison of a metric's recent average against
// its baseline for one timeframe. Keyed by (metric, timeframe) and
// fully replaced on every refresh.
//
// PercentChange keeps the raw sign of the underlying change; Direction
// is the classification and is the only field that accounts for
// inverted metrics (stress, resting heart rate).
type Trend struct {
	ID            uint           `json:"-" gorm:"primaryKey"`
	Metric        MetricKind     `json:"metric" gorm:"uniqueIndex:idx_trends_metric_timeframe;not null"`
	Timeframe     Timeframe      `json:"timeframe" gorm:"uniqueIndex:idx_trends_metric_timeframe;not null"`
	Baseline      float64        `json:"baseline"`
	CurrentAvg    float64        `json:"current_avg"`
	PercentChange float64        `json:"percent_change"`
	Direction     TrendDirection `json:"direction"`
	DetectedAt    time.Time      `json:"detected_at"`
}

// TrendInsight is the presentation-ready narrative for a trend. It is
// derived on demand and never persisted.
type TrendInsight struct {
	Metric        MetricKind     `json:"metric"`
	Timeframe     Timeframe      `json:"timeframe"`
	Direction     TrendDirection `json:"direction"`
	PercentChange float64        `json:"percent_change"`
	Summary       string         `json:"summary"`
	Rationale     string         `json:"rationale"`
	Actions       []string       `json:"actions"`
}
