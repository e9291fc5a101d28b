package models

import "time"

// MetricKind identifies one of the tracked health measurements.
type MetricKind string

const (
	MetricBodyBattery      MetricKind = "body_battery"
	MetricSleepScore       MetricKind = "sleep_score"
	MetricSleepDuration    MetricKind = "sleep_duration"
	MetricDeepSleep        MetricKind = "deep_sleep"
	MetricRemSleep         MetricKind = "rem_sleep"
	MetricStress           MetricKind = "stress"
	MetricRestingHR        MetricKind = "resting_hr"
	MetricHRV              MetricKind = "hrv"
	MetricIntensityMinutes MetricKind = "intensity_minutes"
	MetricSteps            MetricKind = "steps"
)

// AllMetricKinds lists every valid metric kind. Analysis iterates this
// slice; the insight tables are tested for coverage against it.
var AllMetricKinds = []MetricKind{
	MetricBodyBattery,
	MetricSleepScore,
	MetricSleepDuration,
	MetricDeepSleep,
	MetricRemSleep,
	MetricStress,
	MetricRestingHR,
	MetricHRV,
	MetricIntensityMinutes,
	MetricSteps,
}

// Valid reports whether k is a known metric kind.
func (k MetricKind) Valid() bool {
	for _, known := range AllMetricKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Timeframe identifies an analysis window.
type Timeframe string

const (
	Timeframe7d   Timeframe = "7d"
	Timeframe14d  Timeframe = "14d"
	Timeframe30d  Timeframe = "30d"
	Timeframe90d  Timeframe = "90d"
	Timeframe180d Timeframe = "180d"
	Timeframe365d Timeframe = "365d"
)

// AllTimeframes lists every supported analysis window.
var AllTimeframes = []Timeframe{
	Timeframe7d,
	Timeframe14d,
	Timeframe30d,
	Timeframe90d,
	Timeframe180d,
	Timeframe365d,
}

// TimeframeDays maps each timeframe to its window length in days.
var TimeframeDays = map[Timeframe]int{
	Timeframe7d:   7,
	Timeframe14d:  14,
	Timeframe30d:  30,
	Timeframe90d:  90,
	Timeframe180d: 180,
	Timeframe365d: 365,
}

// Valid reports whether tf is a known timeframe.
func (tf Timeframe) Valid() bool {
	_, ok := TimeframeDays[tf]
	return ok
}

// TrendDirection classifies where a metric is heading. Direction already
// accounts for inverted metrics: declining stress is "improving".
type TrendDirection string

const (
	DirectionImproving TrendDirection = "improving"
	DirectionStable    TrendDirection = "stable"
	DirectionDeclining TrendDirection = "declining"
)

// HealthMetrics is one calendar day of observations from the wearable
// provider. Every measurement is optional; a nil field means the device
// did not record it that day, which is distinct from a zero value.
// Records are immutable once ingested; re-ingesting a date replaces the
// whole row.
type HealthMetrics struct {
	ID                   uint      `json:"-" gorm:"primaryKey"`
	Date                 time.Time `json:"date" gorm:"uniqueIndex;not null"`
	BodyBattery          *int      `json:"body_battery,omitempty"`
	SleepScore           *int      `json:"sleep_score,omitempty"`
	SleepDurationSeconds *int      `json:"sleep_duration_seconds,omitempty"`
	DeepSleepSeconds     *int      `json:"deep_sleep_seconds,omitempty"`
	RemSleepSeconds      *int      `json:"rem_sleep_seconds,omitempty"`
	StressAvg            *int      `json:"stress_avg,omitempty"`
	RestingHR            *int      `json:"resting_hr,omitempty" gorm:"column:resting_hr"`
	HRVAvg               *int      `json:"hrv_avg,omitempty" gorm:"column:hrv_avg"`
	IntensityMinutes     *int      `json:"intensity_minutes,omitempty"`
	Steps                *int      `json:"steps,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Value extracts the measurement for the given kind. The second return
// is false when the field was not recorded that day or the kind is
// unknown; absent values must be skipped, never treated as zero.
func (m HealthMetrics) Value(kind MetricKind) (float64, bool) {
	var field *int
	switch kind {
	case MetricBodyBattery:
		field = m.BodyBattery
	case MetricSleepScore:
		field = m.SleepScore
	case MetricSleepDuration:
		field = m.SleepDurationSeconds
	case MetricDeepSleep:
		field = m.DeepSleepSeconds
	case MetricRemSleep:
		field = m.RemSleepSeconds
	case MetricStress:
		field = m.StressAvg
	case MetricRestingHR:
		field = m.RestingHR
	case MetricHRV:
		field = m.HRVAvg
	case MetricIntensityMinutes:
		field = m.IntensityMinutes
	case MetricSteps:
		field = m.Steps
	default:
		return 0, false
	}
	if field == nil {
		return 0, false
	}
	return float64(*field), true
}
