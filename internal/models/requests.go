package models

// UpsertMetricsRequest is the payload for ingesting one day of
// measurements. Range validation happens here, at the edge; the
// analysis core assumes sane inputs.
type UpsertMetricsRequest struct {
	BodyBattery          *int `json:"body_battery" binding:"omitempty,min=0,max=100"`
	SleepScore           *int `json:"sleep_score" binding:"omitempty,min=0,max=100"`
	SleepDurationSeconds *int `json:"sleep_duration_seconds" binding:"omitempty,min=0"`
	DeepSleepSeconds     *int `json:"deep_sleep_seconds" binding:"omitempty,min=0"`
	RemSleepSeconds      *int `json:"rem_sleep_seconds" binding:"omitempty,min=0"`
	StressAvg            *int `json:"stress_avg" binding:"omitempty,min=0,max=100"`
	RestingHR            *int `json:"resting_hr" binding:"omitempty,min=0"`
	HRVAvg               *int `json:"hrv_avg" binding:"omitempty,min=0"`
	IntensityMinutes     *int `json:"intensity_minutes" binding:"omitempty,min=0"`
	Steps                *int `json:"steps" binding:"omitempty,min=0"`
}

// UpsertMetricsResponse returns the stored day together with the score
// recomputed from it.
type UpsertMetricsResponse struct {
	Metrics *HealthMetrics `json:"metrics"`
	Score   *VitalScore    `json:"score"`
}
