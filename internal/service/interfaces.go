package service

import (
	"context"
	"time"

	"github.com/summit-health/backend/internal/models"
)

// MetricsService defines the interface for health metrics ingestion.
type MetricsService interface {
	UpsertDailyMetrics(ctx context.Context, date time.Time, req *models.UpsertMetricsRequest) (*models.HealthMetrics, error)
	GetMetrics(ctx context.Context, from, to time.Time) ([]models.HealthMetrics, error)
}

// AnalysisService orchestrates the analytical core: it feeds persisted
// history into the score and trend calculators and stores their output.
type AnalysisService interface {
	RecomputeScore(ctx context.Context, date time.Time) (*models.VitalScore, error)
	GetScore(ctx context.Context, date time.Time) (*models.VitalScore, error)
	GetScores(ctx context.Context, from, to time.Time) ([]models.VitalScore, error)
	RefreshTrends(ctx context.Context) ([]models.Trend, error)
	GetTrends(ctx context.Context, tf models.Timeframe) ([]models.Trend, error)
	GetSignificantShifts(ctx context.Context) ([]models.TrendInsight, error)
}
