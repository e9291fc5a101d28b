package repository

import (
	"context"
	"time"

	"github.com/summit-health/backend/internal/models"
)

// MetricsRepository defines data access for daily health metrics.
// Lookups that find nothing return (nil, nil); a missing day is not an
// error.
type MetricsRepository interface {
	Upsert(ctx context.Context, record *models.HealthMetrics) (*models.HealthMetrics, error)
	GetByDate(ctx context.Context, date time.Time) (*models.HealthMetrics, error)
	GetRange(ctx context.Context, from, to time.Time) ([]models.HealthMetrics, error)
	GetSince(ctx context.Context, cutoff time.Time) ([]models.HealthMetrics, error)
}

// ScoreRepository defines data access for vital scores, keyed by date.
type ScoreRepository interface {
	Upsert(ctx context.Context, score *models.VitalScore) (*models.VitalScore, error)
	GetByDate(ctx context.Context, date time.Time) (*models.VitalScore, error)
	GetRange(ctx context.Context, from, to time.Time) ([]models.VitalScore, error)
}

// TrendRepository defines data access for trends, keyed by
// (metric, timeframe).
type TrendRepository interface {
	Upsert(ctx context.Context, trend *models.Trend) (*models.Trend, error)
	GetAll(ctx context.Context) ([]models.Trend, error)
	GetByTimeframe(ctx context.Context, tf models.Timeframe) ([]models.Trend, error)
}
