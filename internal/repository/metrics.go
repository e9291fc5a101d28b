package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/summit-health/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type metricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository creates a new health metrics repository.
func NewMetricsRepository(db *gorm.DB) MetricsRepository {
	return &metricsRepository{db: db}
}

// metricColumns are the columns replaced on conflict. Re-ingesting a
// date replaces the whole day; there is no partial update.
var metricColumns = []string{
	"body_battery", "sleep_score", "sleep_duration_seconds",
	"deep_sleep_seconds", "rem_sleep_seconds", "stress_avg",
	"resting_hr", "hrv_avg", "intensity_minutes", "steps", "updated_at",
}

func (r *metricsRepository) Upsert(ctx context.Context, record *models.HealthMetrics) (*models.HealthMetrics, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns(metricColumns),
	}).Create(record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert health metrics: %w", err)
	}
	return record, nil
}

func (r *metricsRepository) GetByDate(ctx context.Context, date time.Time) (*models.HealthMetrics, error) {
	var record models.HealthMetrics
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get health metrics: %w", err)
	}
	return &record, nil
}

func (r *metricsRepository) GetRange(ctx context.Context, from, to time.Time) ([]models.HealthMetrics, error) {
	var records []models.HealthMetrics
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get health metrics range: %w", err)
	}
	return records, nil
}

func (r *metricsRepository) GetSince(ctx context.Context, cutoff time.Time) ([]models.HealthMetrics, error) {
	var records []models.HealthMetrics
	err := r.db.WithContext(ctx).
		Where("date >= ?", cutoff).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get health metrics history: %w", err)
	}
	return records, nil
}
