package repository

import (
	"context"
	"fmt"

	"github.com/summit-health/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type trendRepository struct {
	db *gorm.DB
}

// NewTrendRepository creates a new trend repository.
func NewTrendRepository(db *gorm.DB) TrendRepository {
	return &trendRepository{db: db}
}

func (r *trendRepository) Upsert(ctx context.Context, trend *models.Trend) (*models.Trend, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "metric"}, {Name: "timeframe"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"baseline", "current_avg", "percent_change", "direction", "detected_at",
		}),
	}).Create(trend).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert trend: %w", err)
	}
	return trend, nil
}

func (r *trendRepository) GetAll(ctx context.Context) ([]models.Trend, error) {
	var trends []models.Trend
	err := r.db.WithContext(ctx).
		Order("metric ASC, timeframe ASC").
		Find(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get trends: %w", err)
	}
	return trends, nil
}

func (r *trendRepository) GetByTimeframe(ctx context.Context, tf models.Timeframe) ([]models.Trend, error) {
	var trends []models.Trend
	err := r.db.WithContext(ctx).
		Where("timeframe = ?", tf).
		Order("metric ASC").
		Find(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get trends for timeframe: %w", err)
	}
	return trends, nil
}
