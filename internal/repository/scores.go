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

type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new vital score repository.
func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Upsert(ctx context.Context, score *models.VitalScore) (*models.VitalScore, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"score", "sleep_component", "recovery_component",
			"strain_component", "recommendation",
		}),
	}).Create(score).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert vital score: %w", err)
	}
	return score, nil
}

func (r *scoreRepository) GetByDate(ctx context.Context, date time.Time) (*models.VitalScore, error) {
	var score models.VitalScore
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&score).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vital score: %w", err)
	}
	return &score, nil
}

func (r *scoreRepository) GetRange(ctx context.Context, from, to time.Time) ([]models.VitalScore, error) {
	var scores []models.VitalScore
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get vital score range: %w", err)
	}
	return scores, nil
}
