package service

import (
	"context"
	"fmt"
	"time"

	"github.com/summit-health/backend/internal/logger"
	"github.com/summit-health/backend/internal/models"
	"github.com/summit-health/backend/internal/repository"
)

type metricsService struct {
	metricsRepo repository.MetricsRepository
}

// NewMetricsService creates a new metrics service.
func NewMetricsService(metricsRepo repository.MetricsRepository) MetricsService {
	return &metricsService{metricsRepo: metricsRepo}
}

// UpsertDailyMetrics stores one day of measurements, replacing any
// existing record for that date in full.
func (s *metricsService) UpsertDailyMetrics(ctx context.Context, date time.Time, req *models.UpsertMetricsRequest) (*models.HealthMetrics, error) {
	record := &models.HealthMetrics{
		Date:                 normalizeDate(date),
		BodyBattery:          req.BodyBattery,
		SleepScore:           req.SleepScore,
		SleepDurationSeconds: req.SleepDurationSeconds,
		DeepSleepSeconds:     req.DeepSleepSeconds,
		RemSleepSeconds:      req.RemSleepSeconds,
		StressAvg:            req.StressAvg,
		RestingHR:            req.RestingHR,
		HRVAvg:               req.HRVAvg,
		IntensityMinutes:     req.IntensityMinutes,
		Steps:                req.Steps,
	}

	stored, err := s.metricsRepo.Upsert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to store daily metrics: %w", err)
	}

	logger.Ctx(ctx).Debug("daily metrics stored",
		logger.Time("date", stored.Date))

	return stored, nil
}

func (s *metricsService) GetMetrics(ctx context.Context, from, to time.Time) ([]models.HealthMetrics, error) {
	return s.metricsRepo.GetRange(ctx, normalizeDate(from), normalizeDate(to))
}

// normalizeDate truncates to UTC midnight so a calendar day has exactly
// one representation regardless of how the caller parsed it.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
