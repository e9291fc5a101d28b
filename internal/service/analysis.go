package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/summit-health/backend/internal/logger"
	"github.com/summit-health/backend/internal/models"
	"github.com/summit-health/backend/internal/repository"
	"github.com/summit-health/backend/internal/vitals"
)

// ErrNoMetrics is returned when a score is requested for a date with no
// recorded measurements.
var ErrNoMetrics = errors.New("no health metrics recorded for date")

// ErrInvalidTimeframe is returned for timeframe values outside the
// supported set.
var ErrInvalidTimeframe = errors.New("invalid timeframe")

type analysisService struct {
	metricsRepo repository.MetricsRepository
	scoreRepo   repository.ScoreRepository
	trendRepo   repository.TrendRepository
	weights     vitals.ScoreWeights
}

// NewAnalysisService creates a new analysis service. The weights come
// from configuration and must sum to 1.0; config validation enforces
// that before this constructor runs.
func NewAnalysisService(
	metricsRepo repository.MetricsRepository,
	scoreRepo repository.ScoreRepository,
	trendRepo repository.TrendRepository,
	weights vitals.ScoreWeights,
) AnalysisService {
	return &analysisService{
		metricsRepo: metricsRepo,
		scoreRepo:   scoreRepo,
		trendRepo:   trendRepo,
		weights:     weights,
	}
}

// RecomputeScore derives the vital score for one date from its stored
// metrics and replaces the persisted score whole.
func (s *analysisService) RecomputeScore(ctx context.Context, date time.Time) (*models.VitalScore, error) {
	day, err := s.metricsRepo.GetByDate(ctx, normalizeDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics for score: %w", err)
	}
	if day == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMetrics, date.Format("2006-01-02"))
	}

	score := vitals.ComputeScore(*day, s.weights)

	stored, err := s.scoreRepo.Upsert(ctx, &score)
	if err != nil {
		return nil, fmt.Errorf("failed to store vital score: %w", err)
	}

	logger.Ctx(ctx).Debug("vital score recomputed",
		logger.Time("date", stored.Date),
		logger.Int("score", stored.Score))

	return stored, nil
}

func (s *analysisService) GetScore(ctx context.Context, date time.Time) (*models.VitalScore, error) {
	return s.scoreRepo.GetByDate(ctx, normalizeDate(date))
}

func (s *analysisService) GetScores(ctx context.Context, from, to time.Time) ([]models.VitalScore, error) {
	return s.scoreRepo.GetRange(ctx, normalizeDate(from), normalizeDate(to))
}

// RefreshTrends recomputes the full metric-kind x timeframe matrix from
// the last year of history. Combinations are independent, so each
// metric kind is analyzed on its own goroutine over the shared
// read-only history. All persistence happens afterwards on the calling
// goroutine, which keeps a single writer per (metric, timeframe) key.
func (s *analysisService) RefreshTrends(ctx context.Context) ([]models.Trend, error) {
	cutoff := time.Now().AddDate(0, 0, -models.TimeframeDays[models.Timeframe365d])
	history, err := s.metricsRepo.GetSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load metric history: %w", err)
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		computed []models.Trend
		firstErr error
	)

	for _, kind := range models.AllMetricKinds {
		wg.Add(1)
		go func(kind models.MetricKind) {
			defer wg.Done()
			for _, tf := range models.AllTimeframes {
				trend, err := vitals.Analyze(history, kind, tf)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				if trend == nil {
					// Insufficient data for this window; skip the
					// combination and keep going.
					continue
				}
				mu.Lock()
				computed = append(computed, *trend)
				mu.Unlock()
			}
		}(kind)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("trend analysis failed: %w", firstErr)
	}

	for i := range computed {
		if _, err := s.trendRepo.Upsert(ctx, &computed[i]); err != nil {
			return nil, fmt.Errorf("failed to store trend: %w", err)
		}
	}

	total := len(models.AllMetricKinds) * len(models.AllTimeframes)
	logger.Ctx(ctx).Info("trend refresh complete",
		logger.Int("computed", len(computed)),
		logger.Int("skipped", total-len(computed)))

	return computed, nil
}

func (s *analysisService) GetTrends(ctx context.Context, tf models.Timeframe) ([]models.Trend, error) {
	if tf == "" {
		return s.trendRepo.GetAll(ctx)
	}
	if !tf.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeframe, tf)
	}
	return s.trendRepo.GetByTimeframe(ctx, tf)
}

func (s *analysisService) GetSignificantShifts(ctx context.Context) ([]models.TrendInsight, error) {
	trends, err := s.trendRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trends: %w", err)
	}
	return vitals.SignificantShifts(trends), nil
}
