package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/summit-health/backend/internal/models"
	"github.com/summit-health/backend/internal/vitals"
)

// mockMetricsRepository is an in-memory MetricsRepository for testing.
type mockMetricsRepository struct {
	records     map[string]*models.HealthMetrics // date string -> record
	upsertCalls int
}

func newMockMetricsRepository() *mockMetricsRepository {
	return &mockMetricsRepository{records: make(map[string]*models.HealthMetrics)}
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

func (m *mockMetricsRepository) Upsert(ctx context.Context, record *models.HealthMetrics) (*models.HealthMetrics, error) {
	m.upsertCalls++
	m.records[dateKey(record.Date)] = record
	return record, nil
}

func (m *mockMetricsRepository) GetByDate(ctx context.Context, date time.Time) (*models.HealthMetrics, error) {
	if record, ok := m.records[dateKey(date)]; ok {
		return record, nil
	}
	return nil, nil
}

func (m *mockMetricsRepository) GetRange(ctx context.Context, from, to time.Time) ([]models.HealthMetrics, error) {
	var result []models.HealthMetrics
	for _, record := range m.records {
		if !record.Date.Before(from) && !record.Date.After(to) {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (m *mockMetricsRepository) GetSince(ctx context.Context, cutoff time.Time) ([]models.HealthMetrics, error) {
	var result []models.HealthMetrics
	for _, record := range m.records {
		if !record.Date.Before(cutoff) {
			result = append(result, *record)
		}
	}
	// Ordered by date, as the real repository guarantees.
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].Date.Before(result[i].Date) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

// mockScoreRepository is an in-memory ScoreRepository for testing.
type mockScoreRepository struct {
	scores      map[string]*models.VitalScore
	upsertCalls int
}

func newMockScoreRepository() *mockScoreRepository {
	return &mockScoreRepository{scores: make(map[string]*models.VitalScore)}
}

func (m *mockScoreRepository) Upsert(ctx context.Context, score *models.VitalScore) (*models.VitalScore, error) {
	m.upsertCalls++
	m.scores[dateKey(score.Date)] = score
	return score, nil
}

func (m *mockScoreRepository) GetByDate(ctx context.Context, date time.Time) (*models.VitalScore, error) {
	if score, ok := m.scores[dateKey(date)]; ok {
		return score, nil
	}
	return nil, nil
}

func (m *mockScoreRepository) GetRange(ctx context.Context, from, to time.Time) ([]models.VitalScore, error) {
	var result []models.VitalScore
	for _, score := range m.scores {
		if !score.Date.Before(from) && !score.Date.After(to) {
			result = append(result, *score)
		}
	}
	return result, nil
}

// mockTrendRepository is an in-memory TrendRepository for testing.
type mockTrendRepository struct {
	trends      map[string]*models.Trend // "metric|timeframe" -> trend
	upsertCalls int
}

func newMockTrendRepository() *mockTrendRepository {
	return &mockTrendRepository{trends: make(map[string]*models.Trend)}
}

func trendKey(metric models.MetricKind, tf models.Timeframe) string {
	return string(metric) + "|" + string(tf)
}

func (m *mockTrendRepository) Upsert(ctx context.Context, trend *models.Trend) (*models.Trend, error) {
	m.upsertCalls++
	m.trends[trendKey(trend.Metric, trend.Timeframe)] = trend
	return trend, nil
}

func (m *mockTrendRepository) GetAll(ctx context.Context) ([]models.Trend, error) {
	var result []models.Trend
	for _, trend := range m.trends {
		result = append(result, *trend)
	}
	return result, nil
}

func (m *mockTrendRepository) GetByTimeframe(ctx context.Context, tf models.Timeframe) ([]models.Trend, error) {
	var result []models.Trend
	for _, trend := range m.trends {
		if trend.Timeframe == tf {
			result = append(result, *trend)
		}
	}
	return result, nil
}

func intPtr(v int) *int { return &v }

func newTestAnalysisService() (*mockMetricsRepository, *mockScoreRepository, *mockTrendRepository, AnalysisService) {
	metricsRepo := newMockMetricsRepository()
	scoreRepo := newMockScoreRepository()
	trendRepo := newMockTrendRepository()
	svc := NewAnalysisService(metricsRepo, scoreRepo, trendRepo, vitals.DefaultScoreWeights)
	return metricsRepo, scoreRepo, trendRepo, svc
}

// seedSleepScores stores one record per value, one day apart, ending
// today, carrying only a sleep score.
func seedSleepScores(repo *mockMetricsRepository, values []int) {
	start := time.Now().AddDate(0, 0, -(len(values) - 1))
	for i, v := range values {
		value := v
		date := start.AddDate(0, 0, i)
		repo.records[dateKey(date)] = &models.HealthMetrics{
			Date:       date,
			SleepScore: &value,
		}
	}
}

func TestRecomputeScore(t *testing.T) {
	ctx := context.Background()
	metricsRepo, scoreRepo, _, svc := newTestAnalysisService()

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	metricsRepo.records[dateKey(date)] = &models.HealthMetrics{
		Date:             date,
		BodyBattery:      intPtr(80),
		SleepScore:       intPtr(80),
		StressAvg:        intPtr(20),
		IntensityMinutes: intPtr(21),
	}

	score, err := svc.RecomputeScore(ctx, date)
	if err != nil {
		t.Fatalf("RecomputeScore failed: %v", err)
	}
	if score.Score != 77 {
		t.Errorf("Expected score 77, got %d", score.Score)
	}
	if scoreRepo.upsertCalls != 1 {
		t.Errorf("Expected 1 score upsert, got %d", scoreRepo.upsertCalls)
	}

	// Recomputation replaces the stored score, never duplicates it.
	if _, err := svc.RecomputeScore(ctx, date); err != nil {
		t.Fatalf("Second RecomputeScore failed: %v", err)
	}
	if len(scoreRepo.scores) != 1 {
		t.Errorf("Expected 1 stored score after recompute, got %d", len(scoreRepo.scores))
	}
}

func TestRecomputeScore_NoMetricsForDate(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newTestAnalysisService()

	_, err := svc.RecomputeScore(ctx, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrNoMetrics) {
		t.Errorf("Expected ErrNoMetrics, got %v", err)
	}
}

func TestRefreshTrends_ComputesOnlyObservedMetrics(t *testing.T) {
	ctx := context.Background()
	metricsRepo, _, trendRepo, svc := newTestAnalysisService()

	// Nine days of declining sleep scores; every other metric is
	// absent, so the rest of the matrix is skipped without error.
	seedSleepScores(metricsRepo, []int{70, 70, 70, 70, 70, 70, 50, 50, 50})

	computed, err := svc.RefreshTrends(ctx)
	if err != nil {
		t.Fatalf("RefreshTrends failed: %v", err)
	}

	// Sleep score has enough data in every timeframe window; the
	// other 9 metric kinds contribute nothing.
	if len(computed) != len(models.AllTimeframes) {
		t.Errorf("Expected %d trends, got %d", len(models.AllTimeframes), len(computed))
	}
	for _, trend := range computed {
		if trend.Metric != models.MetricSleepScore {
			t.Errorf("Unexpected trend for metric %s", trend.Metric)
		}
		if trend.Direction != models.DirectionDeclining {
			t.Errorf("Expected declining sleep score, got %s", trend.Direction)
		}
	}
	if trendRepo.upsertCalls != len(computed) {
		t.Errorf("Expected %d upserts, got %d", len(computed), trendRepo.upsertCalls)
	}
}

func TestRefreshTrends_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	_, _, trendRepo, svc := newTestAnalysisService()

	computed, err := svc.RefreshTrends(ctx)
	if err != nil {
		t.Fatalf("RefreshTrends failed on empty history: %v", err)
	}
	if len(computed) != 0 {
		t.Errorf("Expected no trends, got %d", len(computed))
	}
	if trendRepo.upsertCalls != 0 {
		t.Errorf("Expected no upserts, got %d", trendRepo.upsertCalls)
	}
}

func TestRefreshTrends_UpsertsByKey(t *testing.T) {
	ctx := context.Background()
	metricsRepo, _, trendRepo, svc := newTestAnalysisService()

	seedSleepScores(metricsRepo, []int{70, 70, 70, 70, 70, 70, 50, 50, 50})

	if _, err := svc.RefreshTrends(ctx); err != nil {
		t.Fatalf("First refresh failed: %v", err)
	}
	stored := len(trendRepo.trends)

	if _, err := svc.RefreshTrends(ctx); err != nil {
		t.Fatalf("Second refresh failed: %v", err)
	}
	if len(trendRepo.trends) != stored {
		t.Errorf("Refresh duplicated trends: %d then %d", stored, len(trendRepo.trends))
	}
}

func TestGetTrends_InvalidTimeframe(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newTestAnalysisService()

	_, err := svc.GetTrends(ctx, models.Timeframe("42d"))
	if !errors.Is(err, ErrInvalidTimeframe) {
		t.Errorf("Expected ErrInvalidTimeframe, got %v", err)
	}
}

func TestGetSignificantShifts(t *testing.T) {
	ctx := context.Background()
	_, _, trendRepo, svc := newTestAnalysisService()

	now := time.Now().UTC()
	trendRepo.trends[trendKey(models.MetricSleepScore, models.Timeframe14d)] = &models.Trend{
		Metric: models.MetricSleepScore, Timeframe: models.Timeframe14d,
		Baseline: 70, CurrentAvg: 50, PercentChange: -28.57,
		Direction: models.DirectionDeclining, DetectedAt: now,
	}
	trendRepo.trends[trendKey(models.MetricSteps, models.Timeframe30d)] = &models.Trend{
		Metric: models.MetricSteps, Timeframe: models.Timeframe30d,
		Baseline: 5000, CurrentAvg: 6000, PercentChange: 20,
		Direction: models.DirectionImproving, DetectedAt: now,
	}

	shifts, err := svc.GetSignificantShifts(ctx)
	if err != nil {
		t.Fatalf("GetSignificantShifts failed: %v", err)
	}
	if len(shifts) != 1 {
		t.Fatalf("Expected 1 shift, got %d", len(shifts))
	}
	if shifts[0].Metric != models.MetricSleepScore {
		t.Errorf("Expected sleep score shift, got %s", shifts[0].Metric)
	}
}
