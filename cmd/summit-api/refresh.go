package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/summit-health/backend/internal/config"
	"github.com/summit-health/backend/internal/database"
	"github.com/summit-health/backend/internal/logger"
	"github.com/summit-health/backend/internal/repository"
	"github.com/summit-health/backend/internal/service"
	"github.com/summit-health/backend/internal/vitals"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recompute trends and today's score",
	Long:  `Recompute the full trend matrix from stored history and rederive today's vital score, without starting the server.`,
	RunE:  runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	}))

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	metricsRepo := repository.NewMetricsRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	trendRepo := repository.NewTrendRepository(db)

	weights := vitals.ScoreWeights{
		Recovery: cfg.Analysis.RecoveryWeight,
		Sleep:    cfg.Analysis.SleepWeight,
		Stress:   cfg.Analysis.StressWeight,
		HRV:      cfg.Analysis.HRVWeight,
	}
	analysisService := service.NewAnalysisService(metricsRepo, scoreRepo, trendRepo, weights)

	ctx := context.Background()

	trends, err := analysisService.RefreshTrends(ctx)
	if err != nil {
		return fmt.Errorf("trend refresh failed: %w", err)
	}
	logger.Info("trends refreshed", logger.Int("count", len(trends)))

	// Rederive today's score; a day without data is not an error here
	today := time.Now().UTC()
	score, err := analysisService.RecomputeScore(ctx, today)
	if err != nil {
		if errors.Is(err, service.ErrNoMetrics) {
			logger.Warn("no metrics recorded today, score not recomputed")
			return nil
		}
		return fmt.Errorf("score recompute failed: %w", err)
	}
	logger.Info("today's score recomputed",
		logger.Int("score", score.Score),
		logger.String("recommendation", score.Recommendation))

	return nil
}
