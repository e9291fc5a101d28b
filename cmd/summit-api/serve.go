package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/summit-health/backend/internal/config"
	"github.com/summit-health/backend/internal/database"
	"github.com/summit-health/backend/internal/handlers"
	"github.com/summit-health/backend/internal/logger"
	"github.com/summit-health/backend/internal/middleware"
	"github.com/summit-health/backend/internal/repository"
	"github.com/summit-health/backend/internal/service"
	"github.com/summit-health/backend/internal/vitals"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	}))

	logger.Info("starting summit API server",
		logger.String("env", cfg.Server.Env),
		logger.String("database", cfg.Database.Path))

	// Open the database and run migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Initialize repositories
	metricsRepo := repository.NewMetricsRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	trendRepo := repository.NewTrendRepository(db)

	// Initialize services
	weights := vitals.ScoreWeights{
		Recovery: cfg.Analysis.RecoveryWeight,
		Sleep:    cfg.Analysis.SleepWeight,
		Stress:   cfg.Analysis.StressWeight,
		HRV:      cfg.Analysis.HRVWeight,
	}
	metricsService := service.NewMetricsService(metricsRepo)
	analysisService := service.NewAnalysisService(metricsRepo, scoreRepo, trendRepo, weights)

	// Initialize handlers
	metricsHandler := handlers.NewMetricsHandler(metricsService, analysisService)
	scoreHandler := handlers.NewScoreHandler(analysisService)
	trendHandler := handlers.NewTrendHandler(analysisService)

	// Report validation failures under json field names
	registerJSONTagNames()

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Metrics routes
		v1.PUT("/metrics/:date", metricsHandler.UpsertMetrics)
		v1.GET("/metrics", metricsHandler.GetMetrics)

		// Vital score routes
		v1.GET("/scores", scoreHandler.GetScores)
		v1.GET("/scores/:date", scoreHandler.GetScore)
		v1.POST("/scores/:date/recompute", scoreHandler.RecomputeScore)

		// Trend routes
		v1.POST("/trends/refresh", trendHandler.RefreshTrends)
		v1.GET("/trends", trendHandler.GetTrends)

		// Insight routes
		v1.GET("/insights/shifts", trendHandler.GetSignificantShifts)
	}

	logger.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// registerJSONTagNames makes the binding validator report struct fields
// by their json tag, matching the wire format clients see.
func registerJSONTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
