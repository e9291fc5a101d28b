package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// DatabaseConfig holds the SQLite database location
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AnalysisConfig holds the vital score component weights. The four
// weights must sum to 1.0.
type AnalysisConfig struct {
	RecoveryWeight float64 `mapstructure:"recovery_weight"`
	SleepWeight    float64 `mapstructure:"sleep_weight"`
	StressWeight   float64 `mapstructure:"stress_weight"`
	HRVWeight      float64 `mapstructure:"hrv_weight"`
}

// LoggingConfig holds log output configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("database.path", "summit.db")
	v.SetDefault("analysis.recovery_weight", 0.35)
	v.SetDefault("analysis.sleep_weight", 0.35)
	v.SetDefault("analysis.stress_weight", 0.20)
	v.SetDefault("analysis.hrv_weight", 0.10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read from environment variables
	v.SetEnvPrefix("SUMMIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables for convenience
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.path", "SUMMIT_DB_PATH")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
// and consistent.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	sum := c.Analysis.RecoveryWeight + c.Analysis.SleepWeight +
		c.Analysis.StressWeight + c.Analysis.HRVWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("analysis weights must sum to 1.0, got %.4f", sum)
	}
	for name, w := range map[string]float64{
		"recovery_weight": c.Analysis.RecoveryWeight,
		"sleep_weight":    c.Analysis.SleepWeight,
		"stress_weight":   c.Analysis.StressWeight,
		"hrv_weight":      c.Analysis.HRVWeight,
	} {
		if w < 0 {
			return fmt.Errorf("analysis weight %s must not be negative", name)
		}
	}
	return nil
}
