package config

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/chekout/onboarding-deploy/models"
)

const (
	DefaultProjectID = "shopify-473015"
	DefaultRegion    = "us-central1"
)

// LoadSettings reads the process-wide configuration from the environment.
// Both values have defaults; neither is mutated after startup.
func LoadSettings() models.Settings {
	v := viper.New()

	v.SetDefault("project_id", DefaultProjectID)
	v.SetDefault("region", DefaultRegion)

	_ = v.BindEnv("project_id", "GCP_PROJECT_ID")
	_ = v.BindEnv("region", "GCP_REGION")

	return models.Settings{
		ProjectID: v.GetString("project_id"),
		Region:    v.GetString("region"),
	}
}

// NewLogger creates a logger whose level follows the profile's verbosity.
func NewLogger(level models.LogLevel) *slog.Logger {
	var l slog.Level
	switch level {
	case models.LogLevelDebug:
		l = slog.LevelDebug
	case models.LogLevelWarning:
		l = slog.LevelWarn
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}
