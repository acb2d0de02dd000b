package gcloud

import (
	"log/slog"

	"github.com/chekout/onboarding-deploy/interfaces"
	"github.com/chekout/onboarding-deploy/models"
)

// servicePort is the fixed HTTP ingress port of the onboarding API.
const servicePort = 8080

// Platform implements interfaces.Platform against the gcloud CLI. Cloud
// Build produces the image and Cloud Run serves it; both are reached by
// shelling out, which is also where authentication lives.
type Platform struct {
	runner   interfaces.CommandRunner
	settings models.Settings
	logger   *slog.Logger
}

func NewPlatform(runner interfaces.CommandRunner, settings models.Settings, logger *slog.Logger) *Platform {
	return &Platform{
		runner:   runner,
		settings: settings,
		logger:   logger,
	}
}
