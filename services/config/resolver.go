package config

import (
	"fmt"

	"github.com/chekout/onboarding-deploy/models"
)

const serviceBaseName = "onboarding-api"

// Resolve maps an environment name to its deployment profile. Resolution is
// pure: no I/O happens here beyond what LoadSettings already read.
//
// Staging favors cheap, fast iteration; production favors availability
// (at least one warm instance, longer request timeout, terse logging).
func Resolve(name string, settings models.Settings) (models.DeploymentProfile, error) {
	env, err := models.ParseEnvironment(name)
	if err != nil {
		return models.DeploymentProfile{}, err
	}

	var p models.DeploymentProfile
	switch env {
	case models.EnvironmentStaging:
		p = models.DeploymentProfile{
			Environment:           env,
			ServiceName:           serviceBaseName + "-staging",
			Resources:             models.Resources{Memory: "512Mi", CPU: 1},
			Scaling:               models.ScalingBounds{Min: 0, Max: 2},
			RequestTimeoutSeconds: 300,
			LogLevel:              models.LogLevelDebug,
			RequiresConfirmation:  false,
		}
	case models.EnvironmentProduction:
		p = models.DeploymentProfile{
			Environment:           env,
			ServiceName:           serviceBaseName,
			Resources:             models.Resources{Memory: "1Gi", CPU: 2},
			Scaling:               models.ScalingBounds{Min: 1, Max: 10},
			RequestTimeoutSeconds: 600,
			LogLevel:              models.LogLevelInfo,
			RequiresConfirmation:  true,
		}
	}

	// Debug mode is tied to verbosity, never set independently.
	p.DebugEnabled = p.LogLevel == models.LogLevelDebug

	p.ImageReference = fmt.Sprintf("gcr.io/%s/%s", settings.ProjectID, p.ServiceName)

	return p, nil
}
