package models

import "fmt"

type Environment string

const (
	EnvironmentStaging    Environment = "staging"
	EnvironmentProduction Environment = "production"
)

// ParseEnvironment validates a raw environment argument against the closed
// set of deploy targets.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case EnvironmentStaging, EnvironmentProduction:
		return Environment(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)",
			ErrInvalidEnvironment, s, EnvironmentStaging, EnvironmentProduction)
	}
}

type LogLevel string

const (
	LogLevelDebug   LogLevel = "DEBUG"
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARNING"
)

type Resources struct {
	Memory string // Cloud Run memory limit, e.g. "512Mi"
	CPU    int
}

type ScalingBounds struct {
	Min int
	Max int
}

// DeploymentProfile is the fully resolved configuration for one deploy.
// It is constructed once by the resolver and never mutated afterwards.
type DeploymentProfile struct {
	Environment           Environment
	ServiceName           string
	Resources             Resources
	Scaling               ScalingBounds
	RequestTimeoutSeconds int
	LogLevel              LogLevel
	DebugEnabled          bool
	RequiresConfirmation  bool

	// ImageReference is derived from the registry namespace and service
	// name, without a tag.
	ImageReference string
}

// RuntimeEnv returns the environment variables configured on the deployed
// service. Secret-bearing variables are provisioned out of band and are
// deliberately not part of this set.
func (p DeploymentProfile) RuntimeEnv() map[string]string {
	return map[string]string{
		"ENVIRONMENT": string(p.Environment),
		"DEBUG":       fmt.Sprintf("%t", p.DebugEnabled),
		"LOG_LEVEL":   string(p.LogLevel),
	}
}
