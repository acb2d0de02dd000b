package models

type HealthStatus string

const (
	// HealthStatusHealthy means the dedicated health endpoint answered.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusDegraded means the service root answered but the health
	// endpoint did not. The deploy is still treated as successful.
	HealthStatusDegraded HealthStatus = "degraded"

	// HealthStatusUnknown means neither probe answered before the
	// verification window closed.
	HealthStatusUnknown HealthStatus = "unknown"
)

// DeploymentOutcome is produced exactly once, at the end of a successful
// run, and is the sole input to the final summary.
type DeploymentOutcome struct {
	Profile  DeploymentProfile
	Endpoint string
	Health   HealthStatus
}
