package interfaces

import (
	"context"

	"github.com/chekout/onboarding-deploy/models"
)

// Platform is the build/deploy backend the pipeline drives.
type Platform interface {
	// Preflight verifies the backend tooling is installed and an active
	// credential exists, acquiring one interactively if needed.
	Preflight(ctx context.Context) error

	// Build submits the local build context and returns once the image
	// artifact is addressable under the profile's image reference.
	Build(ctx context.Context, profile models.DeploymentProfile) error

	// Deploy publishes the built image with the profile's parameters and
	// returns the service endpoint, independently confirmed by the
	// control plane's describe operation.
	Deploy(ctx context.Context, profile models.DeploymentProfile) (string, error)
}

// Prompter asks a single interactive question and returns the answer line.
type Prompter interface {
	Ask(question string) (string, error)
}

// Prober checks a deployed endpoint and classifies its health. Probe
// failures are advisory; implementations never abort the pipeline.
type Prober interface {
	Probe(ctx context.Context, endpoint string) models.HealthStatus
}

// CommandRunner abstracts external process execution so platform backends
// can be exercised without the real binaries.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
