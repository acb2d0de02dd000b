package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chekout/onboarding-deploy/interfaces"
	"github.com/chekout/onboarding-deploy/models"
	"github.com/chekout/onboarding-deploy/services/report"
)

// Pipeline drives one deploy end to end: preview, confirmation, preflight,
// build, deploy, verify, summary. Stages run strictly in order and the
// first failing stage halts everything after it.
type Pipeline struct {
	platform interfaces.Platform
	prober   interfaces.Prober
	prompter interfaces.Prompter
	reporter *report.Reporter
	logger   *slog.Logger
}

func New(
	platform interfaces.Platform,
	prober interfaces.Prober,
	prompter interfaces.Prompter,
	reporter *report.Reporter,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		platform: platform,
		prober:   prober,
		prompter: prompter,
		reporter: reporter,
		logger:   logger,
	}
}

// Run executes the pipeline for an already resolved profile. A declined
// confirmation returns models.ErrDeclined before any side effect; any
// other error is fatal to the run. The outcome is non-nil only when every
// stage up to verification completed.
func (pl *Pipeline) Run(ctx context.Context, profile models.DeploymentProfile) (*models.DeploymentOutcome, error) {
	run := uuid.New()
	logger := pl.logger.With("run", run.String(), "environment", profile.Environment)

	pl.reporter.Preview(profile)

	if err := pl.confirm(profile); err != nil {
		return nil, err
	}

	logger.Info("running preflight checks")
	if err := pl.platform.Preflight(ctx); err != nil {
		return nil, err
	}

	logger.Info("building image", "image", profile.ImageReference)
	if err := pl.platform.Build(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("deploying", "service", profile.ServiceName)
	endpoint, err := pl.platform.Deploy(ctx, profile)
	if err != nil {
		return nil, err
	}

	logger.Info("verifying deployment", "endpoint", endpoint)
	health := pl.prober.Probe(ctx, endpoint)

	outcome := &models.DeploymentOutcome{
		Profile:  profile,
		Endpoint: endpoint,
		Health:   health,
	}
	pl.reporter.Summary(*outcome)

	return outcome, nil
}
