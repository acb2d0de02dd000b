package gcloud

import (
	"context"
	"fmt"

	"github.com/chekout/onboarding-deploy/models"
)

// Build submits the current directory to Cloud Build, tagged with the
// profile's image reference. Partial state from a failed build (a half
// pushed image) is the backend's responsibility, not ours.
func (p *Platform) Build(ctx context.Context, profile models.DeploymentProfile) error {
	tag := profile.ImageReference + ":latest"

	p.logger.Info("submitting build", "tag", tag, "project", p.settings.ProjectID)

	err := p.runner.Run(ctx, "gcloud",
		"builds", "submit",
		"--tag", tag,
		"--project", p.settings.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("build image %q: %w", tag, err)
	}
	return nil
}
