package gcloud

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chekout/onboarding-deploy/models"
)

// Deploy publishes the built image to Cloud Run with the profile's
// resource, scaling and timeout parameters. The endpoint is never taken
// from the deploy output: a follow-up describe call must independently
// confirm the service exists and report its URL.
func (p *Platform) Deploy(ctx context.Context, profile models.DeploymentProfile) (string, error) {
	p.logger.Info("deploying service",
		"service", profile.ServiceName,
		"region", p.settings.Region,
	)

	err := p.runner.Run(ctx, "gcloud",
		"run", "deploy", profile.ServiceName,
		"--image", profile.ImageReference+":latest",
		"--platform", "managed",
		"--project", p.settings.ProjectID,
		"--region", p.settings.Region,
		"--port", strconv.Itoa(servicePort),
		"--allow-unauthenticated",
		"--memory", profile.Resources.Memory,
		"--cpu", strconv.Itoa(profile.Resources.CPU),
		"--timeout", strconv.Itoa(profile.RequestTimeoutSeconds),
		"--min-instances", strconv.Itoa(profile.Scaling.Min),
		"--max-instances", strconv.Itoa(profile.Scaling.Max),
		"--set-env-vars", runtimeEnvFlag(profile),
	)
	if err != nil {
		return "", fmt.Errorf("deploy service %q: %w", profile.ServiceName, err)
	}

	return p.serviceURL(ctx, profile)
}

func (p *Platform) serviceURL(ctx context.Context, profile models.DeploymentProfile) (string, error) {
	out, err := p.runner.Output(ctx, "gcloud",
		"run", "services", "describe", profile.ServiceName,
		"--platform", "managed",
		"--project", p.settings.ProjectID,
		"--region", p.settings.Region,
		"--format", "value(status.url)",
	)
	if err != nil {
		return "", fmt.Errorf("describe service %q: %w", profile.ServiceName, err)
	}

	url := strings.TrimSpace(out)
	if url == "" {
		return "", fmt.Errorf("describe service %q: no status.url reported", profile.ServiceName)
	}
	return url, nil
}

// runtimeEnvFlag renders the profile's runtime variables in a fixed order
// so the deploy command is deterministic.
func runtimeEnvFlag(profile models.DeploymentProfile) string {
	env := profile.RuntimeEnv()
	return strings.Join([]string{
		"ENVIRONMENT=" + env["ENVIRONMENT"],
		"DEBUG=" + env["DEBUG"],
		"LOG_LEVEL=" + env["LOG_LEVEL"],
	}, ",")
}
