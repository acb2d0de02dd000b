package gcloud

import (
	"context"
	"fmt"
	"strings"

	"github.com/chekout/onboarding-deploy/models"
)

const installHint = "install the Google Cloud SDK: https://cloud.google.com/sdk/docs/install"

// Preflight verifies the gcloud binary is on PATH and that an active
// credential exists. A missing credential triggers the interactive login
// flow once; everything after preflight assumes an authenticated session.
func (p *Platform) Preflight(ctx context.Context) error {
	if _, err := p.runner.LookPath("gcloud"); err != nil {
		return fmt.Errorf("%w; %s", models.ErrToolMissing, installHint)
	}

	account, err := p.activeAccount(ctx)
	if err != nil {
		return fmt.Errorf("check active credential: %w", err)
	}

	if account == "" {
		p.logger.Info("no active credential, starting gcloud login")
		if err := p.runner.Run(ctx, "gcloud", "auth", "login"); err != nil {
			return fmt.Errorf("gcloud auth login: %w", err)
		}

		account, err = p.activeAccount(ctx)
		if err != nil {
			return fmt.Errorf("re-check active credential: %w", err)
		}
		if account == "" {
			return models.ErrNoCredential
		}
	}

	p.logger.Debug("preflight passed", "account", account)
	return nil
}

func (p *Platform) activeAccount(ctx context.Context) (string, error) {
	out, err := p.runner.Output(ctx, "gcloud",
		"auth", "list",
		"--filter=status:ACTIVE",
		"--format=value(account)",
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
