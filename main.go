package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chekout/onboarding-deploy/models"
	"github.com/chekout/onboarding-deploy/services/config"
	"github.com/chekout/onboarding-deploy/services/gcloud"
	"github.com/chekout/onboarding-deploy/services/pipeline"
	"github.com/chekout/onboarding-deploy/services/report"
	"github.com/chekout/onboarding-deploy/services/term"
	"github.com/chekout/onboarding-deploy/services/verify"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "onboarding-deploy [staging|production]",
		Short: "Build and deploy the Merchant Onboarding API to Cloud Run",
		Long: `Builds a container image of the onboarding API via Cloud Build and
publishes it to Cloud Run. The environment argument selects the deployment
profile and defaults to staging; production deploys require an interactive
confirmation.

Process configuration:
  GCP_PROJECT_ID   cloud project (default ` + config.DefaultProjectID + `)
  GCP_REGION       Cloud Run region (default ` + config.DefaultRegion + `)`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			if len(args) == 1 {
				if _, err := models.ParseEnvironment(args[0]); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: runDeploy,
	}
}

func runDeploy(cmd *cobra.Command, args []string) error {
	// Past argument validation every error is a pipeline failure, not a
	// usage problem.
	cmd.SilenceUsage = true

	name := string(models.EnvironmentStaging)
	if len(args) == 1 {
		name = args[0]
	}

	settings := config.LoadSettings()
	profile, err := config.Resolve(name, settings)
	if err != nil {
		return err
	}

	logger := config.NewLogger(profile.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	platform := gcloud.NewPlatform(gcloud.NewExecRunner(), settings, logger)
	prober := verify.NewProber(logger)
	prompter := term.NewPrompter(os.Stdin, os.Stdout)
	reporter := report.NewReporter(os.Stdout, settings)

	pl := pipeline.New(platform, prober, prompter, reporter, logger)

	if _, err := pl.Run(ctx, profile); err != nil {
		if errors.Is(err, models.ErrDeclined) {
			fmt.Fprintln(os.Stdout, "Deployment cancelled.")
			return nil
		}
		return err
	}
	return nil
}
