package pipeline

import (
	"fmt"
	"strings"

	"github.com/chekout/onboarding-deploy/models"
)

// confirm gates high-risk profiles behind a single interactive question.
// Only the literal token "yes" (any casing) proceeds; everything else,
// including an empty line, declines. The gate runs exactly once per run,
// before any external side effect.
func (pl *Pipeline) confirm(profile models.DeploymentProfile) error {
	if !profile.RequiresConfirmation {
		return nil
	}

	pl.reporter.RiskWarning(profile)

	answer, err := pl.prompter.Ask("Type 'yes' to continue: ")
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}

	if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
		return models.ErrDeclined
	}
	return nil
}
