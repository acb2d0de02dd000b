package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/chekout/onboarding-deploy/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#157483")).Width(16)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

// managedSecrets are provisioned directly in the target environment's
// runtime. The pipeline names them so the operator remembers, but never
// reads or validates them.
var managedSecrets = []string{
	"DB_DSN",
	"GCS_CLIENT_EMAIL",
	"GCS_PRIVATE_KEY",
	"GCS_PRIVATE_KEY_ID",
	"VERTEX_CLIENT_EMAIL",
	"VERTEX_PRIVATE_KEY",
	"VERTEX_PROJECT_ID",
	"ALLOWED_ORIGINS",
}

// Reporter renders the configuration preview and the final summary.
// Output is deterministic for a given profile and outcome.
type Reporter struct {
	out      io.Writer
	settings models.Settings
}

func NewReporter(out io.Writer, settings models.Settings) *Reporter {
	return &Reporter{out: out, settings: settings}
}

// Preview renders the resolved profile before anything executes.
func (r *Reporter) Preview(profile models.DeploymentProfile) {
	fmt.Fprintln(r.out, titleStyle.Render("Deployment configuration"))
	r.row("Environment", string(profile.Environment))
	r.row("Service", profile.ServiceName)
	r.row("Project", r.settings.ProjectID)
	r.row("Region", r.settings.Region)
	r.row("Image", profile.ImageReference+":latest")
	r.row("Resources", fmt.Sprintf("%s memory, %d CPU", profile.Resources.Memory, profile.Resources.CPU))
	r.row("Scaling", fmt.Sprintf("%d-%d instances", profile.Scaling.Min, profile.Scaling.Max))
	r.row("Timeout", fmt.Sprintf("%ds", profile.RequestTimeoutSeconds))
	r.row("Log level", string(profile.LogLevel))
	fmt.Fprintln(r.out)
}

// RiskWarning renders the confirmation gate's warning for high-risk
// profiles.
func (r *Reporter) RiskWarning(profile models.DeploymentProfile) {
	fmt.Fprintln(r.out, warnStyle.Render(
		fmt.Sprintf("You are about to deploy %q to %s.", profile.ServiceName, profile.Environment)))
	fmt.Fprintln(r.out, warnStyle.Render("This replaces the revision currently serving live traffic."))
}

// Summary renders the final outcome and the reminder of externally managed
// secrets.
func (r *Reporter) Summary(outcome models.DeploymentOutcome) {
	fmt.Fprintln(r.out, titleStyle.Render("Deployment complete"))
	r.row("Environment", string(outcome.Profile.Environment))
	r.row("Service", outcome.Profile.ServiceName)
	r.row("Endpoint", outcome.Endpoint)
	r.row("Project", r.settings.ProjectID)
	r.row("Region", r.settings.Region)
	r.row("Health", r.renderHealth(outcome.Health))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, mutedStyle.Render("Secrets expected in the target environment (managed outside this pipeline):"))
	for _, name := range managedSecrets {
		fmt.Fprintln(r.out, mutedStyle.Render("  - "+name))
	}
}

func (r *Reporter) row(label, value string) {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Render(label), value)
}

func (r *Reporter) renderHealth(status models.HealthStatus) string {
	switch status {
	case models.HealthStatusHealthy:
		return okStyle.Render("✓ healthy")
	case models.HealthStatusDegraded:
		return warnStyle.Render("⚠ responding, health check failing")
	default:
		return warnStyle.Render("? unknown, check the service logs")
	}
}
