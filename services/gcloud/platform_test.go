package gcloud

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chekout/onboarding-deploy/interfaces"
	"github.com/chekout/onboarding-deploy/models"
)

// fakeRunner records every command and serves canned results keyed by the
// first two gcloud arguments ("auth list", "run deploy", ...).
type fakeRunner struct {
	commands    [][]string
	runErr      map[string]error
	outputs     map[string]string
	outputErr   map[string]error
	lookPathErr error
}

func commandKey(args []string) string {
	if len(args) < 2 {
		return strings.Join(args, " ")
	}
	return args[0] + " " + args[1]
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.commands = append(f.commands, append([]string{name}, args...))
	return f.runErr[commandKey(args)]
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	f.commands = append(f.commands, append([]string{name}, args...))
	key := commandKey(args)
	if err := f.outputErr[key]; err != nil {
		return "", err
	}
	return f.outputs[key], nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) keys() []string {
	var keys []string
	for _, cmd := range f.commands {
		keys = append(keys, commandKey(cmd[1:]))
	}
	return keys
}

func newTestPlatform(runner interfaces.CommandRunner) *Platform {
	settings := models.Settings{ProjectID: "shopify-473015", Region: "us-central1"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPlatform(runner, settings, logger)
}

func stagingProfile() models.DeploymentProfile {
	return models.DeploymentProfile{
		Environment:           models.EnvironmentStaging,
		ServiceName:           "onboarding-api-staging",
		Resources:             models.Resources{Memory: "512Mi", CPU: 1},
		Scaling:               models.ScalingBounds{Min: 0, Max: 2},
		RequestTimeoutSeconds: 300,
		LogLevel:              models.LogLevelDebug,
		DebugEnabled:          true,
		ImageReference:        "gcr.io/shopify-473015/onboarding-api-staging",
	}
}

func TestPreflight_MissingTool(t *testing.T) {
	runner := &fakeRunner{lookPathErr: errors.New("executable file not found in $PATH")}
	p := newTestPlatform(runner)

	err := p.Preflight(context.Background())

	assert.True(t, errors.Is(err, models.ErrToolMissing))
	assert.Contains(t, err.Error(), "cloud.google.com/sdk")
	assert.Empty(t, runner.commands, "no gcloud call without the binary")
}

func TestPreflight_ActiveCredential(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{"auth list": "ops@chekout.ai\n"},
	}
	p := newTestPlatform(runner)

	require.NoError(t, p.Preflight(context.Background()))
	assert.Equal(t, []string{"auth list"}, runner.keys(), "login must not run")
}

func TestPreflight_LoginFlowRecovers(t *testing.T) {
	// First auth list is empty, login runs, and the re-check must see the
	// account the login flow produced.
	login := &loginRecoveringRunner{
		fakeRunner: &fakeRunner{outputs: map[string]string{"auth list": "\n"}},
	}
	p := newTestPlatform(login)

	require.NoError(t, p.Preflight(context.Background()))
	assert.Equal(t, []string{"auth list", "auth login", "auth list"}, login.keys())
}

func TestPreflight_LoginDoesNotRecover(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"auth list": ""}}
	p := newTestPlatform(runner)

	err := p.Preflight(context.Background())

	assert.True(t, errors.Is(err, models.ErrNoCredential))
	assert.Equal(t, []string{"auth list", "auth login", "auth list"}, runner.keys())
}

// loginRecoveringRunner makes "auth list" report an account once "auth
// login" has run.
type loginRecoveringRunner struct {
	*fakeRunner
	loggedIn bool
}

func (l *loginRecoveringRunner) Run(ctx context.Context, name string, args ...string) error {
	if commandKey(args) == "auth login" {
		l.loggedIn = true
	}
	return l.fakeRunner.Run(ctx, name, args...)
}

func (l *loginRecoveringRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	if commandKey(args) == "auth list" && l.loggedIn {
		l.commands = append(l.commands, append([]string{name}, args...))
		return "ops@chekout.ai\n", nil
	}
	return l.fakeRunner.Output(ctx, name, args...)
}

func TestBuild_SubmitsTaggedImage(t *testing.T) {
	runner := &fakeRunner{}
	p := newTestPlatform(runner)

	require.NoError(t, p.Build(context.Background(), stagingProfile()))

	require.Len(t, runner.commands, 1)
	cmd := runner.commands[0]
	assert.Equal(t, "gcloud", cmd[0])
	assert.Contains(t, cmd, "builds")
	assert.Contains(t, cmd, "submit")
	assert.Contains(t, cmd, "gcr.io/shopify-473015/onboarding-api-staging:latest")
	assert.Contains(t, cmd, "shopify-473015")
}

func TestBuild_FailurePropagates(t *testing.T) {
	runner := &fakeRunner{runErr: map[string]error{"builds submit": errors.New("exit status 1")}}
	p := newTestPlatform(runner)

	err := p.Build(context.Background(), stagingProfile())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "build image")
}

func TestDeploy_TwoStepEndpointRetrieval(t *testing.T) {
	const url = "https://onboarding-api-staging-abc123-uc.a.run.app"
	runner := &fakeRunner{
		outputs: map[string]string{"run services": url + "\n"},
	}
	p := newTestPlatform(runner)

	endpoint, err := p.Deploy(context.Background(), stagingProfile())
	require.NoError(t, err)

	assert.Equal(t, url, endpoint, "endpoint comes from describe, trimmed")
	require.Equal(t, []string{"run deploy", "run services"}, runner.keys(),
		"describe must follow deploy")

	deploy := runner.commands[0]
	assert.Contains(t, deploy, "--allow-unauthenticated")
	assert.Contains(t, deploy, "512Mi")
	assert.Contains(t, deploy, "--min-instances")
	assert.Contains(t, deploy, "ENVIRONMENT=staging,DEBUG=true,LOG_LEVEL=DEBUG")
	assert.Contains(t, deploy, "8080")
	assert.Contains(t, deploy, "us-central1")
}

func TestDeploy_FailureSkipsDescribe(t *testing.T) {
	runner := &fakeRunner{runErr: map[string]error{"run deploy": errors.New("exit status 1")}}
	p := newTestPlatform(runner)

	_, err := p.Deploy(context.Background(), stagingProfile())

	require.Error(t, err)
	assert.Equal(t, []string{"run deploy"}, runner.keys())
}

func TestDeploy_EmptyDescribeURLFails(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"run services": "\n"}}
	p := newTestPlatform(runner)

	_, err := p.Deploy(context.Background(), stagingProfile())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no status.url")
}
