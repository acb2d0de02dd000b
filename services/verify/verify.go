package verify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/chekout/onboarding-deploy/models"
)

const healthPath = "/health"

// Prober classifies a freshly deployed endpoint. A new revision can take a
// while to accept connections, so the health path is polled with bounded
// exponential backoff instead of a single shot.
type Prober struct {
	Client  *http.Client
	MaxWait time.Duration

	logger *slog.Logger
}

func NewProber(logger *slog.Logger) *Prober {
	return &Prober{
		Client:  &http.Client{Timeout: 10 * time.Second},
		MaxWait: time.Minute,
		logger:  logger,
	}
}

// Probe never fails the pipeline: by the time it runs, the deploy already
// succeeded, so an unreachable endpoint is advisory only.
func (p *Prober) Probe(ctx context.Context, endpoint string) models.HealthStatus {
	base := strings.TrimRight(endpoint, "/")

	check := func() (struct{}, error) {
		return struct{}{}, p.get(ctx, base+healthPath)
	}
	_, err := backoff.Retry(ctx, check,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(p.MaxWait),
	)
	if err == nil {
		return models.HealthStatusHealthy
	}
	p.logger.Warn("health endpoint did not answer", "endpoint", base+healthPath, "error", err)

	if err := p.get(ctx, base+"/"); err == nil {
		return models.HealthStatusDegraded
	}

	p.logger.Warn("service not reachable, verification inconclusive", "endpoint", base)
	return models.HealthStatusUnknown
}

func (p *Prober) get(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return nil
}
