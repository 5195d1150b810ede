package config

import (
	"time"

	"github.com/orgdir-lab/orgdir/pkg/service/gravatar"
	"github.com/orgdir-lab/orgdir/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Gravatar holds CLI flags for the profile enrichment service
type Gravatar struct {
	enabled  bool
	baseURL  string
	timeout  time.Duration
	cacheTTL time.Duration
}

// Flags returns CLI flags for Gravatar configuration
func (x *Gravatar) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "gravatar",
			Usage:       "Enable Gravatar profile enrichment",
			Category:    "Gravatar",
			Value:       true,
			Sources:     cli.EnvVars("ORGDIR_GRAVATAR"),
			Destination: &x.enabled,
		},
		&cli.StringFlag{
			Name:        "gravatar-base-url",
			Usage:       "Gravatar endpoint base URL",
			Category:    "Gravatar",
			Value:       gravatar.DefaultBaseURL,
			Sources:     cli.EnvVars("ORGDIR_GRAVATAR_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.DurationFlag{
			Name:        "gravatar-timeout",
			Usage:       "Timeout for a single profile lookup",
			Category:    "Gravatar",
			Value:       gravatar.DefaultTimeout,
			Sources:     cli.EnvVars("ORGDIR_GRAVATAR_TIMEOUT"),
			Destination: &x.timeout,
		},
		&cli.DurationFlag{
			Name:        "gravatar-cache-ttl",
			Usage:       "How long a fetched profile is served without a new lookup",
			Category:    "Gravatar",
			Value:       gravatar.DefaultCacheTTL,
			Sources:     cli.EnvVars("ORGDIR_GRAVATAR_CACHE_TTL"),
			Destination: &x.cacheTTL,
		},
	}
}

// Enabled reports whether enrichment is turned on
func (x *Gravatar) Enabled() bool {
	return x.enabled
}

// Configure builds the Gravatar client and its caching enricher. Both are
// nil when enrichment is disabled.
func (x *Gravatar) Configure() (*gravatar.Client, *gravatar.Enricher) {
	if !x.enabled {
		logging.Default().Info("Gravatar enrichment disabled, profiles will not be fetched")
		return nil, nil
	}

	client := gravatar.NewClient(
		gravatar.WithBaseURL(x.baseURL),
		gravatar.WithTimeout(x.timeout),
	)
	enricher := gravatar.NewEnricher(client, gravatar.WithCacheTTL(x.cacheTTL))

	logging.Default().Info("Gravatar enrichment enabled",
		"base_url", x.baseURL,
		"timeout", x.timeout.String(),
		"cache_ttl", x.cacheTTL.String(),
	)

	return client, enricher
}
