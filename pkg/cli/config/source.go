package config

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgdir-lab/orgdir/pkg/domain/interfaces"
	"github.com/orgdir-lab/orgdir/pkg/service/directory"
	"github.com/orgdir-lab/orgdir/pkg/service/source"
	"github.com/orgdir-lab/orgdir/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Source holds CLI flags for the users document backend. Exactly one of the
// file path and the URL must be set; the choice selects the RecordSource
// implementation at construction time.
type Source struct {
	filePath string
	url      string
	cacheTTL time.Duration
}

// Flags returns CLI flags for source configuration
func (x *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "users-file",
			Usage:       "Path to the users JSON document",
			Category:    "Source",
			Sources:     cli.EnvVars("ORGDIR_USERS_FILE"),
			Destination: &x.filePath,
		},
		&cli.StringFlag{
			Name:        "users-url",
			Usage:       "URL of the users JSON document (alternative to users-file)",
			Category:    "Source",
			Sources:     cli.EnvVars("ORGDIR_USERS_URL"),
			Destination: &x.url,
		},
		&cli.DurationFlag{
			Name:        "users-cache-ttl",
			Usage:       "How long a loaded record set is served without re-reading the source",
			Category:    "Source",
			Value:       directory.DefaultTTL,
			Sources:     cli.EnvVars("ORGDIR_USERS_CACHE_TTL"),
			Destination: &x.cacheTTL,
		},
	}
}

// Configure builds the cached user store over the configured backend.
func (x *Source) Configure(ctx context.Context) (interfaces.UserStore, error) {
	src, err := x.recordSource()
	if err != nil {
		return nil, err
	}

	return directory.New(src, directory.WithTTL(x.cacheTTL)), nil
}

func (x *Source) recordSource() (interfaces.RecordSource, error) {
	switch {
	case x.filePath != "" && x.url != "":
		return nil, goerr.Wrap(ErrAmbiguousSource, "invalid source configuration",
			goerr.V("users-file", x.filePath), goerr.V("users-url", x.url))

	case x.filePath != "":
		logging.Default().Info("Using file record source", "path", x.filePath)
		return source.NewFile(x.filePath)

	case x.url != "":
		logging.Default().Info("Using HTTP record source", "url", x.url)
		return source.NewHTTP(x.url)

	default:
		return nil, ErrNoSource
	}
}
