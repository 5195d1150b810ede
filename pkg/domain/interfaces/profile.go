package interfaces

import (
	"context"

	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
)

// ProfileFetcher performs a single lookup against the external profile
// service. A lookup failure is an error at this level; the caching Enricher
// above it is responsible for absorbing failures.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, email string) (*model.Profile, error)
}

// ProfileEnricher returns supplementary profile fields for an email address,
// serving from its cache when possible. It never returns an error: failures
// degrade to a stale cache entry or an empty profile.
type ProfileEnricher interface {
	Enrich(ctx context.Context, email string) (*model.Profile, types.Freshness)
}
