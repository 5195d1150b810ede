package gravatar

import (
	"context"
	"sync"
	"time"

	"github.com/orgdir-lab/orgdir/pkg/domain/interfaces"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
	"github.com/orgdir-lab/orgdir/pkg/utils/emailhash"
	"github.com/orgdir-lab/orgdir/pkg/utils/errutil"
)

// DefaultCacheTTL is how long a fetched profile is served without a new
// lookup. Profiles change rarely, so this is much longer than the user
// store's TTL.
const DefaultCacheTTL = time.Hour

type cacheEntry struct {
	profile  *model.Profile
	cachedAt time.Time
}

// Enricher serves profile data through a per-fingerprint TTL cache. Expired
// entries are kept as a fallback for failed lookups and never proactively
// evicted. Lookups for the same key may race on a cold cache; both writes
// carry the same data so the overwrite is harmless.
type Enricher struct {
	fetcher interfaces.ProfileFetcher
	ttl     time.Duration
	now     func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

var _ interfaces.ProfileEnricher = &Enricher{}

// EnricherOption configures an Enricher
type EnricherOption func(*Enricher)

// WithCacheTTL overrides the cache TTL
func WithCacheTTL(ttl time.Duration) EnricherOption {
	return func(e *Enricher) {
		e.ttl = ttl
	}
}

// WithCacheClock replaces the time source (for tests)
func WithCacheClock(now func() time.Time) EnricherOption {
	return func(e *Enricher) {
		e.now = now
	}
}

// NewEnricher creates an Enricher over the given profile fetcher.
func NewEnricher(fetcher interfaces.ProfileFetcher, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		fetcher: fetcher,
		ttl:     DefaultCacheTTL,
		now:     time.Now,
		cache:   make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich returns the profile fields for an email address. An empty email
// short-circuits to an empty profile with no external call. A cache hit
// within the TTL is served directly; otherwise a single lookup runs and its
// result is written through. On any failure the expired cache entry is
// served when present, else an empty profile. Failures are logged, never
// returned.
func (e *Enricher) Enrich(ctx context.Context, email string) (*model.Profile, types.Freshness) {
	if email == "" {
		return &model.Profile{}, types.Fresh
	}

	key := emailhash.Fingerprint(email)

	e.mu.RLock()
	entry, ok := e.cache[key]
	e.mu.RUnlock()

	if ok && e.now().Sub(entry.cachedAt) < e.ttl {
		return entry.profile, types.Fresh
	}

	profile, err := e.fetcher.FetchProfile(ctx, email)
	if err != nil {
		errutil.Handle(ctx, err, "profile lookup failed, falling back to cache")
		if ok {
			return entry.profile, types.Stale
		}
		return &model.Profile{}, types.Empty
	}

	e.mu.Lock()
	e.cache[key] = cacheEntry{profile: profile, cachedAt: e.now()}
	e.mu.Unlock()

	return profile, types.Fresh
}
