// Package directory implements the cached user store: a single-slot,
// TTL-bounded cache over a RecordSource with stale-fallback semantics.
package directory

import (
	"context"
	"sync"
	"time"

	"github.com/orgdir-lab/orgdir/pkg/domain/interfaces"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
	"github.com/orgdir-lab/orgdir/pkg/utils/errutil"
)

// DefaultTTL is how long a loaded record set is served without re-reading
// the backing source.
const DefaultTTL = 5 * time.Minute

// Store caches the last successful full load of the directory. An expired
// slot is kept and served as a last resort when a refresh fails; it is never
// proactively evicted. Concurrent refreshes may both hit the source and both
// write the slot; the overwrite is idempotent so no extra coordination is
// used beyond the slot mutex.
type Store struct {
	src interfaces.RecordSource
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	cached   []*model.User
	loaded   bool
	loadedAt time.Time
}

var _ interfaces.UserStore = &Store{}

// Option configures a Store
type Option func(*Store)

// WithTTL overrides the cache TTL
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithClock replaces the time source (for tests)
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store over the given record source.
func New(src interfaces.RecordSource, opts ...Option) *Store {
	s := &Store{
		src: src,
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadAll returns every record in the directory. Within the TTL the cached
// set is returned without touching the source. On a failed refresh the
// previous set is served even when expired, and an empty set only when
// nothing was ever loaded. Failures are logged, never returned.
func (s *Store) LoadAll(ctx context.Context) ([]*model.User, types.Freshness) {
	s.mu.RLock()
	cached, loaded, loadedAt := s.cached, s.loaded, s.loadedAt
	s.mu.RUnlock()

	if loaded && s.now().Sub(loadedAt) < s.ttl {
		return cached, types.Fresh
	}

	users, err := s.src.Load(ctx)
	if err != nil {
		errutil.Handle(ctx, err, "failed to load users, falling back to cache")
		if loaded {
			return cached, types.Stale
		}
		return []*model.User{}, types.Empty
	}

	s.mu.Lock()
	s.cached = users
	s.loaded = true
	s.loadedAt = s.now()
	s.mu.Unlock()

	return users, types.Fresh
}

// LoadOne returns the record with the given ID, or nil when absent. The
// record set is small enough that a linear scan per lookup is fine; no index
// is maintained.
func (s *Store) LoadOne(ctx context.Context, id types.UserID) (*model.User, types.Freshness) {
	users, freshness := s.LoadAll(ctx)
	for _, u := range users {
		if u.ID == id {
			return u, freshness
		}
	}
	return nil, freshness
}
