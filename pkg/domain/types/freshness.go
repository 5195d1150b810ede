package types

// Freshness classifies how a value produced by a cached, best-effort read was
// obtained. The directory core never surfaces errors to callers; instead
// every read reports whether it served live data, an expired cache entry kept
// as a last resort, or an empty default.
type Freshness string

const (
	// Fresh means the value came from the underlying source or a cache
	// entry within its TTL.
	Fresh Freshness = "fresh"

	// Stale means the underlying fetch failed and an expired cache entry
	// was served as a fallback.
	Stale Freshness = "stale"

	// Empty means the fetch failed and no cache entry existed, so the
	// zero value was served.
	Empty Freshness = "empty"
)

// String returns the string representation of Freshness
func (f Freshness) String() string {
	return string(f)
}

// Degraded reports whether the value was served from a fallback path.
func (f Freshness) Degraded() bool {
	return f != Fresh
}
