package store

import "context"

// Persisted keys.
const (
	KeyCounters = "@counters"
	KeyTheme    = "@theme"
)

// Store is a string key-value store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the value for key. The bool reports whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
