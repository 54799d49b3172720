package utils

import (
	"context"
	"time"
)

const (
	// FastQueryTimeout covers single-row lookups such as a saved configuration.
	FastQueryTimeout = 10 * time.Second
	// DefaultQueryTimeout covers list queries.
	DefaultQueryTimeout = 30 * time.Second
	// ComponentFetchTimeout covers loading a project's whole component universe.
	ComponentFetchTimeout = 60 * time.Second
)

// QueryContext derives a context with timeout for a database query. A nil
// parent falls back to context.Background.
func QueryContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
