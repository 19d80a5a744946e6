// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// StatementCache caches rendered cash-flow statements. Statements are pure
// functions of store contents, so a short-lived cache is always safe;
// writers invalidate eagerly to keep reads fresh.
type StatementCache interface {
	// Get retrieves a cached statement payload by key. The boolean reports
	// whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a statement payload under the key with the cache's TTL.
	Set(ctx context.Context, key string, payload []byte) error

	// Invalidate drops every cached statement.
	Invalidate(ctx context.Context) error
}
