package transaction

import (
	"context"
	"log/slog"

	"github.com/bk-finance/backend/internal/application/adapter"
)

// invalidateStatements drops cached cash-flow statements after a write.
// Cache failures never fail the write; the cache is rebuilt on next read.
func invalidateStatements(ctx context.Context, cache adapter.StatementCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate statement cache", "error", err)
	}
}
