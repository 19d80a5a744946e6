// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget-line persistence operations.
type BudgetRepository interface {
	// Upsert inserts a budget line or, when a line already exists for the
	// same (category, subcategory, month), updates its planned value in place.
	Upsert(ctx context.Context, line *entity.BudgetLine) error

	// FindByMonth retrieves all budget lines for a month, joined with
	// category and subcategory names, ordered by flow type, category name,
	// subcategory name.
	FindByMonth(ctx context.Context, yearMonth time.Time) ([]*entity.BudgetLineWithNames, error)
}
