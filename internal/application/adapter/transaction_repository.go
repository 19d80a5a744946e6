// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Nil fields are not applied.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *entity.PaymentStatus
	FlowType   *entity.FlowType
	IsForecast *bool
}

// MonthlyBucket represents the summed transaction totals for one
// (category, subcategory, flow type) tuple in one calendar month. Category
// and subcategory are nil for uncategorized entries.
type MonthlyBucket struct {
	CategoryID    *uint
	SubcategoryID *uint
	FlowType      entity.FlowType
	Month         time.Time
	Total         decimal.Decimal
}

// CategoryTotal represents the summed transaction totals for one category.
type CategoryTotal struct {
	CategoryID uint
	Total      decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence
// operations.
type TransactionRepository interface {
	// CreateBatch persists a set of transactions atomically: either every
	// record is inserted or none is. Recurrence expansions rely on this to
	// never leave partial future-dated duplicates behind.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, joined with
	// reference names, ordered by due date then flow type.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithRefs, error)

	// SumByMonth returns per-month totals grouped by category, subcategory
	// and flow type for transactions whose due date falls in [start, end)
	// and whose forecast flag matches. Months with no data produce no bucket.
	SumByMonth(ctx context.Context, start, end time.Time, isForecast bool) ([]MonthlyBucket, error)

	// SumPaidByCategory returns, per category, the total of paid transactions
	// whose due date falls within the given calendar month.
	SumPaidByCategory(ctx context.Context, month time.Time) ([]CategoryTotal, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete hard-deletes a transaction. Transactions, unlike reference
	// tables, are never soft-deleted.
	Delete(ctx context.Context, id uint) error
}
