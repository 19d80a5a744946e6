// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// BankRepository defines the interface for bank-account persistence operations.
type BankRepository interface {
	// Create creates a new bank account.
	Create(ctx context.Context, bank *entity.BankAccount) error

	// FindByID retrieves a bank account by its ID.
	FindByID(ctx context.Context, id uint) (*entity.BankAccount, error)

	// FindActive retrieves all active bank accounts ordered by name.
	FindActive(ctx context.Context) ([]*entity.BankAccount, error)

	// SumActiveInitialBalances returns the sum of the initial balances of all
	// active accounts. This seeds the running-balance row of cash-flow
	// statements.
	SumActiveInitialBalances(ctx context.Context) (decimal.Decimal, error)

	// Update updates an existing bank account.
	Update(ctx context.Context, bank *entity.BankAccount) error

	// Deactivate soft-deletes a bank account.
	Deactivate(ctx context.Context, id uint) error
}
