package bank

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// ListBanksOutput holds the active bank accounts and the sum of their
// initial balances.
type ListBanksOutput struct {
	Banks               []*entity.BankAccount
	TotalInitialBalance decimal.Decimal
}

// ListBanksUseCase lists active bank accounts ordered by name.
type ListBanksUseCase struct {
	bankRepo adapter.BankRepository
}

// NewListBanksUseCase creates a new ListBanksUseCase instance.
func NewListBanksUseCase(bankRepo adapter.BankRepository) *ListBanksUseCase {
	return &ListBanksUseCase{bankRepo: bankRepo}
}

// Execute retrieves the active accounts and their initial-balance total.
func (uc *ListBanksUseCase) Execute(ctx context.Context) (*ListBanksOutput, error) {
	banks, err := uc.bankRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	total, err := uc.bankRepo.SumActiveInitialBalances(ctx)
	if err != nil {
		return nil, err
	}

	return &ListBanksOutput{Banks: banks, TotalInitialBalance: total}, nil
}
