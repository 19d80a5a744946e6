// Package bank contains bank-account management use cases.
package bank

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// CreateBankInput represents the input for bank-account creation.
type CreateBankInput struct {
	Name           string
	Account        string
	Agency         string
	InitialBalance decimal.Decimal
}

// CreateBankOutput wraps the created bank account.
type CreateBankOutput struct {
	Bank *entity.BankAccount
}

// CreateBankUseCase handles bank-account creation.
type CreateBankUseCase struct {
	bankRepo adapter.BankRepository
}

// NewCreateBankUseCase creates a new CreateBankUseCase instance.
func NewCreateBankUseCase(bankRepo adapter.BankRepository) *CreateBankUseCase {
	return &CreateBankUseCase{bankRepo: bankRepo}
}

// Execute creates the account with its current balance set to the initial
// balance.
func (uc *CreateBankUseCase) Execute(ctx context.Context, input CreateBankInput) (*CreateBankOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrBankNameRequired
	}

	bank := entity.NewBankAccount(name, input.Account, input.Agency, input.InitialBalance)
	if err := uc.bankRepo.Create(ctx, bank); err != nil {
		return nil, err
	}

	return &CreateBankOutput{Bank: bank}, nil
}
