package bank

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// UpdateBankInput represents the input for updating a bank account.
type UpdateBankInput struct {
	ID             uint
	Name           string
	Account        string
	Agency         string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
}

// UpdateBankOutput wraps the updated bank account.
type UpdateBankOutput struct {
	Bank *entity.BankAccount
}

// UpdateBankUseCase handles bank-account updates.
type UpdateBankUseCase struct {
	bankRepo adapter.BankRepository
}

// NewUpdateBankUseCase creates a new UpdateBankUseCase instance.
func NewUpdateBankUseCase(bankRepo adapter.BankRepository) *UpdateBankUseCase {
	return &UpdateBankUseCase{bankRepo: bankRepo}
}

// Execute updates the account's fields.
func (uc *UpdateBankUseCase) Execute(ctx context.Context, input UpdateBankInput) (*UpdateBankOutput, error) {
	bank, err := uc.bankRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.ErrBankNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrBankNameRequired
	}

	bank.Name = name
	bank.Account = input.Account
	bank.Agency = input.Agency
	bank.InitialBalance = input.InitialBalance
	bank.CurrentBalance = input.CurrentBalance
	bank.UpdatedAt = time.Now().UTC()

	if err := uc.bankRepo.Update(ctx, bank); err != nil {
		return nil, err
	}

	return &UpdateBankOutput{Bank: bank}, nil
}
