package bank

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// DeleteBankInput represents the input for bank-account deletion.
type DeleteBankInput struct {
	ID uint
}

// DeleteBankUseCase soft-deletes a bank account. Inactive accounts drop
// out of the running-balance seed of cash-flow statements.
type DeleteBankUseCase struct {
	bankRepo adapter.BankRepository
}

// NewDeleteBankUseCase creates a new DeleteBankUseCase instance.
func NewDeleteBankUseCase(bankRepo adapter.BankRepository) *DeleteBankUseCase {
	return &DeleteBankUseCase{bankRepo: bankRepo}
}

// Execute deactivates the account.
func (uc *DeleteBankUseCase) Execute(ctx context.Context, input DeleteBankInput) error {
	if _, err := uc.bankRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.ErrBankNotFound
	}

	return uc.bankRepo.Deactivate(ctx, input.ID)
}
