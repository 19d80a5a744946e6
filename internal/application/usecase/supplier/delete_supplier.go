package supplier

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// DeleteSupplierInput represents the input for supplier deletion.
type DeleteSupplierInput struct {
	ID uint
}

// DeleteSupplierUseCase soft-deletes a supplier. The record stays in the
// store so transaction history keeps its reference.
type DeleteSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewDeleteSupplierUseCase creates a new DeleteSupplierUseCase instance.
func NewDeleteSupplierUseCase(supplierRepo adapter.SupplierRepository) *DeleteSupplierUseCase {
	return &DeleteSupplierUseCase{supplierRepo: supplierRepo}
}

// Execute deactivates the supplier.
func (uc *DeleteSupplierUseCase) Execute(ctx context.Context, input DeleteSupplierInput) error {
	if _, err := uc.supplierRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.ErrSupplierNotFound
	}

	return uc.supplierRepo.Deactivate(ctx, input.ID)
}
