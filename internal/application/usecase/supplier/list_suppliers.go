package supplier

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// ListSuppliersOutput holds the active suppliers.
type ListSuppliersOutput struct {
	Suppliers []*entity.Supplier
}

// ListSuppliersUseCase lists active suppliers ordered by name.
type ListSuppliersUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewListSuppliersUseCase creates a new ListSuppliersUseCase instance.
func NewListSuppliersUseCase(supplierRepo adapter.SupplierRepository) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{supplierRepo: supplierRepo}
}

// Execute retrieves the active suppliers.
func (uc *ListSuppliersUseCase) Execute(ctx context.Context) (*ListSuppliersOutput, error) {
	suppliers, err := uc.supplierRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	return &ListSuppliersOutput{Suppliers: suppliers}, nil
}
