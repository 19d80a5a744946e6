// Package supplier contains supplier management use cases.
package supplier

import (
	"context"
	"strings"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// CreateSupplierInput represents the input for supplier creation.
type CreateSupplierInput struct {
	Name     string
	Document string
	Email    string
	Phone    string
	Address  string
	Notes    string
}

// CreateSupplierOutput wraps the created supplier.
type CreateSupplierOutput struct {
	Supplier *entity.Supplier
}

// CreateSupplierUseCase handles supplier creation.
type CreateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewCreateSupplierUseCase creates a new CreateSupplierUseCase instance.
func NewCreateSupplierUseCase(supplierRepo adapter.SupplierRepository) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{supplierRepo: supplierRepo}
}

// Execute creates the supplier. The name is required.
func (uc *CreateSupplierUseCase) Execute(ctx context.Context, input CreateSupplierInput) (*CreateSupplierOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrSupplierNameRequired
	}

	supplier := entity.NewSupplier(name, input.Document, input.Email, input.Phone, input.Address, input.Notes)
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return &CreateSupplierOutput{Supplier: supplier}, nil
}
