package supplier

import (
	"context"
	"strings"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// UpdateSupplierInput represents the input for updating a supplier.
type UpdateSupplierInput struct {
	ID       uint
	Name     string
	Document string
	Email    string
	Phone    string
	Address  string
	Notes    string
}

// UpdateSupplierOutput wraps the updated supplier.
type UpdateSupplierOutput struct {
	Supplier *entity.Supplier
}

// UpdateSupplierUseCase handles supplier updates.
type UpdateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewUpdateSupplierUseCase creates a new UpdateSupplierUseCase instance.
func NewUpdateSupplierUseCase(supplierRepo adapter.SupplierRepository) *UpdateSupplierUseCase {
	return &UpdateSupplierUseCase{supplierRepo: supplierRepo}
}

// Execute updates the supplier's fields.
func (uc *UpdateSupplierUseCase) Execute(ctx context.Context, input UpdateSupplierInput) (*UpdateSupplierOutput, error) {
	supplier, err := uc.supplierRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.ErrSupplierNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrSupplierNameRequired
	}

	supplier.Name = name
	supplier.Document = input.Document
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address
	supplier.Notes = input.Notes
	supplier.UpdatedAt = time.Now().UTC()

	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return &UpdateSupplierOutput{Supplier: supplier}, nil
}
