// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// SupplierRepository defines the interface for supplier persistence operations.
type SupplierRepository interface {
	// Create creates a new supplier.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a supplier by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Supplier, error)

	// FindActive retrieves all active suppliers ordered by name.
	FindActive(ctx context.Context) ([]*entity.Supplier, error)

	// Update updates an existing supplier.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// Deactivate soft-deletes a supplier by setting Active to false.
	// Suppliers are never hard-deleted.
	Deactivate(ctx context.Context, id uint) error
}
