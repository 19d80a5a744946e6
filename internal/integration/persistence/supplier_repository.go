// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

// supplierRepository implements the adapter.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository instance.
func NewSupplierRepository(db *gorm.DB) adapter.SupplierRepository {
	return &supplierRepository{db: db}
}

// Create creates a new supplier in the database.
func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierModel := model.SupplierFromEntity(supplier)
	if err := r.db.WithContext(ctx).Create(supplierModel).Error; err != nil {
		return err
	}
	supplier.ID = supplierModel.ID
	return nil
}

// FindByID retrieves a supplier by its ID.
func (r *supplierRepository) FindByID(ctx context.Context, id uint) (*entity.Supplier, error) {
	var supplierModel model.SupplierModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&supplierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSupplierNotFound
		}
		return nil, result.Error
	}
	return supplierModel.ToEntity(), nil
}

// FindActive retrieves all active suppliers ordered by name.
func (r *supplierRepository) FindActive(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []model.SupplierModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&supplierModels)
	if result.Error != nil {
		return nil, result.Error
	}

	suppliers := make([]*entity.Supplier, len(supplierModels))
	for i, sm := range supplierModels {
		suppliers[i] = sm.ToEntity()
	}
	return suppliers, nil
}

// Update updates an existing supplier.
func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	supplierModel := model.SupplierFromEntity(supplier)
	return r.db.WithContext(ctx).Save(supplierModel).Error
}

// Deactivate soft-deletes a supplier by setting active to false.
func (r *supplierRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"active": false, "updated_at": time.Now().UTC()}).
		Error
}
