package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

// bankRepository implements the adapter.BankRepository interface.
type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository instance.
func NewBankRepository(db *gorm.DB) adapter.BankRepository {
	return &bankRepository{db: db}
}

// Create creates a new bank account in the database.
func (r *bankRepository) Create(ctx context.Context, bank *entity.BankAccount) error {
	bankModel := model.BankFromEntity(bank)
	if err := r.db.WithContext(ctx).Create(bankModel).Error; err != nil {
		return err
	}
	bank.ID = bankModel.ID
	return nil
}

// FindByID retrieves a bank account by its ID.
func (r *bankRepository) FindByID(ctx context.Context, id uint) (*entity.BankAccount, error) {
	var bankModel model.BankModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&bankModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBankNotFound
		}
		return nil, result.Error
	}
	return bankModel.ToEntity(), nil
}

// FindActive retrieves all active bank accounts ordered by name.
func (r *bankRepository) FindActive(ctx context.Context) ([]*entity.BankAccount, error) {
	var bankModels []model.BankModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&bankModels)
	if result.Error != nil {
		return nil, result.Error
	}

	banks := make([]*entity.BankAccount, len(bankModels))
	for i, bm := range bankModels {
		banks[i] = bm.ToEntity()
	}
	return banks, nil
}

// SumActiveInitialBalances returns the sum of active accounts' initial
// balances.
func (r *bankRepository) SumActiveInitialBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&model.BankModel{}).
		Where("active = ?", true).
		Select("COALESCE(SUM(initial_balance), 0)").
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Update updates an existing bank account.
func (r *bankRepository) Update(ctx context.Context, bank *entity.BankAccount) error {
	bankModel := model.BankFromEntity(bank)
	return r.db.WithContext(ctx).Save(bankModel).Error
}

// Deactivate soft-deletes a bank account.
func (r *bankRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.BankModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"active": false, "updated_at": time.Now().UTC()}).
		Error
}
