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

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateBatch persists the transactions atomically. A failure on any record
// rolls the whole batch back.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.Transaction) error {
	transactionModels := make([]*model.TransactionModel, len(transactions))
	for i, t := range transactions {
		transactionModels[i] = model.TransactionFromEntity(t)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(transactionModels, 100).Error
	})
	if err != nil {
		return err
	}

	for i, tm := range transactionModels {
		transactions[i].ID = tm.ID
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter with their
// reference names preloaded, ordered by due date then flow type.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithRefs, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		Preload("Supplier").
		Preload("Bank")

	if filter.StartDate != nil {
		query = query.Where("due_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("due_date <= ?", *filter.EndDate)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.FlowType != nil {
		query = query.Where("flow_type = ?", string(*filter.FlowType))
	}
	if filter.IsForecast != nil {
		query = query.Where("is_forecast = ?", *filter.IsForecast)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("due_date ASC, flow_type ASC, id ASC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntityWithRefs()
	}
	return transactions, nil
}

// sumRow is the projection used by the aggregate reads.
type sumRow struct {
	CategoryID    *uint
	SubcategoryID *uint
	FlowType      string
	DueDate       time.Time
	TotalValue    decimal.Decimal
}

// SumByMonth returns per-month totals grouped by category, subcategory and
// flow type. Rows are fetched with a plain range predicate and bucketed
// here, which keeps the query portable across postgres and sqlite.
func (r *transactionRepository) SumByMonth(ctx context.Context, start, end time.Time, isForecast bool) ([]adapter.MonthlyBucket, error) {
	var rows []sumRow
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, subcategory_id, flow_type, due_date, total_value").
		Where("due_date >= ? AND due_date < ? AND is_forecast = ?", start, end, isForecast).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	type bucketKey struct {
		categoryID    uint
		subcategoryID uint
		flowType      string
		month         time.Time
	}

	totals := make(map[bucketKey]*adapter.MonthlyBucket)
	var order []bucketKey
	for _, row := range rows {
		month := time.Date(row.DueDate.Year(), row.DueDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		key := bucketKey{flowType: row.FlowType, month: month}
		if row.CategoryID != nil {
			key.categoryID = *row.CategoryID
		}
		if row.SubcategoryID != nil {
			key.subcategoryID = *row.SubcategoryID
		}

		bucket, ok := totals[key]
		if !ok {
			bucket = &adapter.MonthlyBucket{
				CategoryID:    row.CategoryID,
				SubcategoryID: row.SubcategoryID,
				FlowType:      entity.FlowType(row.FlowType),
				Month:         month,
				Total:         decimal.Zero,
			}
			totals[key] = bucket
			order = append(order, key)
		}
		bucket.Total = bucket.Total.Add(row.TotalValue)
	}

	buckets := make([]adapter.MonthlyBucket, len(order))
	for i, key := range order {
		buckets[i] = *totals[key]
	}
	return buckets, nil
}

// SumPaidByCategory returns per-category totals of paid transactions due in
// the given calendar month.
func (r *transactionRepository) SumPaidByCategory(ctx context.Context, month time.Time) ([]adapter.CategoryTotal, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var rows []struct {
		CategoryID uint
		Total      decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, SUM(total_value) AS total").
		Where("status = ? AND category_id IS NOT NULL AND due_date >= ? AND due_date < ?",
			string(entity.PaymentStatusPaid), monthStart, monthEnd).
		Group("category_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make([]adapter.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.CategoryTotal{CategoryID: row.CategoryID, Total: row.Total}
	}
	return totals, nil
}

// Update updates an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Save(transactionModel).Error
}

// Delete hard-deletes a transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TransactionModel{}, id).Error
}
