package persistence

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{db: db}
}

// Upsert inserts the line or updates the planned value of the existing line
// with the same (category, subcategory, month) key.
func (r *budgetRepository) Upsert(ctx context.Context, line *entity.BudgetLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("category_id = ? AND year_month = ?", line.CategoryID, line.YearMonth)
		if line.SubcategoryID != nil {
			query = query.Where("subcategory_id = ?", *line.SubcategoryID)
		} else {
			query = query.Where("subcategory_id IS NULL")
		}

		var existing model.BudgetLineModel
		err := query.First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				lineModel := model.BudgetLineFromEntity(line)
				if err := tx.Create(lineModel).Error; err != nil {
					return err
				}
				line.ID = lineModel.ID
				return nil
			}
			return err
		}

		if err := tx.Model(&existing).
			Updates(map[string]interface{}{
				"planned_value": line.PlannedValue,
				"updated_at":    time.Now().UTC(),
			}).Error; err != nil {
			return err
		}
		line.ID = existing.ID
		return nil
	})
}

// FindByMonth retrieves the budget lines of a month with their reference
// names, ordered by flow type, category name, subcategory name.
func (r *budgetRepository) FindByMonth(ctx context.Context, yearMonth time.Time) ([]*entity.BudgetLineWithNames, error) {
	var lineModels []model.BudgetLineModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		Where("year_month = ?", yearMonth).
		Find(&lineModels)
	if result.Error != nil {
		return nil, result.Error
	}

	lines := make([]*entity.BudgetLineWithNames, len(lineModels))
	for i := range lineModels {
		lines[i] = lineModels[i].ToEntityWithNames()
	}
	// The names live on preloaded relations, so the ordering happens here.
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.CategoryFlow != b.CategoryFlow {
			return a.CategoryFlow < b.CategoryFlow
		}
		if a.CategoryName != b.CategoryName {
			return a.CategoryName < b.CategoryName
		}
		return a.SubcategoryName < b.SubcategoryName
	})
	return lines, nil
}
