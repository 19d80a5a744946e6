// Package budget contains budget planning and reconciliation use cases.
package budget

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for writing a budget line.
type UpsertBudgetInput struct {
	CategoryID    uint
	SubcategoryID *uint
	YearMonth     time.Time
	PlannedValue  decimal.Decimal
}

// UpsertBudgetOutput wraps the written budget line.
type UpsertBudgetOutput struct {
	Line *entity.BudgetLine
}

// UpsertBudgetUseCase writes a budget line with insert-or-update semantics
// on the (category, subcategory, month) key.
type UpsertBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{budgetRepo: budgetRepo, categoryRepo: categoryRepo}
}

// Execute validates and writes the budget line.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if input.CategoryID == 0 {
		return nil, domainerror.ErrBudgetCategoryRequired
	}
	if input.PlannedValue.IsNegative() {
		return nil, domainerror.ErrBudgetNegativePlanned
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.ErrCategoryNotFound
	}

	if input.SubcategoryID != nil {
		sub, err := uc.categoryRepo.FindSubcategoryByID(ctx, *input.SubcategoryID)
		if err != nil || sub.CategoryID != category.ID {
			return nil, domainerror.ErrSubcategoryNotInCategory
		}
	}

	line := entity.NewBudgetLine(input.CategoryID, input.SubcategoryID, input.YearMonth, input.PlannedValue)
	if err := uc.budgetRepo.Upsert(ctx, line); err != nil {
		return nil, err
	}

	return &UpsertBudgetOutput{Line: line}, nil
}
