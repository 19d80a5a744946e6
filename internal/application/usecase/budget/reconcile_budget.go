package budget

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// ReconcileBudgetInput selects the month to reconcile.
type ReconcileBudgetInput struct {
	YearMonth time.Time
}

// ReconcileBudgetOutput holds one comparison row per active category.
type ReconcileBudgetOutput struct {
	Rows []*entity.BudgetComparison
}

// ReconcileBudgetUseCase compares planned budgets against actuals for a
// month. The comparison is category-level: only budget lines without a
// subcategory count as planned, and actuals are the paid transactions of
// the category regardless of subcategory. Subcategory budget lines can be
// written but are intentionally invisible here.
type ReconcileBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewReconcileBudgetUseCase creates a new ReconcileBudgetUseCase instance.
func NewReconcileBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *ReconcileBudgetUseCase {
	return &ReconcileBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute builds one row per active category, with zeros where the month
// has no budget line or no paid transactions.
func (uc *ReconcileBudgetUseCase) Execute(ctx context.Context, input ReconcileBudgetInput) (*ReconcileBudgetOutput, error) {
	month := time.Date(input.YearMonth.Year(), input.YearMonth.Month(), 1, 0, 0, 0, 0, time.UTC)

	categories, err := uc.categoryRepo.FindActive(ctx, nil)
	if err != nil {
		return nil, err
	}

	lines, err := uc.budgetRepo.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	planned := make(map[uint]decimal.Decimal, len(lines))
	for _, line := range lines {
		if line.Line.SubcategoryID != nil {
			continue
		}
		planned[line.Line.CategoryID] = line.Line.PlannedValue
	}

	totals, err := uc.transactionRepo.SumPaidByCategory(ctx, month)
	if err != nil {
		return nil, err
	}

	actual := make(map[uint]decimal.Decimal, len(totals))
	for _, t := range totals {
		actual[t.CategoryID] = t.Total
	}

	rows := make([]*entity.BudgetComparison, 0, len(categories))
	for _, category := range categories {
		row := &entity.BudgetComparison{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			FlowType:     category.FlowType,
			Planned:      decimal.Zero,
			Actual:       decimal.Zero,
		}
		if v, ok := planned[category.ID]; ok {
			row.Planned = v
		}
		if v, ok := actual[category.ID]; ok {
			row.Actual = v
		}
		rows = append(rows, row)
	}

	return &ReconcileBudgetOutput{Rows: rows}, nil
}
