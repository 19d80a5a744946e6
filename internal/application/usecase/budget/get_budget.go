package budget

import (
	"context"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// GetBudgetInput selects the month to list.
type GetBudgetInput struct {
	YearMonth time.Time
}

// GetBudgetOutput holds the budget lines of the month.
type GetBudgetOutput struct {
	Lines []*entity.BudgetLineWithNames
}

// GetBudgetUseCase lists the budget lines of a month with their category
// and subcategory names.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute retrieves the month's budget lines.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	month := time.Date(input.YearMonth.Year(), input.YearMonth.Month(), 1, 0, 0, 0, 0, time.UTC)

	lines, err := uc.budgetRepo.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	return &GetBudgetOutput{Lines: lines}, nil
}
