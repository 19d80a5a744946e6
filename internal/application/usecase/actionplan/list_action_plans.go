package actionplan

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// ListActionPlansOutput holds the entries with their linked activity titles.
type ListActionPlansOutput struct {
	Plans []*entity.ActionPlanWithActivity
}

// ListActionPlansUseCase lists all 5W2H entries ordered by when-date.
type ListActionPlansUseCase struct {
	actionPlanRepo adapter.ActionPlanRepository
}

// NewListActionPlansUseCase creates a new ListActionPlansUseCase instance.
func NewListActionPlansUseCase(actionPlanRepo adapter.ActionPlanRepository) *ListActionPlansUseCase {
	return &ListActionPlansUseCase{actionPlanRepo: actionPlanRepo}
}

// Execute retrieves the entries.
func (uc *ListActionPlansUseCase) Execute(ctx context.Context) (*ListActionPlansOutput, error) {
	plans, err := uc.actionPlanRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListActionPlansOutput{Plans: plans}, nil
}
