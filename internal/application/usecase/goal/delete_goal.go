package goal

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID uint
}

// DeleteGoalUseCase hard-deletes a goal.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goalRepo: goalRepo}
}

// Execute deletes the goal.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if _, err := uc.goalRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.ErrGoalNotFound
	}

	return uc.goalRepo.Delete(ctx, input.ID)
}
