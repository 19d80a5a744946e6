package actionplan

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// DeleteActionPlanInput represents the input for action-plan deletion.
type DeleteActionPlanInput struct {
	ID uint
}

// DeleteActionPlanUseCase hard-deletes a 5W2H entry.
type DeleteActionPlanUseCase struct {
	actionPlanRepo adapter.ActionPlanRepository
}

// NewDeleteActionPlanUseCase creates a new DeleteActionPlanUseCase instance.
func NewDeleteActionPlanUseCase(actionPlanRepo adapter.ActionPlanRepository) *DeleteActionPlanUseCase {
	return &DeleteActionPlanUseCase{actionPlanRepo: actionPlanRepo}
}

// Execute deletes the entry.
func (uc *DeleteActionPlanUseCase) Execute(ctx context.Context, input DeleteActionPlanInput) error {
	if _, err := uc.actionPlanRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.ErrActionPlanNotFound
	}

	return uc.actionPlanRepo.Delete(ctx, input.ID)
}
