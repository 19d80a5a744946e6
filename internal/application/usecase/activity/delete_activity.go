package activity

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// DeleteActivityInput represents the input for activity deletion.
type DeleteActivityInput struct {
	ID uint
}

// DeleteActivityUseCase hard-deletes an activity together with its
// children.
type DeleteActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewDeleteActivityUseCase creates a new DeleteActivityUseCase instance.
func NewDeleteActivityUseCase(activityRepo adapter.ActivityRepository) *DeleteActivityUseCase {
	return &DeleteActivityUseCase{activityRepo: activityRepo}
}

// Execute deletes the activity and every child pointing at it.
func (uc *DeleteActivityUseCase) Execute(ctx context.Context, input DeleteActivityInput) error {
	if _, err := uc.activityRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.ErrActivityNotFound
	}

	return uc.activityRepo.DeleteWithChildren(ctx, input.ID)
}
