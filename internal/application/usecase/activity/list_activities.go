package activity

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// ListActivitiesOutput holds the activities in hierarchy order: each parent
// followed by its children, parents sorted by priority rank then title.
type ListActivitiesOutput struct {
	Activities []*entity.Activity
}

// ListActivitiesUseCase lists the activity hierarchy.
type ListActivitiesUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewListActivitiesUseCase creates a new ListActivitiesUseCase instance.
func NewListActivitiesUseCase(activityRepo adapter.ActivityRepository) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{activityRepo: activityRepo}
}

// Execute retrieves the activities.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context) (*ListActivitiesOutput, error) {
	activities, err := uc.activityRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListActivitiesOutput{Activities: activities}, nil
}
