package activity

import (
	"context"
	"strings"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// UpdateActivityInput represents the input for updating an activity. The
// parent link is immutable after creation.
type UpdateActivityInput struct {
	ID          uint
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Priority    entity.ActivityPriority
	Status      entity.ActivityStatus
}

// UpdateActivityOutput wraps the updated activity.
type UpdateActivityOutput struct {
	Activity *entity.Activity
}

// UpdateActivityUseCase handles activity updates.
type UpdateActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewUpdateActivityUseCase creates a new UpdateActivityUseCase instance.
func NewUpdateActivityUseCase(activityRepo adapter.ActivityRepository) *UpdateActivityUseCase {
	return &UpdateActivityUseCase{activityRepo: activityRepo}
}

// Execute updates the activity's fields.
func (uc *UpdateActivityUseCase) Execute(ctx context.Context, input UpdateActivityInput) (*UpdateActivityOutput, error) {
	activity, err := uc.activityRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.ErrActivityNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.ErrActivityTitleRequired
	}

	if !isValidPriority(input.Priority) {
		return nil, domainerror.ErrInvalidActivityPriority
	}
	if !isValidStatus(input.Status) {
		return nil, domainerror.ErrInvalidActivityStatus
	}

	activity.Title = title
	activity.Description = input.Description
	activity.StartDate = input.StartDate
	activity.EndDate = input.EndDate
	activity.Priority = input.Priority
	activity.Status = input.Status
	activity.UpdatedAt = time.Now().UTC()

	if err := uc.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return &UpdateActivityOutput{Activity: activity}, nil
}
