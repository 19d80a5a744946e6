// Package activity contains activity (task) management use cases.
package activity

import (
	"context"
	"strings"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// CreateActivityInput represents the input for activity creation.
type CreateActivityInput struct {
	ParentID    *uint
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Priority    entity.ActivityPriority
	Status      entity.ActivityStatus
}

// CreateActivityOutput wraps the created activity.
type CreateActivityOutput struct {
	Activity *entity.Activity
}

// CreateActivityUseCase handles activity creation. Activities nest one
// level deep: a child can never be a parent.
type CreateActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewCreateActivityUseCase creates a new CreateActivityUseCase instance.
func NewCreateActivityUseCase(activityRepo adapter.ActivityRepository) *CreateActivityUseCase {
	return &CreateActivityUseCase{activityRepo: activityRepo}
}

// Execute validates and creates the activity.
func (uc *CreateActivityUseCase) Execute(ctx context.Context, input CreateActivityInput) (*CreateActivityOutput, error) {
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

	if input.ParentID != nil {
		parent, err := uc.activityRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, domainerror.ErrParentActivityNotFound
		}
		if parent.ParentID != nil {
			return nil, domainerror.ErrNestedParentActivity
		}
	}

	activity := entity.NewActivity(input.ParentID, title, input.Description, input.StartDate, input.EndDate, input.Priority, input.Status)
	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return &CreateActivityOutput{Activity: activity}, nil
}

func isValidPriority(p entity.ActivityPriority) bool {
	switch p {
	case entity.PriorityUrgentUrgent, entity.PriorityImportantUrgent,
		entity.PriorityImportantNotUrgent, entity.PriorityNotImportant:
		return true
	}
	return false
}

func isValidStatus(s entity.ActivityStatus) bool {
	switch s {
	case entity.ActivityNotStarted, entity.ActivityInProgress, entity.ActivityCompleted:
		return true
	}
	return false
}
