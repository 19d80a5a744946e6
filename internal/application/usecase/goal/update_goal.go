package goal

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for updating a goal.
type UpdateGoalInput struct {
	ID           uint
	Title        string
	Specific     string
	Measurable   string
	Achievable   string
	Relevant     string
	TimeBound    time.Time
	TargetValue  decimal.Decimal
	CurrentValue decimal.Decimal
	Status       entity.GoalStatus
}

// UpdateGoalOutput wraps the updated goal.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal updates, including status transitions.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

// Execute updates the goal's fields.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.ErrGoalNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.ErrGoalTitleRequired
	}

	if !isValidGoalStatus(input.Status) {
		return nil, domainerror.ErrInvalidGoalStatus
	}

	goal.Title = title
	goal.Specific = input.Specific
	goal.Measurable = input.Measurable
	goal.Achievable = input.Achievable
	goal.Relevant = input.Relevant
	goal.TimeBound = input.TimeBound
	goal.TargetValue = input.TargetValue
	goal.CurrentValue = input.CurrentValue
	goal.Status = input.Status
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

func isValidGoalStatus(status entity.GoalStatus) bool {
	return status == entity.GoalStatusInProgress ||
		status == entity.GoalStatusCompleted ||
		status == entity.GoalStatusCancelled
}
