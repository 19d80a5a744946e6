// Package goal contains SMART-goal management use cases.
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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Title        string
	Specific     string
	Measurable   string
	Achievable   string
	Relevant     string
	TimeBound    time.Time
	TargetValue  decimal.Decimal
	CurrentValue decimal.Decimal
}

// CreateGoalOutput wraps the created goal.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute creates the goal with status in progress.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.ErrGoalTitleRequired
	}

	goal := entity.NewGoal(title, input.TimeBound, input.TargetValue, input.CurrentValue)
	goal.Specific = input.Specific
	goal.Measurable = input.Measurable
	goal.Achievable = input.Achievable
	goal.Relevant = input.Relevant

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
