// Package actionplan contains 5W2H action-plan use cases.
package actionplan

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// CreateActionPlanInput represents the input for creating a 5W2H entry.
type CreateActionPlanInput struct {
	ActivityID *uint
	What       string
	Why        string
	Who        string
	WhenDate   time.Time
	WherePlace string
	How        string
	HowMuch    decimal.Decimal
	Status     entity.ActionPlanStatus
}

// CreateActionPlanOutput wraps the created entry.
type CreateActionPlanOutput struct {
	Plan *entity.ActionPlan
}

// CreateActionPlanUseCase handles action-plan creation.
type CreateActionPlanUseCase struct {
	actionPlanRepo adapter.ActionPlanRepository
	activityRepo   adapter.ActivityRepository
}

// NewCreateActionPlanUseCase creates a new CreateActionPlanUseCase instance.
func NewCreateActionPlanUseCase(actionPlanRepo adapter.ActionPlanRepository, activityRepo adapter.ActivityRepository) *CreateActionPlanUseCase {
	return &CreateActionPlanUseCase{actionPlanRepo: actionPlanRepo, activityRepo: activityRepo}
}

// Execute validates and creates the entry. "What" is the only required
// narrative field.
func (uc *CreateActionPlanUseCase) Execute(ctx context.Context, input CreateActionPlanInput) (*CreateActionPlanOutput, error) {
	what := strings.TrimSpace(input.What)
	if what == "" {
		return nil, domainerror.ErrActionPlanWhatRequired
	}

	status := input.Status
	if status == "" {
		status = entity.ActionPlanPending
	}
	if !isValidActionPlanStatus(status) {
		return nil, domainerror.ErrInvalidActionPlanStatus
	}

	if input.ActivityID != nil {
		if _, err := uc.activityRepo.FindByID(ctx, *input.ActivityID); err != nil {
			return nil, domainerror.ErrActivityNotFound
		}
	}

	plan := entity.NewActionPlan(input.ActivityID, what, input.Why, input.Who, input.WhenDate, input.WherePlace, input.How, input.HowMuch, status)
	if err := uc.actionPlanRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return &CreateActionPlanOutput{Plan: plan}, nil
}

func isValidActionPlanStatus(status entity.ActionPlanStatus) bool {
	switch status {
	case entity.ActionPlanPending, entity.ActionPlanInProgress,
		entity.ActionPlanCompleted, entity.ActionPlanCancelled:
		return true
	}
	return false
}
