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

// UpdateActionPlanInput represents the input for updating a 5W2H entry.
type UpdateActionPlanInput struct {
	ID         uint
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

// UpdateActionPlanOutput wraps the updated entry.
type UpdateActionPlanOutput struct {
	Plan *entity.ActionPlan
}

// UpdateActionPlanUseCase handles action-plan updates.
type UpdateActionPlanUseCase struct {
	actionPlanRepo adapter.ActionPlanRepository
	activityRepo   adapter.ActivityRepository
}

// NewUpdateActionPlanUseCase creates a new UpdateActionPlanUseCase instance.
func NewUpdateActionPlanUseCase(actionPlanRepo adapter.ActionPlanRepository, activityRepo adapter.ActivityRepository) *UpdateActionPlanUseCase {
	return &UpdateActionPlanUseCase{actionPlanRepo: actionPlanRepo, activityRepo: activityRepo}
}

// Execute updates the entry's fields.
func (uc *UpdateActionPlanUseCase) Execute(ctx context.Context, input UpdateActionPlanInput) (*UpdateActionPlanOutput, error) {
	plan, err := uc.actionPlanRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.ErrActionPlanNotFound
	}

	what := strings.TrimSpace(input.What)
	if what == "" {
		return nil, domainerror.ErrActionPlanWhatRequired
	}

	if !isValidActionPlanStatus(input.Status) {
		return nil, domainerror.ErrInvalidActionPlanStatus
	}

	if input.ActivityID != nil {
		if _, err := uc.activityRepo.FindByID(ctx, *input.ActivityID); err != nil {
			return nil, domainerror.ErrActivityNotFound
		}
	}

	plan.ActivityID = input.ActivityID
	plan.What = what
	plan.Why = input.Why
	plan.Who = input.Who
	plan.WhenDate = input.WhenDate
	plan.WherePlace = input.WherePlace
	plan.How = input.How
	plan.HowMuch = input.HowMuch
	plan.Status = input.Status
	plan.UpdatedAt = time.Now().UTC()

	if err := uc.actionPlanRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	return &UpdateActionPlanOutput{Plan: plan}, nil
}
