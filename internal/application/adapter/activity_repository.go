// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// ActivityRepository defines the interface for activity persistence operations.
type ActivityRepository interface {
	// Create creates a new activity.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves an activity by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Activity, error)

	// FindAll retrieves all activities in hierarchy order: each parent
	// followed by its children.
	FindAll(ctx context.Context) ([]*entity.Activity, error)

	// FindDueOn retrieves non-completed activities whose end date is the
	// given day, ordered by priority rank then title.
	FindDueOn(ctx context.Context, day time.Time) ([]*entity.Activity, error)

	// Update updates an existing activity.
	Update(ctx context.Context, activity *entity.Activity) error

	// DeleteWithChildren hard-deletes an activity and every activity whose
	// parent it is.
	DeleteWithChildren(ctx context.Context, id uint) error
}

// ActionPlanRepository defines the interface for 5W2H action-plan
// persistence operations.
type ActionPlanRepository interface {
	// Create creates a new action-plan entry.
	Create(ctx context.Context, plan *entity.ActionPlan) error

	// FindByID retrieves an action-plan entry by its ID.
	FindByID(ctx context.Context, id uint) (*entity.ActionPlan, error)

	// FindAll retrieves all entries joined with their activity titles,
	// ordered by when-date then ID.
	FindAll(ctx context.Context) ([]*entity.ActionPlanWithActivity, error)

	// Update updates an existing action-plan entry.
	Update(ctx context.Context, plan *entity.ActionPlan) error

	// Delete hard-deletes an action-plan entry.
	Delete(ctx context.Context, id uint) error
}
