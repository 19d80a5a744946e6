package persistence

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{db: db}
}

// Create creates a new activity in the database.
func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityModel := model.ActivityFromEntity(activity)
	if err := r.db.WithContext(ctx).Create(activityModel).Error; err != nil {
		return err
	}
	activity.ID = activityModel.ID
	return nil
}

// FindByID retrieves an activity by its ID.
func (r *activityRepository) FindByID(ctx context.Context, id uint) (*entity.Activity, error) {
	var activityModel model.ActivityModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&activityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActivityNotFound
		}
		return nil, result.Error
	}
	return activityModel.ToEntity(), nil
}

// FindAll retrieves the activities in hierarchy order: parents sorted by
// priority rank then title, each followed by its children in the same order.
func (r *activityRepository) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	var activityModels []model.ActivityModel
	result := r.db.WithContext(ctx).Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	var parents []*entity.Activity
	children := make(map[uint][]*entity.Activity)
	for i := range activityModels {
		activity := activityModels[i].ToEntity()
		if activity.ParentID == nil {
			parents = append(parents, activity)
			continue
		}
		children[*activity.ParentID] = append(children[*activity.ParentID], activity)
	}

	byPriority := func(activities []*entity.Activity) {
		sort.Slice(activities, func(i, j int) bool {
			a, b := activities[i], activities[j]
			if a.Priority.Rank() != b.Priority.Rank() {
				return a.Priority.Rank() < b.Priority.Rank()
			}
			return a.Title < b.Title
		})
	}

	byPriority(parents)
	ordered := make([]*entity.Activity, 0, len(activityModels))
	for _, parent := range parents {
		ordered = append(ordered, parent)
		kids := children[parent.ID]
		byPriority(kids)
		ordered = append(ordered, kids...)
	}
	return ordered, nil
}

// FindDueOn retrieves non-completed activities whose end date falls on the
// day, ordered by priority rank then title.
func (r *activityRepository) FindDueOn(ctx context.Context, day time.Time) ([]*entity.Activity, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var activityModels []model.ActivityModel
	result := r.db.WithContext(ctx).
		Where("end_date >= ? AND end_date < ? AND status <> ?", dayStart, dayEnd, string(entity.ActivityCompleted)).
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]*entity.Activity, len(activityModels))
	for i := range activityModels {
		activities[i] = activityModels[i].ToEntity()
	}
	sort.Slice(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.Title < b.Title
	})
	return activities, nil
}

// Update updates an existing activity.
func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityModel := model.ActivityFromEntity(activity)
	return r.db.WithContext(ctx).Save(activityModel).Error
}

// DeleteWithChildren hard-deletes an activity and its children in one
// transaction.
func (r *activityRepository) DeleteWithChildren(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("id = ? OR parent_id = ?", id, id).
			Delete(&model.ActivityModel{}).
			Error
	})
}

// actionPlanRepository implements the adapter.ActionPlanRepository interface.
type actionPlanRepository struct {
	db *gorm.DB
}

// NewActionPlanRepository creates a new action-plan repository instance.
func NewActionPlanRepository(db *gorm.DB) adapter.ActionPlanRepository {
	return &actionPlanRepository{db: db}
}

// Create creates a new action-plan entry in the database.
func (r *actionPlanRepository) Create(ctx context.Context, plan *entity.ActionPlan) error {
	planModel := model.ActionPlanFromEntity(plan)
	if err := r.db.WithContext(ctx).Create(planModel).Error; err != nil {
		return err
	}
	plan.ID = planModel.ID
	return nil
}

// FindByID retrieves an action-plan entry by its ID.
func (r *actionPlanRepository) FindByID(ctx context.Context, id uint) (*entity.ActionPlan, error) {
	var planModel model.ActionPlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActionPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindAll retrieves all entries with their activity titles, ordered by
// when-date then ID.
func (r *actionPlanRepository) FindAll(ctx context.Context) ([]*entity.ActionPlanWithActivity, error) {
	var planModels []model.ActionPlanModel
	result := r.db.WithContext(ctx).
		Preload("Activity").
		Order("when_date ASC, id ASC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.ActionPlanWithActivity, len(planModels))
	for i := range planModels {
		plans[i] = planModels[i].ToEntityWithActivity()
	}
	return plans, nil
}

// Update updates an existing action-plan entry.
func (r *actionPlanRepository) Update(ctx context.Context, plan *entity.ActionPlan) error {
	planModel := model.ActionPlanFromEntity(plan)
	return r.db.WithContext(ctx).Save(planModel).Error
}

// Delete hard-deletes an action-plan entry.
func (r *actionPlanRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ActionPlanModel{}, id).Error
}
