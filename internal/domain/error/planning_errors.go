// Package error defines domain-specific errors for the BK Finance backend.
package error

import "errors"

// Budget errors.
var (
	// ErrBudgetNegativePlanned is returned when a budget line has a negative planned value.
	ErrBudgetNegativePlanned = errors.New("planned value must not be negative")

	// ErrBudgetCategoryRequired is returned when a budget line has no category.
	ErrBudgetCategoryRequired = errors.New("budget category is required")
)

// Goal errors.
var (
	// ErrGoalNotFound is returned when a goal is not found.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalTitleRequired is returned when a goal is created without a title.
	ErrGoalTitleRequired = errors.New("goal title is required")

	// ErrInvalidGoalStatus is returned when the goal status is unknown.
	ErrInvalidGoalStatus = errors.New("invalid goal status")
)

// Activity errors.
var (
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityTitleRequired is returned when an activity is created without a title.
	ErrActivityTitleRequired = errors.New("activity title is required")

	// ErrInvalidActivityPriority is returned when the priority is not one of the four tiers.
	ErrInvalidActivityPriority = errors.New("invalid activity priority")

	// ErrInvalidActivityStatus is returned when the activity status is unknown.
	ErrInvalidActivityStatus = errors.New("invalid activity status")

	// ErrParentActivityNotFound is returned when the referenced parent activity does not exist.
	ErrParentActivityNotFound = errors.New("parent activity not found")

	// ErrNestedParentActivity is returned when the parent is itself a child activity.
	ErrNestedParentActivity = errors.New("activities nest only one level deep")
)

// Action-plan errors.
var (
	// ErrActionPlanNotFound is returned when an action-plan entry is not found.
	ErrActionPlanNotFound = errors.New("action plan not found")

	// ErrActionPlanWhatRequired is returned when the "what" field is empty.
	ErrActionPlanWhatRequired = errors.New("action plan 'what' is required")

	// ErrInvalidActionPlanStatus is returned when the action-plan status is unknown.
	ErrInvalidActionPlanStatus = errors.New("invalid action plan status")
)
