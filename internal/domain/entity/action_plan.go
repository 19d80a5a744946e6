// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActionPlanStatus represents the state of a 5W2H action-plan entry.
type ActionPlanStatus string

const (
	ActionPlanPending    ActionPlanStatus = "pending"
	ActionPlanInProgress ActionPlanStatus = "in_progress"
	ActionPlanCompleted  ActionPlanStatus = "completed"
	ActionPlanCancelled  ActionPlanStatus = "cancelled"
)

// ActionPlan represents a 5W2H entry (What/Why/Who/When/Where/How/How-much),
// optionally linked to an activity. Entries are hard-deleted.
type ActionPlan struct {
	ID         uint
	ActivityID *uint
	What       string
	Why        string
	Who        string
	WhenDate   time.Time
	WherePlace string
	How        string
	HowMuch    decimal.Decimal
	Status     ActionPlanStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewActionPlan creates a new ActionPlan entity.
func NewActionPlan(activityID *uint, what, why, who string, whenDate time.Time, wherePlace, how string, howMuch decimal.Decimal, status ActionPlanStatus) *ActionPlan {
	now := time.Now().UTC()

	return &ActionPlan{
		ActivityID: activityID,
		What:       what,
		Why:        why,
		Who:        who,
		WhenDate:   whenDate,
		WherePlace: wherePlace,
		How:        how,
		HowMuch:    howMuch,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ActionPlanWithActivity represents an action-plan entry joined with the
// title of its linked activity.
type ActionPlanWithActivity struct {
	Plan          *ActionPlan
	ActivityTitle string
}
