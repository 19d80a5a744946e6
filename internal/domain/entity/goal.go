// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a SMART goal.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusCancelled  GoalStatus = "cancelled"
)

// Goal represents a SMART goal: the Specific/Measurable/Achievable/Relevant
// narrative fields plus a Time-bound deadline and target/current values.
// Goals are hard-deleted.
type Goal struct {
	ID           uint
	Title        string
	Specific     string
	Measurable   string
	Achievable   string
	Relevant     string
	TimeBound    time.Time
	TargetValue  decimal.Decimal
	CurrentValue decimal.Decimal
	Status       GoalStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a new Goal entity with status in progress.
func NewGoal(title string, timeBound time.Time, targetValue, currentValue decimal.Decimal) *Goal {
	now := time.Now().UTC()

	return &Goal{
		Title:        title,
		TimeBound:    timeBound,
		TargetValue:  targetValue,
		CurrentValue: currentValue,
		Status:       GoalStatusInProgress,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
