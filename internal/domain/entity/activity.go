// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// ActivityPriority represents one of the four Eisenhower-style priority tiers.
type ActivityPriority string

const (
	PriorityUrgentUrgent       ActivityPriority = "urgent_urgent"
	PriorityImportantUrgent    ActivityPriority = "important_urgent"
	PriorityImportantNotUrgent ActivityPriority = "important_not_urgent"
	PriorityNotImportant       ActivityPriority = "not_important"
)

// Rank returns the sort order of a priority, most urgent first. Unknown
// priorities sort last.
func (p ActivityPriority) Rank() int {
	switch p {
	case PriorityUrgentUrgent:
		return 1
	case PriorityImportantUrgent:
		return 2
	case PriorityImportantNotUrgent:
		return 3
	case PriorityNotImportant:
		return 4
	default:
		return 5
	}
}

// ActivityStatus represents the progress state of an activity.
type ActivityStatus string

const (
	ActivityNotStarted ActivityStatus = "not_started"
	ActivityInProgress ActivityStatus = "in_progress"
	ActivityCompleted  ActivityStatus = "completed"
)

// Activity represents a task, optionally nested one level under a parent
// activity. Deleting an activity hard-deletes its children as well.
type Activity struct {
	ID          uint
	ParentID    *uint
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Priority    ActivityPriority
	Status      ActivityStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewActivity creates a new Activity entity.
func NewActivity(parentID *uint, title, description string, startDate, endDate time.Time, priority ActivityPriority, status ActivityStatus) *Activity {
	now := time.Now().UTC()

	return &Activity{
		ParentID:    parentID,
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Priority:    priority,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
