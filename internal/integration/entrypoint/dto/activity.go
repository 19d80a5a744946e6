package dto

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// CreateActivityRequest represents the request body for activity creation.
type CreateActivityRequest struct {
	ParentID    *uint  `json:"parent_id,omitempty"`
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty" binding:"omitempty,max=1000"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=urgent_urgent important_urgent important_not_urgent not_important"`
	Status      string `json:"status,omitempty" binding:"omitempty,oneof=not_started in_progress completed"`
}

// UpdateActivityRequest represents the request body for activity update.
// The parent link is immutable after creation.
type UpdateActivityRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty" binding:"omitempty,max=1000"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=urgent_urgent important_urgent important_not_urgent not_important"`
	Status      string `json:"status" binding:"required,oneof=not_started in_progress completed"`
}

// ActivityResponse represents an activity in API responses.
type ActivityResponse struct {
	ID          uint      `json:"id"`
	ParentID    *uint     `json:"parent_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ActivityListResponse represents the response for listing activities,
// parents first with their children following.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToActivityResponse converts a domain Activity to an ActivityResponse DTO.
func ToActivityResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          activity.ID,
		ParentID:    activity.ParentID,
		Title:       activity.Title,
		Description: activity.Description,
		StartDate:   activity.StartDate.Format("2006-01-02"),
		EndDate:     activity.EndDate.Format("2006-01-02"),
		Priority:    string(activity.Priority),
		Status:      string(activity.Status),
		CreatedAt:   activity.CreatedAt,
		UpdatedAt:   activity.UpdatedAt,
	}
}
