package dto

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=255"`
	Specific     string  `json:"specific,omitempty" binding:"omitempty,max=1000"`
	Measurable   string  `json:"measurable,omitempty" binding:"omitempty,max=1000"`
	Achievable   string  `json:"achievable,omitempty" binding:"omitempty,max=1000"`
	Relevant     string  `json:"relevant,omitempty" binding:"omitempty,max=1000"`
	TimeBound    string  `json:"time_bound" binding:"required"`
	TargetValue  float64 `json:"target_value,omitempty"`
	CurrentValue float64 `json:"current_value,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=255"`
	Specific     string  `json:"specific,omitempty" binding:"omitempty,max=1000"`
	Measurable   string  `json:"measurable,omitempty" binding:"omitempty,max=1000"`
	Achievable   string  `json:"achievable,omitempty" binding:"omitempty,max=1000"`
	Relevant     string  `json:"relevant,omitempty" binding:"omitempty,max=1000"`
	TimeBound    string  `json:"time_bound" binding:"required"`
	TargetValue  float64 `json:"target_value,omitempty"`
	CurrentValue float64 `json:"current_value,omitempty"`
	Status       string  `json:"status" binding:"required,oneof=in_progress completed cancelled"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Specific     string    `json:"specific"`
	Measurable   string    `json:"measurable"`
	Achievable   string    `json:"achievable"`
	Relevant     string    `json:"relevant"`
	TimeBound    string    `json:"time_bound"`
	TargetValue  string    `json:"target_value"`
	CurrentValue string    `json:"current_value"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:           goal.ID,
		Title:        goal.Title,
		Specific:     goal.Specific,
		Measurable:   goal.Measurable,
		Achievable:   goal.Achievable,
		Relevant:     goal.Relevant,
		TimeBound:    goal.TimeBound.Format("2006-01-02"),
		TargetValue:  goal.TargetValue.String(),
		CurrentValue: goal.CurrentValue.String(),
		Status:       string(goal.Status),
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
