package dto

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// CreateActionPlanRequest represents the request body for creating a 5W2H
// entry. "What" is the only required narrative field.
type CreateActionPlanRequest struct {
	ActivityID *uint   `json:"activity_id,omitempty"`
	What       string  `json:"what" binding:"required,min=1,max=1000"`
	Why        string  `json:"why,omitempty" binding:"omitempty,max=1000"`
	Who        string  `json:"who,omitempty" binding:"omitempty,max=255"`
	When       string  `json:"when" binding:"required"`
	Where      string  `json:"where,omitempty" binding:"omitempty,max=255"`
	How        string  `json:"how,omitempty" binding:"omitempty,max=1000"`
	HowMuch    float64 `json:"how_much,omitempty"`
	Status     string  `json:"status,omitempty" binding:"omitempty,oneof=pending in_progress completed cancelled"`
}

// UpdateActionPlanRequest represents the request body for updating a 5W2H entry.
type UpdateActionPlanRequest struct {
	ActivityID *uint   `json:"activity_id,omitempty"`
	What       string  `json:"what" binding:"required,min=1,max=1000"`
	Why        string  `json:"why,omitempty" binding:"omitempty,max=1000"`
	Who        string  `json:"who,omitempty" binding:"omitempty,max=255"`
	When       string  `json:"when" binding:"required"`
	Where      string  `json:"where,omitempty" binding:"omitempty,max=255"`
	How        string  `json:"how,omitempty" binding:"omitempty,max=1000"`
	HowMuch    float64 `json:"how_much,omitempty"`
	Status     string  `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}

// ActionPlanResponse represents a 5W2H entry in API responses.
type ActionPlanResponse struct {
	ID            uint      `json:"id"`
	ActivityID    *uint     `json:"activity_id,omitempty"`
	ActivityTitle string    `json:"activity_title,omitempty"`
	What          string    `json:"what"`
	Why           string    `json:"why"`
	Who           string    `json:"who"`
	When          string    `json:"when"`
	Where         string    `json:"where"`
	How           string    `json:"how"`
	HowMuch       string    `json:"how_much"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ActionPlanListResponse represents the response for listing 5W2H entries.
type ActionPlanListResponse struct {
	Plans []ActionPlanResponse `json:"plans"`
}

// ToActionPlanResponse converts a domain ActionPlan to an ActionPlanResponse DTO.
func ToActionPlanResponse(plan *entity.ActionPlan) ActionPlanResponse {
	return ActionPlanResponse{
		ID:         plan.ID,
		ActivityID: plan.ActivityID,
		What:       plan.What,
		Why:        plan.Why,
		Who:        plan.Who,
		When:       plan.WhenDate.Format("2006-01-02"),
		Where:      plan.WherePlace,
		How:        plan.How,
		HowMuch:    plan.HowMuch.String(),
		Status:     string(plan.Status),
		CreatedAt:  plan.CreatedAt,
		UpdatedAt:  plan.UpdatedAt,
	}
}

// ToActionPlanResponseWithActivity converts a 5W2H entry joined with its
// activity title to an ActionPlanResponse DTO.
func ToActionPlanResponseWithActivity(plan *entity.ActionPlanWithActivity) ActionPlanResponse {
	response := ToActionPlanResponse(plan.Plan)
	response.ActivityTitle = plan.ActivityTitle
	return response
}
