package dto

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	FlowType           string `json:"flow_type" binding:"required,oneof=inflow outflow both"`
	Name               string `json:"name" binding:"required,min=1,max=255"`
	InitialSubcategory string `json:"initial_subcategory,omitempty" binding:"omitempty,min=1,max=255"`
}

// UpdateCategoryRequest represents the request body for renaming a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// SubcategoryRequest represents the request body for creating or renaming a
// subcategory.
type SubcategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// SubcategoryResponse represents a subcategory in API responses.
type SubcategoryResponse struct {
	ID         uint      `json:"id"`
	CategoryID uint      `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID            uint                  `json:"id"`
	FlowType      string                `json:"flow_type"`
	Name          string                `json:"name"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CategoryListResponse represents the response for listing the category tree.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToSubcategoryResponse converts a domain Subcategory to a SubcategoryResponse DTO.
func ToSubcategoryResponse(sub *entity.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:         sub.ID,
		CategoryID: sub.CategoryID,
		Name:       sub.Name,
		CreatedAt:  sub.CreatedAt,
		UpdatedAt:  sub.UpdatedAt,
	}
}

// ToCategoryResponse converts a domain Category to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category, subcategories []*entity.Subcategory) CategoryResponse {
	subs := make([]SubcategoryResponse, 0, len(subcategories))
	for _, sub := range subcategories {
		subs = append(subs, ToSubcategoryResponse(sub))
	}

	return CategoryResponse{
		ID:            category.ID,
		FlowType:      string(category.FlowType),
		Name:          category.Name,
		Subcategories: subs,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}
