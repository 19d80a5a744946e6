// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category and subcategory
// persistence operations.
type CategoryRepository interface {
	// Create creates a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// FindByFlowAndName retrieves an active category by its unique
	// (flow type, name) pair.
	FindByFlowAndName(ctx context.Context, flowType entity.FlowType, name string) (*entity.Category, error)

	// FindActive retrieves active categories. When flowType is non-nil the
	// result is restricted to that flow plus "both" categories.
	FindActive(ctx context.Context, flowType *entity.FlowType) ([]*entity.Category, error)

	// FindActiveWithSubcategories retrieves active categories with their
	// active subcategories, in taxonomy order (flow type, then name).
	FindActiveWithSubcategories(ctx context.Context) ([]*entity.CategoryWithSubcategories, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Deactivate soft-deletes a category and all of its subcategories.
	Deactivate(ctx context.Context, id uint) error

	// CreateSubcategory creates a new subcategory under a category.
	CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error

	// FindSubcategoryByID retrieves a subcategory by its ID.
	FindSubcategoryByID(ctx context.Context, id uint) (*entity.Subcategory, error)

	// FindActiveSubcategories retrieves the active subcategories of a category
	// ordered by name.
	FindActiveSubcategories(ctx context.Context, categoryID uint) ([]*entity.Subcategory, error)

	// UpdateSubcategory updates an existing subcategory.
	UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error

	// DeactivateSubcategory soft-deletes a subcategory.
	DeactivateSubcategory(ctx context.Context, id uint) error
}
