package category

import (
	"context"
	"strings"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for renaming a category. The
// flow type of an existing category is immutable.
type UpdateCategoryInput struct {
	ID   uint
	Name string
}

// UpdateCategoryOutput wraps the updated category.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute renames the category.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.ErrCategoryNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrCategoryNameRequired
	}

	if name != category.Name {
		if existing, err := uc.categoryRepo.FindByFlowAndName(ctx, category.FlowType, name); err == nil && existing != nil {
			return nil, domainerror.ErrCategoryAlreadyExists
		}
	}

	category.Name = name
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
