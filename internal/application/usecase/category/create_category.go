// Package category contains category and subcategory management use cases.
package category

import (
	"context"
	"strings"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation. An
// optional initial subcategory can be created in the same call.
type CreateCategoryInput struct {
	FlowType           entity.FlowType
	Name               string
	InitialSubcategory string
}

// CreateCategoryOutput wraps the created category and, when requested, its
// initial subcategory.
type CreateCategoryOutput struct {
	Category    *entity.Category
	Subcategory *entity.Subcategory
}

// CreateCategoryUseCase handles category creation.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute creates the category. Active category names are unique within a
// flow type.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrCategoryNameRequired
	}

	if input.FlowType != entity.FlowTypeInflow &&
		input.FlowType != entity.FlowTypeOutflow &&
		input.FlowType != entity.FlowTypeBoth {
		return nil, domainerror.ErrInvalidFlowType
	}

	if existing, err := uc.categoryRepo.FindByFlowAndName(ctx, input.FlowType, name); err == nil && existing != nil {
		return nil, domainerror.ErrCategoryAlreadyExists
	}

	category := entity.NewCategory(input.FlowType, name)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	output := &CreateCategoryOutput{Category: category}

	if subName := strings.TrimSpace(input.InitialSubcategory); subName != "" {
		subcategory := entity.NewSubcategory(category.ID, subName)
		if err := uc.categoryRepo.CreateSubcategory(ctx, subcategory); err != nil {
			return nil, err
		}
		output.Subcategory = subcategory
	}

	return output, nil
}
