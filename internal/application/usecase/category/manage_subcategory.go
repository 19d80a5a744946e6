package category

import (
	"context"
	"strings"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// AddSubcategoryInput represents the input for adding a subcategory.
type AddSubcategoryInput struct {
	CategoryID uint
	Name       string
}

// AddSubcategoryOutput wraps the created subcategory.
type AddSubcategoryOutput struct {
	Subcategory *entity.Subcategory
}

// AddSubcategoryUseCase adds a subcategory under an existing category.
type AddSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewAddSubcategoryUseCase creates a new AddSubcategoryUseCase instance.
func NewAddSubcategoryUseCase(categoryRepo adapter.CategoryRepository) *AddSubcategoryUseCase {
	return &AddSubcategoryUseCase{categoryRepo: categoryRepo}
}

// Execute creates the subcategory. Active subcategory names are unique
// within their category.
func (uc *AddSubcategoryUseCase) Execute(ctx context.Context, input AddSubcategoryInput) (*AddSubcategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrCategoryNameRequired
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.ErrCategoryNotFound
	}

	siblings, err := uc.categoryRepo.FindActiveSubcategories(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	for _, sibling := range siblings {
		if sibling.Name == name {
			return nil, domainerror.ErrSubcategoryAlreadyExists
		}
	}

	subcategory := entity.NewSubcategory(input.CategoryID, name)
	if err := uc.categoryRepo.CreateSubcategory(ctx, subcategory); err != nil {
		return nil, err
	}

	return &AddSubcategoryOutput{Subcategory: subcategory}, nil
}

// UpdateSubcategoryInput represents the input for renaming a subcategory.
type UpdateSubcategoryInput struct {
	ID   uint
	Name string
}

// UpdateSubcategoryOutput wraps the updated subcategory.
type UpdateSubcategoryOutput struct {
	Subcategory *entity.Subcategory
}

// UpdateSubcategoryUseCase handles subcategory renames.
type UpdateSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateSubcategoryUseCase creates a new UpdateSubcategoryUseCase instance.
func NewUpdateSubcategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateSubcategoryUseCase {
	return &UpdateSubcategoryUseCase{categoryRepo: categoryRepo}
}

// Execute renames the subcategory.
func (uc *UpdateSubcategoryUseCase) Execute(ctx context.Context, input UpdateSubcategoryInput) (*UpdateSubcategoryOutput, error) {
	subcategory, err := uc.categoryRepo.FindSubcategoryByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.ErrSubcategoryNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrCategoryNameRequired
	}

	subcategory.Name = name
	subcategory.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.UpdateSubcategory(ctx, subcategory); err != nil {
		return nil, err
	}

	return &UpdateSubcategoryOutput{Subcategory: subcategory}, nil
}

// DeleteSubcategoryInput represents the input for subcategory deletion.
type DeleteSubcategoryInput struct {
	ID uint
}

// DeleteSubcategoryUseCase soft-deletes a subcategory.
type DeleteSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteSubcategoryUseCase creates a new DeleteSubcategoryUseCase instance.
func NewDeleteSubcategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteSubcategoryUseCase {
	return &DeleteSubcategoryUseCase{categoryRepo: categoryRepo}
}

// Execute deactivates the subcategory.
func (uc *DeleteSubcategoryUseCase) Execute(ctx context.Context, input DeleteSubcategoryInput) error {
	if _, err := uc.categoryRepo.FindSubcategoryByID(ctx, input.ID); err != nil {
		return domainerror.ErrSubcategoryNotFound
	}

	return uc.categoryRepo.DeactivateSubcategory(ctx, input.ID)
}
