package category

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID uint
}

// DeleteCategoryUseCase soft-deletes a category together with its
// subcategories. Historical transactions keep their references.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute deactivates the category and all of its subcategories.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := uc.categoryRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.ErrCategoryNotFound
	}

	return uc.categoryRepo.Deactivate(ctx, input.ID)
}
