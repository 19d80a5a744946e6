package category

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// ListCategoriesInput represents the optional flow-type filter. Categories
// marked "both" are always included.
type ListCategoriesInput struct {
	FlowType *entity.FlowType
}

// ListCategoriesOutput holds the active categories with their active
// subcategories.
type ListCategoriesOutput struct {
	Categories []*entity.CategoryWithSubcategories
}

// ListCategoriesUseCase lists the active category tree, optionally
// restricted to one flow direction.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute retrieves the active categories with their subcategories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	tree, err := uc.categoryRepo.FindActiveWithSubcategories(ctx)
	if err != nil {
		return nil, err
	}

	if input.FlowType == nil {
		return &ListCategoriesOutput{Categories: tree}, nil
	}

	filtered := make([]*entity.CategoryWithSubcategories, 0, len(tree))
	for _, node := range tree {
		if node.Category.Matches(*input.FlowType) {
			filtered = append(filtered, node)
		}
	}

	return &ListCategoriesOutput{Categories: filtered}, nil
}
