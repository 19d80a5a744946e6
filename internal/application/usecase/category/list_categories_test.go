package category

import (
	"context"
	"errors"
	"testing"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

type stubCategoryRepo struct {
	adapter.CategoryRepository
	tree       []*entity.CategoryWithSubcategories
	byFlowName map[string]*entity.Category
	created    []*entity.Category
	createdSub []*entity.Subcategory
}

func (s *stubCategoryRepo) FindActiveWithSubcategories(_ context.Context) ([]*entity.CategoryWithSubcategories, error) {
	return s.tree, nil
}

func (s *stubCategoryRepo) FindByFlowAndName(_ context.Context, flowType entity.FlowType, name string) (*entity.Category, error) {
	if c, ok := s.byFlowName[string(flowType)+"/"+name]; ok {
		return c, nil
	}
	return nil, errors.New("not found")
}

func (s *stubCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = uint(len(s.created) + 1)
	s.created = append(s.created, category)
	return nil
}

func (s *stubCategoryRepo) CreateSubcategory(_ context.Context, sub *entity.Subcategory) error {
	s.createdSub = append(s.createdSub, sub)
	return nil
}

func node(id uint, flow entity.FlowType, name string) *entity.CategoryWithSubcategories {
	return &entity.CategoryWithSubcategories{
		Category: &entity.Category{ID: id, FlowType: flow, Name: name, Active: true},
	}
}

func TestListCategoriesFlowFilter(t *testing.T) {
	repo := &stubCategoryRepo{tree: []*entity.CategoryWithSubcategories{
		node(1, entity.FlowTypeInflow, "Sales"),
		node(2, entity.FlowTypeOutflow, "Rent"),
		node(3, entity.FlowTypeBoth, "Adjustments"),
	}}
	uc := NewListCategoriesUseCase(repo)

	tests := []struct {
		name      string
		flow      *entity.FlowType
		wantNames []string
	}{
		{
			name:      "no filter returns everything",
			wantNames: []string{"Sales", "Rent", "Adjustments"},
		},
		{
			name:      "inflow filter keeps both-flow categories",
			flow:      flowPtr(entity.FlowTypeInflow),
			wantNames: []string{"Sales", "Adjustments"},
		},
		{
			name:      "outflow filter keeps both-flow categories",
			flow:      flowPtr(entity.FlowTypeOutflow),
			wantNames: []string{"Rent", "Adjustments"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), ListCategoriesInput{FlowType: tt.flow})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var names []string
			for _, n := range output.Categories {
				names = append(names, n.Category.Name)
			}
			if len(names) != len(tt.wantNames) {
				t.Fatalf("expected %v, got %v", tt.wantNames, names)
			}
			for i := range names {
				if names[i] != tt.wantNames[i] {
					t.Errorf("expected %v, got %v", tt.wantNames, names)
					break
				}
			}
		})
	}
}

func flowPtr(f entity.FlowType) *entity.FlowType { return &f }

func TestCreateCategoryWithInitialSubcategory(t *testing.T) {
	repo := &stubCategoryRepo{}
	uc := NewCreateCategoryUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateCategoryInput{
		FlowType:           entity.FlowTypeOutflow,
		Name:               "Utilities",
		InitialSubcategory: "Electricity",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Subcategory == nil {
		t.Fatal("expected an initial subcategory")
	}
	if output.Subcategory.CategoryID != output.Category.ID {
		t.Error("subcategory is not linked to the created category")
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo := &stubCategoryRepo{byFlowName: map[string]*entity.Category{
		"outflow/Rent": {ID: 9, FlowType: entity.FlowTypeOutflow, Name: "Rent", Active: true},
	}}
	uc := NewCreateCategoryUseCase(repo)

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		FlowType: entity.FlowTypeOutflow,
		Name:     "Rent",
	})
	if !errors.Is(err, domainerror.ErrCategoryAlreadyExists) {
		t.Fatalf("expected ErrCategoryAlreadyExists, got %v", err)
	}
}
