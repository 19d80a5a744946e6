package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

type stubBudgetRepo struct {
	adapter.BudgetRepository
	lines    []*entity.BudgetLineWithNames
	upserted []*entity.BudgetLine
}

func (s *stubBudgetRepo) Upsert(_ context.Context, line *entity.BudgetLine) error {
	s.upserted = append(s.upserted, line)
	return nil
}

func (s *stubBudgetRepo) FindByMonth(_ context.Context, _ time.Time) ([]*entity.BudgetLineWithNames, error) {
	return s.lines, nil
}

type stubTransactionRepo struct {
	adapter.TransactionRepository
	totals []adapter.CategoryTotal
}

func (s *stubTransactionRepo) SumPaidByCategory(_ context.Context, _ time.Time) ([]adapter.CategoryTotal, error) {
	return s.totals, nil
}

type stubCategoryRepo struct {
	adapter.CategoryRepository
	categories []*entity.Category
}

func (s *stubCategoryRepo) FindActive(_ context.Context, _ *entity.FlowType) ([]*entity.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryRepo) FindByID(_ context.Context, id uint) (*entity.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func line(categoryID uint, subcategoryID *uint, planned int64) *entity.BudgetLineWithNames {
	return &entity.BudgetLineWithNames{
		Line: &entity.BudgetLine{
			CategoryID:    categoryID,
			SubcategoryID: subcategoryID,
			PlannedValue:  decimal.NewFromInt(planned),
		},
	}
}

func TestReconcileBudget(t *testing.T) {
	subID := uint(30)
	uc := NewReconcileBudgetUseCase(
		&stubBudgetRepo{lines: []*entity.BudgetLineWithNames{
			line(1, nil, 1000),
			line(2, &subID, 400), // subcategory line must not surface
		}},
		&stubTransactionRepo{totals: []adapter.CategoryTotal{
			{CategoryID: 1, Total: decimal.NewFromInt(750)},
		}},
		&stubCategoryRepo{categories: []*entity.Category{
			{ID: 1, FlowType: entity.FlowTypeOutflow, Name: "Rent", Active: true},
			{ID: 2, FlowType: entity.FlowTypeOutflow, Name: "Supplies", Active: true},
			{ID: 3, FlowType: entity.FlowTypeInflow, Name: "Sales", Active: true},
		}},
	)

	output, err := uc.Execute(context.Background(), ReconcileBudgetInput{
		YearMonth: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Rows) != 3 {
		t.Fatalf("expected a row per active category, got %d", len(output.Rows))
	}

	byName := map[string]*entity.BudgetComparison{}
	for _, row := range output.Rows {
		byName[row.CategoryName] = row
	}

	rent := byName["Rent"]
	if !rent.Planned.Equal(decimal.NewFromInt(1000)) || !rent.Actual.Equal(decimal.NewFromInt(750)) {
		t.Errorf("Rent: expected 1000 planned / 750 actual, got %s / %s", rent.Planned, rent.Actual)
	}

	// Supplies has only a subcategory-level line; it reads as unplanned.
	supplies := byName["Supplies"]
	if !supplies.Planned.IsZero() || !supplies.Actual.IsZero() {
		t.Errorf("Supplies: expected zeros, got %s / %s", supplies.Planned, supplies.Actual)
	}

	sales := byName["Sales"]
	if !sales.Planned.IsZero() || !sales.Actual.IsZero() {
		t.Errorf("Sales: expected zeros, got %s / %s", sales.Planned, sales.Actual)
	}
}

func TestUpsertBudgetNormalizesMonth(t *testing.T) {
	repo := &stubBudgetRepo{}
	uc := NewUpsertBudgetUseCase(repo, &stubCategoryRepo{categories: []*entity.Category{
		{ID: 1, FlowType: entity.FlowTypeOutflow, Name: "Rent", Active: true},
	}})

	output, err := uc.Execute(context.Background(), UpsertBudgetInput{
		CategoryID:   1,
		YearMonth:    time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		PlannedValue: decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !output.Line.YearMonth.Equal(want) {
		t.Errorf("expected month normalized to %s, got %s", want, output.Line.YearMonth)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upserted))
	}
}

func TestUpsertBudgetRejectsNegative(t *testing.T) {
	uc := NewUpsertBudgetUseCase(&stubBudgetRepo{}, &stubCategoryRepo{})

	_, err := uc.Execute(context.Background(), UpsertBudgetInput{
		CategoryID:   1,
		YearMonth:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PlannedValue: decimal.NewFromInt(-10),
	})
	if err == nil {
		t.Fatal("expected an error")
	}
}
