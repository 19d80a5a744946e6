package cashflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	adapter.TransactionRepository
	buckets  map[bool][]adapter.MonthlyBucket
	sumCalls int
}

func (s *stubTransactionRepo) SumByMonth(_ context.Context, _, _ time.Time, isForecast bool) ([]adapter.MonthlyBucket, error) {
	s.sumCalls++
	return s.buckets[isForecast], nil
}

type stubCategoryRepo struct {
	adapter.CategoryRepository
	taxonomy []*entity.CategoryWithSubcategories
}

func (s *stubCategoryRepo) FindActiveWithSubcategories(_ context.Context) ([]*entity.CategoryWithSubcategories, error) {
	return s.taxonomy, nil
}

type stubBankRepo struct {
	adapter.BankRepository
	opening decimal.Decimal
}

func (s *stubBankRepo) SumActiveInitialBalances(_ context.Context) (decimal.Decimal, error) {
	return s.opening, nil
}

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte) error {
	c.entries[key] = payload
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context) error {
	c.entries = map[string][]byte{}
	return nil
}

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func testTaxonomy() []*entity.CategoryWithSubcategories {
	return []*entity.CategoryWithSubcategories{
		{
			Category: &entity.Category{ID: 1, FlowType: entity.FlowTypeInflow, Name: "Sales", Active: true},
		},
		{
			Category: &entity.Category{ID: 2, FlowType: entity.FlowTypeOutflow, Name: "Rent", Active: true},
			Subcategories: []*entity.Subcategory{
				{ID: 20, CategoryID: 2, Name: "Office", Active: true},
			},
		},
	}
}

func bucket(catID, subID uint, flow entity.FlowType, month time.Time, total int64) adapter.MonthlyBucket {
	b := adapter.MonthlyBucket{FlowType: flow, Month: month, Total: decimal.NewFromInt(total)}
	if catID != 0 {
		b.CategoryID = &catID
	}
	if subID != 0 {
		b.SubcategoryID = &subID
	}
	return b
}

func newBuilder(txns *stubTransactionRepo, cache adapter.StatementCache) *BuildStatementUseCase {
	uc := NewBuildStatementUseCase(
		txns,
		&stubCategoryRepo{taxonomy: testTaxonomy()},
		&stubBankRepo{opening: decimal.NewFromInt(1000)},
		cache,
	)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestBuildStatementSingleMonth(t *testing.T) {
	monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := &stubTransactionRepo{buckets: map[bool][]adapter.MonthlyBucket{
		false: {
			bucket(1, 0, entity.FlowTypeInflow, monthStart, 500),
			bucket(2, 20, entity.FlowTypeOutflow, monthStart, 200),
		},
	}}

	output, err := newBuilder(txns, nil).Execute(context.Background(), BuildStatementInput{Months: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := output.Statement

	if len(st.Months) != 1 || st.Months[0] != "2024-06" {
		t.Fatalf("expected single month 2024-06, got %v", st.Months)
	}
	if len(st.Rows) != 2 {
		t.Fatalf("expected 2 taxonomy rows, got %d", len(st.Rows))
	}

	// Outflow section comes first.
	if st.Rows[0].CategoryName != "Rent" || st.Rows[0].SubcategoryName != "Office" {
		t.Errorf("unexpected first row: %+v", st.Rows[0])
	}
	if st.Rows[1].CategoryName != "Sales" || st.Rows[1].SubcategoryName != SubcategoryPlaceholder {
		t.Errorf("unexpected second row: %+v", st.Rows[1])
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want int64
	}{
		{"outflow cell", st.Rows[0].Values[0], 200},
		{"inflow cell", st.Rows[1].Values[0], 500},
		{"total outflow", st.TotalOutflow[0], 200},
		{"total inflow", st.TotalInflow[0], 500},
		{"net month", st.NetMonth[0], 300},
		{"running balance", st.RunningBalance[0], 1300},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromInt(c.want)) {
			t.Errorf("%s: expected %d, got %s", c.name, c.want, c.got)
		}
	}
}

func TestBuildStatementZeroFillAndCarry(t *testing.T) {
	// Data only in the middle month; the balance still carries across all three.
	middle := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	txns := &stubTransactionRepo{buckets: map[bool][]adapter.MonthlyBucket{
		false: {bucket(1, 0, entity.FlowTypeInflow, middle, 300)},
	}}

	output, err := newBuilder(txns, nil).Execute(context.Background(), BuildStatementInput{Months: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := output.Statement

	wantBalances := []int64{1000, 1300, 1300}
	for m, want := range wantBalances {
		if !st.RunningBalance[m].Equal(decimal.NewFromInt(want)) {
			t.Errorf("month %d: expected balance %d, got %s", m, want, st.RunningBalance[m])
		}
	}
	if !st.Rows[0].Values[0].IsZero() {
		t.Error("cells without data must be zero")
	}
}

func TestBuildStatementUncategorizedRow(t *testing.T) {
	monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := &stubTransactionRepo{buckets: map[bool][]adapter.MonthlyBucket{
		false: {bucket(0, 0, entity.FlowTypeOutflow, monthStart, 75)},
	}}

	output, err := newBuilder(txns, nil).Execute(context.Background(), BuildStatementInput{Months: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	for _, row := range output.Statement.Rows {
		if row.CategoryName == UncategorizedLabel && row.FlowType == entity.FlowTypeOutflow {
			found = true
			if !row.Values[0].Equal(decimal.NewFromInt(75)) {
				t.Errorf("expected uncategorized cell 75, got %s", row.Values[0])
			}
		}
	}
	if !found {
		t.Fatal("expected an uncategorized outflow row")
	}
	if !output.Statement.TotalOutflow[0].Equal(decimal.NewFromInt(75)) {
		t.Errorf("uncategorized sums must reach the footer, got %s", output.Statement.TotalOutflow[0])
	}
}

func TestBuildStatementWindowValidation(t *testing.T) {
	uc := newBuilder(&stubTransactionRepo{}, nil)

	for _, months := range []int{-1, MaxWindowMonths + 1} {
		_, err := uc.Execute(context.Background(), BuildStatementInput{Months: months})

		var cfErr *domainerror.CashflowError
		if !errors.As(err, &cfErr) || cfErr.Code != domainerror.ErrCodeInvalidWindow {
			t.Errorf("months=%d: expected invalid window error, got %v", months, err)
		}
	}

	output, err := uc.Execute(context.Background(), BuildStatementInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Statement.Months) != DefaultWindowMonths {
		t.Errorf("expected default window of %d months, got %d", DefaultWindowMonths, len(output.Statement.Months))
	}
}

func TestBuildStatementServesFromCache(t *testing.T) {
	monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := &stubTransactionRepo{buckets: map[bool][]adapter.MonthlyBucket{
		false: {bucket(1, 0, entity.FlowTypeInflow, monthStart, 500)},
	}}
	cache := newMemoryCache()
	uc := newBuilder(txns, cache)

	first, err := uc.Execute(context.Background(), BuildStatementInput{Months: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), BuildStatementInput{Months: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if txns.sumCalls != 1 {
		t.Errorf("expected a single store read, got %d", txns.sumCalls)
	}
	if !second.Statement.RunningBalance[0].Equal(first.Statement.RunningBalance[0]) {
		t.Error("cached statement differs from the built one")
	}
}

func TestDiffStatements(t *testing.T) {
	monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := &stubTransactionRepo{buckets: map[bool][]adapter.MonthlyBucket{
		true: {
			bucket(2, 20, entity.FlowTypeOutflow, monthStart, 500),
		},
		false: {
			bucket(2, 20, entity.FlowTypeOutflow, monthStart, 320),
			bucket(1, 0, entity.FlowTypeInflow, monthStart, 100),
		},
	}}
	uc := NewDiffStatementsUseCase(newBuilder(txns, nil))

	output, err := uc.Execute(context.Background(), DiffStatementsInput{Months: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := output.Diff

	cells := map[string]decimal.Decimal{}
	for _, row := range d.Rows {
		cells[row.CategoryName+"/"+row.SubcategoryName] = row.Values[0]
	}

	if got := cells["Rent/Office"]; !got.Equal(decimal.NewFromInt(180)) {
		t.Errorf("expected Rent/Office diff 180, got %s", got)
	}
	if got := cells["Sales/"+SubcategoryPlaceholder]; !got.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("expected Sales diff -100, got %s", got)
	}
}
