package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

type stubDashboardRepo struct {
	Repository
	monthly []MonthFlowTotal
	sums    map[string]decimal.Decimal
}

func (s *stubDashboardRepo) SumPaidMonthly(_ context.Context, _, _ time.Time) ([]MonthFlowTotal, error) {
	return s.monthly, nil
}

func (s *stubDashboardRepo) SumUnpaidOutflowBefore(_ context.Context, _ time.Time) (decimal.Decimal, error) {
	return s.sums["overdue"], nil
}

func (s *stubDashboardRepo) SumUnpaidOutflowBetween(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return s.sums["dueSoon"], nil
}

func (s *stubDashboardRepo) SumUnpaidInflow(_ context.Context) (decimal.Decimal, error) {
	return s.sums["receivable"], nil
}

func (s *stubDashboardRepo) SumPaidByFlowOn(_ context.Context, _ time.Time, flow entity.FlowType) (decimal.Decimal, error) {
	return s.sums["on:"+string(flow)], nil
}

func TestGetCashflowChartAccumulates(t *testing.T) {
	repo := &stubDashboardRepo{monthly: []MonthFlowTotal{
		{
			Month:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Income:  decimal.NewFromInt(800),
			Expense: decimal.NewFromInt(300),
		},
		{
			Month:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Income:  decimal.NewFromInt(100),
			Expense: decimal.NewFromInt(400),
		},
	}}
	uc := NewGetCashflowChartUseCase(repo)
	uc.now = func() time.Time { return time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC) }

	output, err := uc.Execute(context.Background(), GetCashflowChartInput{Months: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(output.Points))
	}

	wantMonths := []string{"2024-04", "2024-05", "2024-06"}
	wantAccumulated := []int64{500, 500, 200}
	for i, p := range output.Points {
		if p.Month != wantMonths[i] {
			t.Errorf("point %d: expected month %s, got %s", i, wantMonths[i], p.Month)
		}
		if !p.Accumulated.Equal(decimal.NewFromInt(wantAccumulated[i])) {
			t.Errorf("point %d: expected accumulated %d, got %s", i, wantAccumulated[i], p.Accumulated)
		}
	}

	// The empty middle month reads as zeros.
	if !output.Points[1].Income.IsZero() || !output.Points[1].Expense.IsZero() {
		t.Error("months without movement must be zero")
	}
}

func TestGetHomeSummary(t *testing.T) {
	repo := &stubDashboardRepo{sums: map[string]decimal.Decimal{
		"overdue":    decimal.NewFromInt(150),
		"dueSoon":    decimal.NewFromInt(90),
		"receivable": decimal.NewFromInt(600),
		"on:inflow":  decimal.NewFromInt(200),
		"on:outflow": decimal.NewFromInt(50),
	}}
	uc := NewGetHomeSummaryUseCase(repo)
	uc.now = func() time.Time { return time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC) }

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := output.Summary

	if !s.IncomeToday.Equal(decimal.NewFromInt(200)) || !s.ExpenseToday.Equal(decimal.NewFromInt(50)) {
		t.Errorf("unexpected today cards: %s / %s", s.IncomeToday, s.ExpenseToday)
	}
	if !s.BalanceToday.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected balance 150 (200 - 50), got %s", s.BalanceToday)
	}
	if !s.Overdue.Equal(decimal.NewFromInt(150)) || !s.DueSoon.Equal(decimal.NewFromInt(90)) {
		t.Errorf("unexpected payable cards: %s / %s", s.Overdue, s.DueSoon)
	}
	if !s.Receivable.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected receivable 600, got %s", s.Receivable)
	}
}
