package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultChartMonths is the chart window when the caller does not choose one.
const DefaultChartMonths = 6

// ChartPoint is one month of the home-page cash-flow chart.
type ChartPoint struct {
	Month       string
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Balance     decimal.Decimal
	Accumulated decimal.Decimal
}

// GetCashflowChartInput selects the chart window.
type GetCashflowChartInput struct {
	// Months is the window length, counted backwards from the current
	// month inclusive. Zero selects the default.
	Months int
}

// GetCashflowChartOutput wraps the chart points, oldest month first.
type GetCashflowChartOutput struct {
	Points []ChartPoint
}

// GetCashflowChartUseCase builds the paid income/expense series of the last
// months with a per-month balance and a left-to-right accumulated sum.
type GetCashflowChartUseCase struct {
	repo Repository
	now  func() time.Time
}

// NewGetCashflowChartUseCase creates a new GetCashflowChartUseCase instance.
func NewGetCashflowChartUseCase(repo Repository) *GetCashflowChartUseCase {
	return &GetCashflowChartUseCase{repo: repo, now: time.Now}
}

// Execute builds the chart. Months without movement appear with zeros.
func (uc *GetCashflowChartUseCase) Execute(ctx context.Context, input GetCashflowChartInput) (*GetCashflowChartOutput, error) {
	months := input.Months
	if months <= 0 {
		months = DefaultChartMonths
	}

	now := uc.now().UTC()
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	start := end.AddDate(0, -months, 0)

	totals, err := uc.repo.SumPaidMonthly(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]MonthFlowTotal, len(totals))
	for _, t := range totals {
		byMonth[t.Month.Format("2006-01")] = t
	}

	points := make([]ChartPoint, 0, months)
	accumulated := decimal.Zero
	for i := 0; i < months; i++ {
		label := start.AddDate(0, i, 0).Format("2006-01")

		income, expense := decimal.Zero, decimal.Zero
		if t, ok := byMonth[label]; ok {
			income, expense = t.Income, t.Expense
		}

		balance := income.Sub(expense)
		accumulated = accumulated.Add(balance)
		points = append(points, ChartPoint{
			Month:       label,
			Income:      income,
			Expense:     expense,
			Balance:     balance,
			Accumulated: accumulated,
		})
	}

	return &GetCashflowChartOutput{Points: points}, nil
}
