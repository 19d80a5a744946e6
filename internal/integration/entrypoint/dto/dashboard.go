package dto

import (
	"github.com/bk-finance/backend/internal/application/usecase/dashboard"
)

// HomeSummaryResponse represents the home-page summary cards.
type HomeSummaryResponse struct {
	Overdue      string `json:"overdue"`
	DueSoon      string `json:"due_soon"`
	Receivable   string `json:"receivable"`
	IncomeToday  string `json:"income_today"`
	ExpenseToday string `json:"expense_today"`
	BalanceToday string `json:"balance_today"`
}

// ChartPointResponse represents one month of the cash-flow chart.
type ChartPointResponse struct {
	Month       string `json:"month"`
	Income      string `json:"income"`
	Expense     string `json:"expense"`
	Balance     string `json:"balance"`
	Accumulated string `json:"accumulated"`
}

// CashflowChartResponse represents the chart series, oldest month first.
type CashflowChartResponse struct {
	Points []ChartPointResponse `json:"points"`
}

// ToHomeSummaryResponse converts a HomeSummary to a HomeSummaryResponse DTO.
func ToHomeSummaryResponse(summary *dashboard.HomeSummary) HomeSummaryResponse {
	return HomeSummaryResponse{
		Overdue:      summary.Overdue.String(),
		DueSoon:      summary.DueSoon.String(),
		Receivable:   summary.Receivable.String(),
		IncomeToday:  summary.IncomeToday.String(),
		ExpenseToday: summary.ExpenseToday.String(),
		BalanceToday: summary.BalanceToday.String(),
	}
}

// ToCashflowChartResponse converts chart points to a CashflowChartResponse DTO.
func ToCashflowChartResponse(points []dashboard.ChartPoint) CashflowChartResponse {
	response := CashflowChartResponse{Points: make([]ChartPointResponse, 0, len(points))}
	for _, p := range points {
		response.Points = append(response.Points, ChartPointResponse{
			Month:       p.Month,
			Income:      p.Income.String(),
			Expense:     p.Expense.String(),
			Balance:     p.Balance.String(),
			Accumulated: p.Accumulated.String(),
		})
	}
	return response
}
