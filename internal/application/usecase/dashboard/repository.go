// Package dashboard contains the home-page summary and chart use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// MonthFlowTotal holds the paid inflow and outflow sums of one calendar
// month, bucketed by due date.
type MonthFlowTotal struct {
	Month   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Repository defines the aggregate reads the dashboard needs.
type Repository interface {
	// SumUnpaidOutflowBefore sums unpaid outflow transactions due strictly
	// before the day.
	SumUnpaidOutflowBefore(ctx context.Context, day time.Time) (decimal.Decimal, error)

	// SumUnpaidOutflowBetween sums unpaid outflow transactions due in
	// [from, to] inclusive.
	SumUnpaidOutflowBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumUnpaidInflow sums all unpaid inflow transactions.
	SumUnpaidInflow(ctx context.Context) (decimal.Decimal, error)

	// SumPaidByFlowOn sums paid transactions of one flow whose payment
	// date falls on the day.
	SumPaidByFlowOn(ctx context.Context, day time.Time, flow entity.FlowType) (decimal.Decimal, error)

	// SumPaidMonthly returns per-month paid inflow and outflow totals for
	// due dates in [start, end). Months with no data produce no entry.
	SumPaidMonthly(ctx context.Context, start, end time.Time) ([]MonthFlowTotal, error)
}
