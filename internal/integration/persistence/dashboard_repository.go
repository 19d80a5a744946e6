package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bk-finance/backend/internal/application/usecase/dashboard"
	"github.com/bk-finance/backend/internal/domain/entity"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.Repository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) sum(ctx context.Context, conds func(*gorm.DB) *gorm.DB) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})
	err := conds(query).
		Select("COALESCE(SUM(total_value), 0)").
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumUnpaidOutflowBefore sums unpaid outflow transactions due strictly
// before the day.
func (r *dashboardRepository) SumUnpaidOutflowBefore(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("flow_type = ? AND status = ? AND due_date < ?",
			string(entity.FlowTypeOutflow), string(entity.PaymentStatusUnpaid), day)
	})
}

// SumUnpaidOutflowBetween sums unpaid outflow transactions due in
// [from, to] inclusive.
func (r *dashboardRepository) SumUnpaidOutflowBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("flow_type = ? AND status = ? AND due_date >= ? AND due_date <= ?",
			string(entity.FlowTypeOutflow), string(entity.PaymentStatusUnpaid), from, to)
	})
}

// SumUnpaidInflow sums all unpaid inflow transactions.
func (r *dashboardRepository) SumUnpaidInflow(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("flow_type = ? AND status = ?",
			string(entity.FlowTypeInflow), string(entity.PaymentStatusUnpaid))
	})
}

// SumPaidByFlowOn sums paid transactions of one flow settled on the day.
// The filter goes by payment date, not due date, so early and late
// settlements land on the day the money actually moved.
func (r *dashboardRepository) SumPaidByFlowOn(ctx context.Context, day time.Time, flow entity.FlowType) (decimal.Decimal, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	return r.sum(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("flow_type = ? AND status = ? AND payment_date IS NOT NULL AND payment_date >= ? AND payment_date < ?",
			string(flow), string(entity.PaymentStatusPaid), dayStart, dayEnd)
	})
}

// SumPaidMonthly returns per-month paid inflow and outflow totals for due
// dates in [start, end). Rows are bucketed here to stay portable across
// postgres and sqlite.
func (r *dashboardRepository) SumPaidMonthly(ctx context.Context, start, end time.Time) ([]dashboard.MonthFlowTotal, error) {
	var rows []struct {
		FlowType   string
		DueDate    time.Time
		TotalValue decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("flow_type, due_date, total_value").
		Where("status = ? AND due_date >= ? AND due_date < ?",
			string(entity.PaymentStatusPaid), start, end).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make(map[time.Time]*dashboard.MonthFlowTotal)
	var order []time.Time
	for _, row := range rows {
		month := time.Date(row.DueDate.Year(), row.DueDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		bucket, ok := totals[month]
		if !ok {
			bucket = &dashboard.MonthFlowTotal{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
			totals[month] = bucket
			order = append(order, month)
		}
		switch entity.FlowType(row.FlowType) {
		case entity.FlowTypeInflow:
			bucket.Income = bucket.Income.Add(row.TotalValue)
		case entity.FlowTypeOutflow:
			bucket.Expense = bucket.Expense.Add(row.TotalValue)
		}
	}

	monthly := make([]dashboard.MonthFlowTotal, len(order))
	for i, month := range order {
		monthly[i] = *totals[month]
	}
	return monthly, nil
}
