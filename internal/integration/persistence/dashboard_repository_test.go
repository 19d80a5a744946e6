package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bk-finance/backend/internal/domain/entity"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.TransactionModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func insertTransaction(t *testing.T, db *gorm.DB, flow string, status string, total int64, due time.Time, paid *time.Time) {
	t.Helper()
	m := &model.TransactionModel{
		FlowType:    flow,
		Value:       decimal.NewFromInt(total),
		Interest:    decimal.Zero,
		TotalValue:  decimal.NewFromInt(total),
		DueDate:     due,
		PaymentDate: paid,
		Status:      status,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("insert transaction: %v", err)
	}
}

// A transaction settled today counts toward today's cards no matter when
// it was due, and a transaction due today but settled on another day does
// not.
func TestSumPaidByFlowOnUsesPaymentDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewDashboardRepository(db)

	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	// Due yesterday, settled today: counts.
	insertTransaction(t, db, string(entity.FlowTypeInflow), string(entity.PaymentStatusPaid),
		500, yesterday, &today)
	// Due today, settled yesterday: does not count.
	insertTransaction(t, db, string(entity.FlowTypeInflow), string(entity.PaymentStatusPaid),
		200, today, &yesterday)
	// Due today, still unpaid (no payment date): does not count.
	insertTransaction(t, db, string(entity.FlowTypeInflow), string(entity.PaymentStatusUnpaid),
		300, today, nil)
	// Settled today but an outflow: wrong flow for this sum.
	insertTransaction(t, db, string(entity.FlowTypeOutflow), string(entity.PaymentStatusPaid),
		80, today, &today)

	got, err := repo.SumPaidByFlowOn(context.Background(), today, entity.FlowTypeInflow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected 500 paid inflow today, got %s", got)
	}

	gotOut, err := repo.SumPaidByFlowOn(context.Background(), today, entity.FlowTypeOutflow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotOut.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected 80 paid outflow today, got %s", gotOut)
	}
}

func TestSumPaidByFlowOnEmptyIsZero(t *testing.T) {
	db := openTestDB(t)
	repo := NewDashboardRepository(db)

	got, err := repo.SumPaidByFlowOn(context.Background(),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), entity.FlowTypeInflow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero on an empty table, got %s", got)
	}
}
