package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

func recurringTemplate(due time.Time, period entity.RecurrencePeriod) *entity.Transaction {
	t := entity.NewTransaction(
		entity.FlowTypeOutflow,
		decimal.NewFromInt(100),
		decimal.Zero,
		due,
		entity.PaymentStatusUnpaid,
		false,
	)
	t.IsRecurrent = true
	t.RecurrencePeriod = period
	return t
}

func TestExpandRecurrence(t *testing.T) {
	tests := []struct {
		name        string
		period      entity.RecurrencePeriod
		base        time.Time
		occurrences int
		wantDates   []string
	}{
		{
			name:        "monthly from mid-month",
			period:      entity.RecurrenceMonthly,
			base:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			occurrences: 2,
			wantDates:   []string{"2024-03-15", "2024-04-15", "2024-05-15"},
		},
		{
			name:        "monthly clamps to shorter months from base day",
			period:      entity.RecurrenceMonthly,
			base:        time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			occurrences: 3,
			wantDates:   []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"},
		},
		{
			name:        "daily",
			period:      entity.RecurrenceDaily,
			base:        time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			occurrences: 3,
			wantDates:   []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"},
		},
		{
			name:        "yearly over leap day",
			period:      entity.RecurrenceYearly,
			base:        time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			occurrences: 2,
			wantDates:   []string{"2024-02-29", "2025-02-28", "2026-02-28"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := recurringTemplate(tt.base, tt.period)
			records := ExpandRecurrence(template, tt.occurrences)

			if len(records) != tt.occurrences+1 {
				t.Fatalf("expected %d records, got %d", tt.occurrences+1, len(records))
			}

			for i, record := range records {
				got := record.DueDate.Format("2006-01-02")
				if got != tt.wantDates[i] {
					t.Errorf("record %d: expected due date %s, got %s", i, tt.wantDates[i], got)
				}
			}
		})
	}
}

func TestExpandRecurrenceSharesGroupID(t *testing.T) {
	template := recurringTemplate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), entity.RecurrenceMonthly)
	records := ExpandRecurrence(template, 5)

	if records[0].RecurrenceGroupID == nil {
		t.Fatal("expected a recurrence group ID on the first record")
	}

	groupID := *records[0].RecurrenceGroupID
	for i, record := range records {
		if record.RecurrenceGroupID == nil || *record.RecurrenceGroupID != groupID {
			t.Errorf("record %d does not share the group ID", i)
		}
		if record.ID != 0 {
			t.Errorf("record %d carries a non-zero ID before insert", i)
		}
	}
}

func TestExpandRecurrenceNonRecurrent(t *testing.T) {
	template := entity.NewTransaction(
		entity.FlowTypeInflow,
		decimal.NewFromInt(250),
		decimal.Zero,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		entity.PaymentStatusPaid,
		false,
	)

	records := ExpandRecurrence(template, 0)

	if len(records) != 1 {
		t.Fatalf("expected a single record, got %d", len(records))
	}
	if records[0].RecurrenceGroupID != nil {
		t.Error("non-recurrent record must not carry a group ID")
	}
}
