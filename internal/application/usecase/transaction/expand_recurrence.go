// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// ExpandRecurrence turns a transaction template into the concrete records to
// persist. A recurring template with N occurrences yields N+1 records: the
// original due date plus N future dates, each advanced by i periods of
// calendar arithmetic, all sharing one freshly generated group ID. A
// non-recurring template (or N=0) yields exactly the single original record
// with no group ID.
func ExpandRecurrence(template *entity.Transaction, occurrences int) []*entity.Transaction {
	if !template.IsRecurrent || occurrences <= 0 {
		return []*entity.Transaction{template}
	}

	groupID := uuid.New()
	base := template.DueDate

	records := make([]*entity.Transaction, 0, occurrences+1)
	for i := 0; i <= occurrences; i++ {
		record := template.Clone()
		record.DueDate = advance(base, template.RecurrencePeriod, i)
		gid := groupID
		record.RecurrenceGroupID = &gid
		records = append(records, record)
	}
	return records
}

// advance moves base forward by i periods. Monthly and yearly steps are
// always computed from the base date, never from the previous occurrence,
// so a short month never shifts the day-of-month of later occurrences:
// 2024-01-31 monthly advances to 2024-02-29 and then 2024-03-31.
func advance(base time.Time, period entity.RecurrencePeriod, i int) time.Time {
	switch period {
	case entity.RecurrenceDaily:
		return base.AddDate(0, 0, i)
	case entity.RecurrenceMonthly:
		return addMonthsClamped(base, i)
	case entity.RecurrenceYearly:
		return addMonthsClamped(base, 12*i)
	default:
		return base
	}
}

// addMonthsClamped adds calendar months, clamping the day-of-month to the
// last day of the target month instead of letting the overflow spill into
// the following month (time.AddDate would turn Jan 31 +1 month into Mar 2).
func addMonthsClamped(base time.Time, months int) time.Time {
	first := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location()).AddDate(0, months, 0)

	day := base.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}
