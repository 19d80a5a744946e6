package persistence

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

// dueItemSource implements the adapter.DueItemSource interface over the
// transactions and activities tables.
type dueItemSource struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDueItemSource creates a new due-item source instance.
func NewDueItemSource(db *gorm.DB) adapter.DueItemSource {
	return &dueItemSource{db: db, now: time.Now}
}

// ListDueItems returns unpaid transactions and unfinished activities due
// within the next `days` days, ordered by due date.
func (s *dueItemSource) ListDueItems(ctx context.Context, days int) ([]entity.DueItem, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, days+1)

	var transactionModels []model.TransactionModel
	result := s.db.WithContext(ctx).
		Where("status = ? AND due_date >= ? AND due_date < ?",
			string(entity.PaymentStatusUnpaid), today, horizon).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	var activityModels []model.ActivityModel
	result = s.db.WithContext(ctx).
		Where("status <> ? AND end_date >= ? AND end_date < ?",
			string(entity.ActivityCompleted), today, horizon).
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]entity.DueItem, 0, len(transactionModels)+len(activityModels))
	for _, tm := range transactionModels {
		items = append(items, entity.DueItem{
			Kind:    entity.DueItemTransaction,
			Title:   tm.Description,
			DueDate: tm.DueDate,
			Extra:   tm.FlowType,
		})
	}
	for _, am := range activityModels {
		items = append(items, entity.DueItem{
			Kind:    entity.DueItemActivity,
			Title:   am.Title,
			DueDate: am.EndDate,
			Extra:   am.Priority,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].DueDate.Equal(items[j].DueDate) {
			return items[i].DueDate.Before(items[j].DueDate)
		}
		return items[i].Title < items[j].Title
	})
	return items, nil
}
