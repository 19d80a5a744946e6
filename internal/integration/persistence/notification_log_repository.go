package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

// notificationLogRepository implements the adapter.NotificationLogRepository
// interface.
type notificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository creates a new notification-log repository
// instance.
func NewNotificationLogRepository(db *gorm.DB) adapter.NotificationLogRepository {
	return &notificationLogRepository{db: db}
}

// Create records a digest dispatch attempt.
func (r *notificationLogRepository) Create(ctx context.Context, log *entity.NotificationLog) error {
	logModel := model.NotificationLogFromEntity(log)
	if err := r.db.WithContext(ctx).Create(logModel).Error; err != nil {
		return err
	}
	log.ID = logModel.ID
	return nil
}
