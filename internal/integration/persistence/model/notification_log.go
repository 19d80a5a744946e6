package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// NotificationLogModel represents the notification_logs table in the
// database. Recipients are stored as a native text array.
type NotificationLogModel struct {
	ID         uint           `gorm:"primaryKey;autoIncrement"`
	Recipients pq.StringArray `gorm:"type:text[]"`
	ItemCount  int            `gorm:"not null"`
	Status     string         `gorm:"type:varchar(10);not null;index"`
	Error      string         `gorm:"type:text"`
	SentAt     time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the NotificationLogModel.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

// ToEntity converts a NotificationLogModel to a domain NotificationLog entity.
func (m *NotificationLogModel) ToEntity() *entity.NotificationLog {
	return &entity.NotificationLog{
		ID:         m.ID,
		Recipients: m.Recipients,
		ItemCount:  m.ItemCount,
		Status:     entity.DigestStatus(m.Status),
		Error:      m.Error,
		SentAt:     m.SentAt,
	}
}

// NotificationLogFromEntity converts a domain NotificationLog entity to a model.
func NotificationLogFromEntity(l *entity.NotificationLog) *NotificationLogModel {
	return &NotificationLogModel{
		ID:         l.ID,
		Recipients: pq.StringArray(l.Recipients),
		ItemCount:  l.ItemCount,
		Status:     string(l.Status),
		Error:      l.Error,
		SentAt:     l.SentAt,
	}
}
