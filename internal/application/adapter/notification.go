// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// DueItemSource lists the items that should appear in the due-items digest.
type DueItemSource interface {
	// ListDueItems returns unpaid transactions and unfinished activities due
	// within the next `days` days, ordered by due date.
	ListDueItems(ctx context.Context, days int) ([]entity.DueItem, error)
}

// SendDigestInput holds a rendered digest ready for dispatch.
type SendDigestInput struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// SendDigestResult holds the provider's response for a dispatched digest.
type SendDigestResult struct {
	ProviderID string
}

// DigestSender dispatches a rendered digest message.
type DigestSender interface {
	Send(ctx context.Context, input SendDigestInput) (*SendDigestResult, error)
}

// NotificationLogRepository records digest dispatch attempts.
type NotificationLogRepository interface {
	Create(ctx context.Context, log *entity.NotificationLog) error
}
