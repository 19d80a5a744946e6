package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// SendDueDigestInput configures one digest run.
type SendDueDigestInput struct {
	Recipients []string
}

// SendDueDigestOutput reports what the run did. A dispatch failure still
// produces an output: failures are logged and recorded, never returned.
type SendDueDigestOutput struct {
	ItemCount  int
	Dispatched bool
}

// SendDueDigestUseCase collects the due items, renders a single digest
// email and dispatches it to the configured recipients. Every attempt is
// recorded in the notification log.
type SendDueDigestUseCase struct {
	source  adapter.DueItemSource
	sender  adapter.DigestSender
	logRepo adapter.NotificationLogRepository
	now     func() time.Time
}

// NewSendDueDigestUseCase creates a new SendDueDigestUseCase instance.
func NewSendDueDigestUseCase(
	source adapter.DueItemSource,
	sender adapter.DigestSender,
	logRepo adapter.NotificationLogRepository,
) *SendDueDigestUseCase {
	return &SendDueDigestUseCase{source: source, sender: sender, logRepo: logRepo, now: time.Now}
}

// Execute runs the digest. When nothing is due, no email is sent and no
// log entry is written.
func (uc *SendDueDigestUseCase) Execute(ctx context.Context, input SendDueDigestInput) (*SendDueDigestOutput, error) {
	if len(input.Recipients) == 0 {
		slog.Warn("due digest skipped: no recipients configured")
		return &SendDueDigestOutput{}, nil
	}

	items, err := uc.source.ListDueItems(ctx, AlertWindowDays)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return &SendDueDigestOutput{}, nil
	}

	digest, err := RenderDigest(items, uc.now().UTC())
	if err != nil {
		return nil, err
	}

	logEntry := &entity.NotificationLog{
		Recipients: input.Recipients,
		ItemCount:  len(items),
		Status:     entity.DigestSent,
		SentAt:     uc.now().UTC(),
	}

	dispatched := true
	_, sendErr := uc.sender.Send(ctx, adapter.SendDigestInput{
		To:      input.Recipients,
		Subject: digest.Subject,
		HTML:    digest.HTML,
		Text:    digest.Text,
	})
	if sendErr != nil {
		// A failed digest must never break the caller; the next run
		// covers the same window again.
		slog.Error("due digest dispatch failed", "error", sendErr, "items", len(items))
		logEntry.Status = entity.DigestFailed
		logEntry.Error = sendErr.Error()
		dispatched = false
	}

	if err := uc.logRepo.Create(ctx, logEntry); err != nil {
		slog.Error("failed to record digest attempt", "error", err)
	}

	return &SendDueDigestOutput{ItemCount: len(items), Dispatched: dispatched}, nil
}
