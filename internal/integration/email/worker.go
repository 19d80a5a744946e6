package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/bk-finance/backend/internal/application/usecase/notification"
)

// Worker runs the due-items digest on a fixed interval.
type Worker struct {
	digest     *notification.SendDueDigestUseCase
	recipients []string
	interval   time.Duration
}

// WorkerConfig holds configuration for the digest worker.
type WorkerConfig struct {
	Recipients []string
	Interval   time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Interval: 24 * time.Hour,
	}
}

// NewWorker creates a new digest worker.
func NewWorker(digest *notification.SendDueDigestUseCase, config WorkerConfig) *Worker {
	return &Worker{
		digest:     digest,
		recipients: config.Recipients,
		interval:   config.Interval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Digest worker started",
		"interval", w.interval,
		"recipients", len(w.recipients),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run immediately on start, then on every tick.
	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Digest worker stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *Worker) run(ctx context.Context) {
	output, err := w.digest.Execute(ctx, notification.SendDueDigestInput{Recipients: w.recipients})
	if err != nil {
		slog.Error("Digest run failed", "error", err)
		return
	}
	if output.ItemCount > 0 {
		slog.Info("Digest run finished",
			"items", output.ItemCount,
			"dispatched", output.Dispatched,
		)
	}
}
