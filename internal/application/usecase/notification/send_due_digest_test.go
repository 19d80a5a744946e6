package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

type stubSource struct {
	items []entity.DueItem
}

func (s *stubSource) ListDueItems(_ context.Context, _ int) ([]entity.DueItem, error) {
	return s.items, nil
}

type stubSender struct {
	sent []adapter.SendDigestInput
	err  error
}

func (s *stubSender) Send(_ context.Context, input adapter.SendDigestInput) (*adapter.SendDigestResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, input)
	return &adapter.SendDigestResult{ProviderID: "msg-1"}, nil
}

type stubLogRepo struct {
	entries []*entity.NotificationLog
}

func (s *stubLogRepo) Create(_ context.Context, log *entity.NotificationLog) error {
	s.entries = append(s.entries, log)
	return nil
}

func dueItems() []entity.DueItem {
	return []entity.DueItem{
		{Kind: entity.DueItemTransaction, Title: "Office lease", DueDate: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), Extra: "outflow"},
		{Kind: entity.DueItemActivity, Title: "Inventory count", DueDate: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), Extra: "important_urgent"},
	}
}

func TestSendDueDigest(t *testing.T) {
	sender := &stubSender{}
	logRepo := &stubLogRepo{}
	uc := NewSendDueDigestUseCase(&stubSource{items: dueItems()}, sender, logRepo)

	output, err := uc.Execute(context.Background(), SendDueDigestInput{Recipients: []string{"owner@example.com"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Dispatched || output.ItemCount != 2 {
		t.Fatalf("expected a dispatched digest with 2 items, got %+v", output)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected a single email, got %d", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0].HTML, "Office lease") || !strings.Contains(sender.sent[0].HTML, "Inventory count") {
		t.Error("digest HTML is missing items")
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Status != entity.DigestSent {
		t.Fatalf("expected one sent log entry, got %+v", logRepo.entries)
	}
}

func TestSendDueDigestSwallowsFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("rate limited")}
	logRepo := &stubLogRepo{}
	uc := NewSendDueDigestUseCase(&stubSource{items: dueItems()}, sender, logRepo)

	output, err := uc.Execute(context.Background(), SendDueDigestInput{Recipients: []string{"owner@example.com"}})
	if err != nil {
		t.Fatalf("dispatch failures must be swallowed, got %v", err)
	}

	if output.Dispatched {
		t.Error("expected Dispatched=false on failure")
	}
	if len(logRepo.entries) != 1 {
		t.Fatalf("expected a log entry, got %d", len(logRepo.entries))
	}
	entry := logRepo.entries[0]
	if entry.Status != entity.DigestFailed || entry.Error == "" {
		t.Errorf("expected a failed log entry with the error message, got %+v", entry)
	}
	if entry.ItemCount != 2 {
		t.Errorf("expected item count 2, got %d", entry.ItemCount)
	}
}

func TestSendDueDigestSkipsWhenEmpty(t *testing.T) {
	sender := &stubSender{}
	logRepo := &stubLogRepo{}
	uc := NewSendDueDigestUseCase(&stubSource{}, sender, logRepo)

	output, err := uc.Execute(context.Background(), SendDueDigestInput{Recipients: []string{"owner@example.com"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Dispatched || len(sender.sent) != 0 || len(logRepo.entries) != 0 {
		t.Error("an empty window must send nothing and log nothing")
	}
}

func TestRenderDigestEscapesHTML(t *testing.T) {
	digest, err := RenderDigest([]entity.DueItem{
		{Kind: entity.DueItemTransaction, Title: "<script>alert(1)</script>", DueDate: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)},
	}, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(digest.HTML, "<script>") {
		t.Error("item titles must be escaped in the HTML body")
	}
	if !strings.Contains(digest.Subject, "1 item(s)") {
		t.Errorf("unexpected subject: %s", digest.Subject)
	}
}
