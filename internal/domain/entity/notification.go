// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// DueItemKind distinguishes the sources of a due-digest row.
type DueItemKind string

const (
	DueItemTransaction DueItemKind = "transaction"
	DueItemActivity    DueItemKind = "activity"
)

// DueItem represents one row of the due-items digest: an unpaid transaction
// or an unfinished activity due within the alert window.
type DueItem struct {
	Kind    DueItemKind
	Title   string
	DueDate time.Time
	// Extra carries the flow type for transactions and the priority for
	// activities.
	Extra string
}

// DigestStatus represents the outcome of a digest dispatch attempt.
type DigestStatus string

const (
	DigestSent   DigestStatus = "sent"
	DigestFailed DigestStatus = "failed"
)

// NotificationLog records one digest dispatch attempt. Failures are logged
// here and swallowed; they never propagate to the caller.
type NotificationLog struct {
	ID         uint
	Recipients []string
	ItemCount  int
	Status     DigestStatus
	Error      string
	SentAt     time.Time
}
