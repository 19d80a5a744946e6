// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents whether a transaction has been settled.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// RecurrencePeriod represents the interval between recurring occurrences.
type RecurrencePeriod string

const (
	RecurrenceDaily   RecurrencePeriod = "daily"
	RecurrenceMonthly RecurrencePeriod = "monthly"
	RecurrenceYearly  RecurrencePeriod = "yearly"
)

// MaxRecurrenceOccurrences caps how many future occurrences a recurring
// template may generate.
const MaxRecurrenceOccurrences = 24

// Transaction represents a ledger entry in the BK Finance system.
//
// TotalValue is always Value + Interest; it is derived by the constructor
// and by SetAmounts and is never accepted from callers directly.
//
// IsForecast distinguishes forecast (planned) from actual (confirmed)
// entries. An entry is "actual" when IsForecast is false, regardless of
// payment status or payment date. Transactions are hard-deleted.
type Transaction struct {
	ID                uint
	FlowType          FlowType
	CategoryID        *uint
	SubcategoryID     *uint
	SupplierID        *uint
	BankID            *uint
	Description       string
	Value             decimal.Decimal
	Interest          decimal.Decimal
	TotalValue        decimal.Decimal
	DueDate           time.Time
	PaymentDate       *time.Time
	Status            PaymentStatus
	IsRecurrent       bool
	RecurrencePeriod  RecurrencePeriod
	RecurrenceGroupID *uuid.UUID
	Notes             string
	IsForecast        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransaction creates a new Transaction entity with TotalValue derived
// from value and interest.
func NewTransaction(
	flowType FlowType,
	value decimal.Decimal,
	interest decimal.Decimal,
	dueDate time.Time,
	status PaymentStatus,
	isForecast bool,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		FlowType:   flowType,
		Value:      value,
		Interest:   interest,
		TotalValue: value.Add(interest),
		DueDate:    dueDate,
		Status:     status,
		IsForecast: isForecast,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetAmounts updates value and interest, recomputing TotalValue. This is
// the only way amounts change after construction.
func (t *Transaction) SetAmounts(value, interest decimal.Decimal) {
	t.Value = value
	t.Interest = interest
	t.TotalValue = value.Add(interest)
}

// Clone returns a copy of the transaction with a zero ID, suitable for
// recurrence expansion.
func (t *Transaction) Clone() *Transaction {
	c := *t
	c.ID = 0
	return &c
}

// TransactionWithRefs represents a transaction joined with the names of its
// optional references, for listing.
type TransactionWithRefs struct {
	Transaction     *Transaction
	CategoryName    string
	SubcategoryName string
	SupplierName    string
	BankName        string
}
