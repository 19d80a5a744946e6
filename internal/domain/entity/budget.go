// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetLine represents a planned value for a category (optionally narrowed
// to a subcategory) in a given month. YearMonth is normalized to the first
// day of the month. Lines are unique per (category, subcategory, month) and
// are written with upsert semantics.
type BudgetLine struct {
	ID            uint
	CategoryID    uint
	SubcategoryID *uint
	YearMonth     time.Time
	PlannedValue  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBudgetLine creates a new BudgetLine entity with the month normalized
// to its first day.
func NewBudgetLine(categoryID uint, subcategoryID *uint, yearMonth time.Time, plannedValue decimal.Decimal) *BudgetLine {
	now := time.Now().UTC()

	return &BudgetLine{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		YearMonth:     time.Date(yearMonth.Year(), yearMonth.Month(), 1, 0, 0, 0, 0, time.UTC),
		PlannedValue:  plannedValue,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// BudgetLineWithNames represents a budget line joined with its category and
// subcategory names.
type BudgetLineWithNames struct {
	Line            *BudgetLine
	CategoryName    string
	CategoryFlow    FlowType
	SubcategoryName string
}

// BudgetComparison represents one reconciliation row: a category's planned
// budget against the sum of its paid transactions for the month. The
// comparison is category-level only; subcategory budget lines are not
// reflected here.
type BudgetComparison struct {
	CategoryID   uint
	CategoryName string
	FlowType     FlowType
	Planned      decimal.Decimal
	Actual       decimal.Decimal
}
