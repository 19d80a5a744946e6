package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// BudgetLineModel represents the budget_lines table in the database. The
// composite unique index backs the upsert semantics on
// (category, subcategory, month).
type BudgetLineModel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	CategoryID    uint            `gorm:"not null;uniqueIndex:idx_budget_key"`
	SubcategoryID *uint           `gorm:"uniqueIndex:idx_budget_key"`
	YearMonth     time.Time       `gorm:"type:date;not null;uniqueIndex:idx_budget_key;index"`
	PlannedValue  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Category    *CategoryModel    `gorm:"foreignKey:CategoryID;references:ID"`
	Subcategory *SubcategoryModel `gorm:"foreignKey:SubcategoryID;references:ID"`
}

// TableName returns the table name for the BudgetLineModel.
func (BudgetLineModel) TableName() string {
	return "budget_lines"
}

// ToEntity converts a BudgetLineModel to a domain BudgetLine entity.
func (m *BudgetLineModel) ToEntity() *entity.BudgetLine {
	return &entity.BudgetLine{
		ID:            m.ID,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		YearMonth:     m.YearMonth,
		PlannedValue:  m.PlannedValue,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToEntityWithNames converts a BudgetLineModel with preloaded references.
func (m *BudgetLineModel) ToEntityWithNames() *entity.BudgetLineWithNames {
	withNames := &entity.BudgetLineWithNames{Line: m.ToEntity()}
	if m.Category != nil {
		withNames.CategoryName = m.Category.Name
		withNames.CategoryFlow = entity.FlowType(m.Category.FlowType)
	}
	if m.Subcategory != nil {
		withNames.SubcategoryName = m.Subcategory.Name
	}
	return withNames
}

// BudgetLineFromEntity converts a domain BudgetLine entity to a BudgetLineModel.
func BudgetLineFromEntity(b *entity.BudgetLine) *BudgetLineModel {
	return &BudgetLineModel{
		ID:            b.ID,
		CategoryID:    b.CategoryID,
		SubcategoryID: b.SubcategoryID,
		YearMonth:     b.YearMonth,
		PlannedValue:  b.PlannedValue,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
