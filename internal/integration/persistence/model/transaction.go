package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                uint            `gorm:"primaryKey;autoIncrement"`
	FlowType          string          `gorm:"type:varchar(10);not null;index"`
	CategoryID        *uint           `gorm:"index"`
	SubcategoryID     *uint           `gorm:"index"`
	SupplierID        *uint           `gorm:"index"`
	BankID            *uint           `gorm:"index"`
	Description       string          `gorm:"type:varchar(255)"`
	Value             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Interest          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalValue        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate           time.Time       `gorm:"type:date;not null;index"`
	PaymentDate       *time.Time      `gorm:"type:date"`
	Status            string          `gorm:"type:varchar(10);not null;index"`
	IsRecurrent       bool            `gorm:"not null;default:false"`
	RecurrencePeriod  string          `gorm:"type:varchar(10)"`
	RecurrenceGroupID *uuid.UUID      `gorm:"type:uuid;index"`
	Notes             string          `gorm:"type:text"`
	IsForecast        bool            `gorm:"not null;default:false;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category    *CategoryModel    `gorm:"foreignKey:CategoryID;references:ID"`
	Subcategory *SubcategoryModel `gorm:"foreignKey:SubcategoryID;references:ID"`
	Supplier    *SupplierModel    `gorm:"foreignKey:SupplierID;references:ID"`
	Bank        *BankModel        `gorm:"foreignKey:BankID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                m.ID,
		FlowType:          entity.FlowType(m.FlowType),
		CategoryID:        m.CategoryID,
		SubcategoryID:     m.SubcategoryID,
		SupplierID:        m.SupplierID,
		BankID:            m.BankID,
		Description:       m.Description,
		Value:             m.Value,
		Interest:          m.Interest,
		TotalValue:        m.TotalValue,
		DueDate:           m.DueDate,
		PaymentDate:       m.PaymentDate,
		Status:            entity.PaymentStatus(m.Status),
		IsRecurrent:       m.IsRecurrent,
		RecurrencePeriod:  entity.RecurrencePeriod(m.RecurrencePeriod),
		RecurrenceGroupID: m.RecurrenceGroupID,
		Notes:             m.Notes,
		IsForecast:        m.IsForecast,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ToEntityWithRefs converts a TransactionModel with preloaded references.
func (m *TransactionModel) ToEntityWithRefs() *entity.TransactionWithRefs {
	withRefs := &entity.TransactionWithRefs{Transaction: m.ToEntity()}
	if m.Category != nil {
		withRefs.CategoryName = m.Category.Name
	}
	if m.Subcategory != nil {
		withRefs.SubcategoryName = m.Subcategory.Name
	}
	if m.Supplier != nil {
		withRefs.SupplierName = m.Supplier.Name
	}
	if m.Bank != nil {
		withRefs.BankName = m.Bank.Name
	}
	return withRefs
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                t.ID,
		FlowType:          string(t.FlowType),
		CategoryID:        t.CategoryID,
		SubcategoryID:     t.SubcategoryID,
		SupplierID:        t.SupplierID,
		BankID:            t.BankID,
		Description:       t.Description,
		Value:             t.Value,
		Interest:          t.Interest,
		TotalValue:        t.TotalValue,
		DueDate:           t.DueDate,
		PaymentDate:       t.PaymentDate,
		Status:            string(t.Status),
		IsRecurrent:       t.IsRecurrent,
		RecurrencePeriod:  string(t.RecurrencePeriod),
		RecurrenceGroupID: t.RecurrenceGroupID,
		Notes:             t.Notes,
		IsForecast:        t.IsForecast,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
