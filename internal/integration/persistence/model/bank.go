package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// BankModel represents the banks table in the database.
type BankModel struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	Name           string          `gorm:"type:varchar(255);not null;index"`
	Account        string          `gorm:"type:varchar(32)"`
	Agency         string          `gorm:"type:varchar(32)"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Active         bool            `gorm:"not null;default:true;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BankModel.
func (BankModel) TableName() string {
	return "banks"
}

// ToEntity converts a BankModel to a domain BankAccount entity.
func (m *BankModel) ToEntity() *entity.BankAccount {
	return &entity.BankAccount{
		ID:             m.ID,
		Name:           m.Name,
		Account:        m.Account,
		Agency:         m.Agency,
		InitialBalance: m.InitialBalance,
		CurrentBalance: m.CurrentBalance,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// BankFromEntity converts a domain BankAccount entity to a BankModel.
func BankFromEntity(b *entity.BankAccount) *BankModel {
	return &BankModel{
		ID:             b.ID,
		Name:           b.Name,
		Account:        b.Account,
		Agency:         b.Agency,
		InitialBalance: b.InitialBalance,
		CurrentBalance: b.CurrentBalance,
		Active:         b.Active,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
