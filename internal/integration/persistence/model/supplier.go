// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// SupplierModel represents the suppliers table in the database.
type SupplierModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Document  string    `gorm:"type:varchar(32)"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(32)"`
	Address   string    `gorm:"type:text"`
	Notes     string    `gorm:"type:text"`
	Active    bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SupplierModel.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToEntity converts a SupplierModel to a domain Supplier entity.
func (m *SupplierModel) ToEntity() *entity.Supplier {
	return &entity.Supplier{
		ID:        m.ID,
		Name:      m.Name,
		Document:  m.Document,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		Notes:     m.Notes,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SupplierFromEntity converts a domain Supplier entity to a SupplierModel.
func SupplierFromEntity(s *entity.Supplier) *SupplierModel {
	return &SupplierModel{
		ID:        s.ID,
		Name:      s.Name,
		Document:  s.Document,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		Notes:     s.Notes,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
