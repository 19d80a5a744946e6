// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Supplier represents a supplier record. Suppliers are only ever
// soft-deleted (Active=false) so transaction history keeps its references.
type Supplier struct {
	ID        uint
	Name      string
	Document  string
	Email     string
	Phone     string
	Address   string
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSupplier creates a new active Supplier entity.
func NewSupplier(name, document, email, phone, address, notes string) *Supplier {
	now := time.Now().UTC()

	return &Supplier{
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Notes:     notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
