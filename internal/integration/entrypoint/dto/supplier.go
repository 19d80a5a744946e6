package dto

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// CreateSupplierRequest represents the request body for supplier creation.
type CreateSupplierRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Document string `json:"document,omitempty" binding:"omitempty,max=50"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Address  string `json:"address,omitempty" binding:"omitempty,max=500"`
	Notes    string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateSupplierRequest represents the request body for supplier update.
type UpdateSupplierRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Document string `json:"document,omitempty" binding:"omitempty,max=50"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Address  string `json:"address,omitempty" binding:"omitempty,max=500"`
	Notes    string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// SupplierResponse represents a single supplier in API responses.
type SupplierResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse represents the response for listing suppliers.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a domain Supplier entity to a SupplierResponse DTO.
func ToSupplierResponse(supplier *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Document:  supplier.Document,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		Address:   supplier.Address,
		Notes:     supplier.Notes,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}
