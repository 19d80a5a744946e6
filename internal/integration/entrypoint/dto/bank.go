package dto

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// CreateBankRequest represents the request body for bank-account creation.
type CreateBankRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=255"`
	Account        string  `json:"account,omitempty" binding:"omitempty,max=50"`
	Agency         string  `json:"agency,omitempty" binding:"omitempty,max=50"`
	InitialBalance float64 `json:"initial_balance"`
}

// UpdateBankRequest represents the request body for bank-account update.
type UpdateBankRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=255"`
	Account        string  `json:"account,omitempty" binding:"omitempty,max=50"`
	Agency         string  `json:"agency,omitempty" binding:"omitempty,max=50"`
	InitialBalance float64 `json:"initial_balance"`
	CurrentBalance float64 `json:"current_balance"`
}

// BankResponse represents a bank account in API responses.
type BankResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Account        string    `json:"account"`
	Agency         string    `json:"agency"`
	InitialBalance string    `json:"initial_balance"`
	CurrentBalance string    `json:"current_balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BankListResponse represents the response for listing bank accounts.
type BankListResponse struct {
	Banks               []BankResponse `json:"banks"`
	TotalInitialBalance string         `json:"total_initial_balance"`
}

// ToBankResponse converts a domain BankAccount to a BankResponse DTO.
func ToBankResponse(bank *entity.BankAccount) BankResponse {
	return BankResponse{
		ID:             bank.ID,
		Name:           bank.Name,
		Account:        bank.Account,
		Agency:         bank.Agency,
		InitialBalance: bank.InitialBalance.String(),
		CurrentBalance: bank.CurrentBalance.String(),
		CreatedAt:      bank.CreatedAt,
		UpdatedAt:      bank.UpdatedAt,
	}
}
