// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount represents a bank account. The sum of all active accounts'
// initial balances seeds the running-balance row of cash-flow statements.
type BankAccount struct {
	ID             uint
	Name           string
	Account        string
	Agency         string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBankAccount creates a new active BankAccount entity. The current
// balance starts equal to the initial balance.
func NewBankAccount(name, account, agency string, initialBalance decimal.Decimal) *BankAccount {
	now := time.Now().UTC()

	return &BankAccount{
		Name:           name,
		Account:        account,
		Agency:         agency,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
