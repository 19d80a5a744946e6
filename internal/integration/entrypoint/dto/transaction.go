package dto

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Recurring templates expand into occurrences server-side; the
// total value is always derived from value plus interest.
type CreateTransactionRequest struct {
	FlowType         string  `json:"flow_type" binding:"required,oneof=inflow outflow"`
	CategoryID       *uint   `json:"category_id,omitempty"`
	SubcategoryID    *uint   `json:"subcategory_id,omitempty"`
	SupplierID       *uint   `json:"supplier_id,omitempty"`
	BankID           *uint   `json:"bank_id,omitempty"`
	Description      string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Value            float64 `json:"value" binding:"required"`
	Interest         float64 `json:"interest,omitempty"`
	DueDate          string  `json:"due_date" binding:"required"`
	PaymentDate      *string `json:"payment_date,omitempty"`
	Status           string  `json:"status,omitempty" binding:"omitempty,oneof=paid unpaid"`
	IsRecurrent      bool    `json:"is_recurrent,omitempty"`
	RecurrencePeriod string  `json:"recurrence_period,omitempty" binding:"omitempty,oneof=daily monthly yearly"`
	Occurrences      int     `json:"occurrences,omitempty"`
	Notes            string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	IsForecast       bool    `json:"is_forecast,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction
// update. The flow type of an existing transaction is immutable.
type UpdateTransactionRequest struct {
	CategoryID    *uint   `json:"category_id,omitempty"`
	SubcategoryID *uint   `json:"subcategory_id,omitempty"`
	SupplierID    *uint   `json:"supplier_id,omitempty"`
	BankID        *uint   `json:"bank_id,omitempty"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Value         float64 `json:"value" binding:"required"`
	Interest      float64 `json:"interest,omitempty"`
	DueDate       string  `json:"due_date" binding:"required"`
	PaymentDate   *string `json:"payment_date,omitempty"`
	Status        string  `json:"status,omitempty" binding:"omitempty,oneof=paid unpaid"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	IsForecast    bool    `json:"is_forecast,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                uint      `json:"id"`
	FlowType          string    `json:"flow_type"`
	CategoryID        *uint     `json:"category_id,omitempty"`
	CategoryName      string    `json:"category_name,omitempty"`
	SubcategoryID     *uint     `json:"subcategory_id,omitempty"`
	SubcategoryName   string    `json:"subcategory_name,omitempty"`
	SupplierID        *uint     `json:"supplier_id,omitempty"`
	SupplierName      string    `json:"supplier_name,omitempty"`
	BankID            *uint     `json:"bank_id,omitempty"`
	BankName          string    `json:"bank_name,omitempty"`
	Description       string    `json:"description"`
	Value             string    `json:"value"`
	Interest          string    `json:"interest"`
	TotalValue        string    `json:"total_value"`
	DueDate           string    `json:"due_date"`
	PaymentDate       *string   `json:"payment_date,omitempty"`
	Status            string    `json:"status"`
	IsRecurrent       bool      `json:"is_recurrent"`
	RecurrencePeriod  string    `json:"recurrence_period,omitempty"`
	RecurrenceGroupID *string   `json:"recurrence_group_id,omitempty"`
	Notes             string    `json:"notes"`
	IsForecast        bool      `json:"is_forecast"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CreateTransactionResponse represents the response for transaction
// creation, including every record a recurrence expanded into.
type CreateTransactionResponse struct {
	CreatedCount      int                   `json:"created_count"`
	RecurrenceGroupID *string               `json:"recurrence_group_id,omitempty"`
	Transactions      []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:               txn.ID,
		FlowType:         string(txn.FlowType),
		CategoryID:       txn.CategoryID,
		SubcategoryID:    txn.SubcategoryID,
		SupplierID:       txn.SupplierID,
		BankID:           txn.BankID,
		Description:      txn.Description,
		Value:            txn.Value.String(),
		Interest:         txn.Interest.String(),
		TotalValue:       txn.TotalValue.String(),
		DueDate:          txn.DueDate.Format("2006-01-02"),
		Status:           string(txn.Status),
		IsRecurrent:      txn.IsRecurrent,
		RecurrencePeriod: string(txn.RecurrencePeriod),
		Notes:            txn.Notes,
		IsForecast:       txn.IsForecast,
		CreatedAt:        txn.CreatedAt,
		UpdatedAt:        txn.UpdatedAt,
	}

	if txn.PaymentDate != nil {
		paymentDate := txn.PaymentDate.Format("2006-01-02")
		response.PaymentDate = &paymentDate
	}
	if txn.RecurrenceGroupID != nil {
		groupID := txn.RecurrenceGroupID.String()
		response.RecurrenceGroupID = &groupID
	}

	return response
}

// ToTransactionResponseWithRefs converts a transaction joined with its
// reference names to a TransactionResponse DTO.
func ToTransactionResponseWithRefs(txn *entity.TransactionWithRefs) TransactionResponse {
	response := ToTransactionResponse(txn.Transaction)
	response.CategoryName = txn.CategoryName
	response.SubcategoryName = txn.SubcategoryName
	response.SupplierName = txn.SupplierName
	response.BankName = txn.BankName
	return response
}
