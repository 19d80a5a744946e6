package dto

import (
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for writing a budget
// line. Month uses the "2006-01" format and is normalized server-side.
type UpsertBudgetRequest struct {
	CategoryID    uint    `json:"category_id" binding:"required"`
	SubcategoryID *uint   `json:"subcategory_id,omitempty"`
	Month         string  `json:"month" binding:"required"`
	PlannedValue  float64 `json:"planned_value"`
}

// BudgetLineResponse represents a budget line in API responses.
type BudgetLineResponse struct {
	ID              uint      `json:"id"`
	CategoryID      uint      `json:"category_id"`
	CategoryName    string    `json:"category_name,omitempty"`
	CategoryFlow    string    `json:"category_flow,omitempty"`
	SubcategoryID   *uint     `json:"subcategory_id,omitempty"`
	SubcategoryName string    `json:"subcategory_name,omitempty"`
	Month           string    `json:"month"`
	PlannedValue    string    `json:"planned_value"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing a month's budget.
type BudgetListResponse struct {
	Month string               `json:"month"`
	Lines []BudgetLineResponse `json:"lines"`
}

// BudgetComparisonResponse represents one reconciliation row: a category's
// planned budget against its paid actuals.
type BudgetComparisonResponse struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	FlowType     string `json:"flow_type"`
	Planned      string `json:"planned"`
	Actual       string `json:"actual"`
	Difference   string `json:"difference"`
}

// BudgetReconciliationResponse represents the response for a month's
// budget reconciliation.
type BudgetReconciliationResponse struct {
	Month string                     `json:"month"`
	Rows  []BudgetComparisonResponse `json:"rows"`
}

// ToBudgetLineResponse converts a domain BudgetLine to a BudgetLineResponse DTO.
func ToBudgetLineResponse(line *entity.BudgetLine) BudgetLineResponse {
	return BudgetLineResponse{
		ID:            line.ID,
		CategoryID:    line.CategoryID,
		SubcategoryID: line.SubcategoryID,
		Month:         line.YearMonth.Format("2006-01"),
		PlannedValue:  line.PlannedValue.String(),
		CreatedAt:     line.CreatedAt,
		UpdatedAt:     line.UpdatedAt,
	}
}

// ToBudgetLineResponseWithNames converts a budget line joined with its
// category and subcategory names to a BudgetLineResponse DTO.
func ToBudgetLineResponseWithNames(line *entity.BudgetLineWithNames) BudgetLineResponse {
	response := ToBudgetLineResponse(line.Line)
	response.CategoryName = line.CategoryName
	response.CategoryFlow = string(line.CategoryFlow)
	response.SubcategoryName = line.SubcategoryName
	return response
}

// ToBudgetComparisonResponse converts a domain BudgetComparison to a
// BudgetComparisonResponse DTO.
func ToBudgetComparisonResponse(row *entity.BudgetComparison) BudgetComparisonResponse {
	return BudgetComparisonResponse{
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		FlowType:     string(row.FlowType),
		Planned:      row.Planned.String(),
		Actual:       row.Actual.String(),
		Difference:   row.Planned.Sub(row.Actual).String(),
	}
}
