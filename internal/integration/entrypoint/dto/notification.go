package dto

import (
	"github.com/bk-finance/backend/internal/domain/entity"
)

// DueItemResponse represents one row of the due-items digest.
type DueItemResponse struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Extra   string `json:"extra,omitempty"`
}

// DueItemListResponse represents the response for listing due items.
type DueItemListResponse struct {
	Items []DueItemResponse `json:"items"`
}

// DigestRunResponse represents the outcome of a digest run.
type DigestRunResponse struct {
	ItemCount  int  `json:"item_count"`
	Dispatched bool `json:"dispatched"`
}

// ToDueItemResponse converts a domain DueItem to a DueItemResponse DTO.
func ToDueItemResponse(item entity.DueItem) DueItemResponse {
	return DueItemResponse{
		Kind:    string(item.Kind),
		Title:   item.Title,
		DueDate: item.DueDate.Format("2006-01-02"),
		Extra:   item.Extra,
	}
}
