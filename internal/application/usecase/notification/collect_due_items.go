// Package notification contains the due-items digest use cases.
package notification

import (
	"context"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// AlertWindowDays is the look-ahead window of the due-items digest.
const AlertWindowDays = 3

// CollectDueItemsOutput holds the digest rows ordered by due date.
type CollectDueItemsOutput struct {
	Items []entity.DueItem
}

// CollectDueItemsUseCase gathers the unpaid transactions and unfinished
// activities due within the alert window.
type CollectDueItemsUseCase struct {
	source adapter.DueItemSource
}

// NewCollectDueItemsUseCase creates a new CollectDueItemsUseCase instance.
func NewCollectDueItemsUseCase(source adapter.DueItemSource) *CollectDueItemsUseCase {
	return &CollectDueItemsUseCase{source: source}
}

// Execute retrieves the due items.
func (uc *CollectDueItemsUseCase) Execute(ctx context.Context) (*CollectDueItemsOutput, error) {
	items, err := uc.source.ListDueItems(ctx, AlertWindowDays)
	if err != nil {
		return nil, err
	}

	return &CollectDueItemsOutput{Items: items}, nil
}
