package transaction

import (
	"context"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
)

// ListTransactionsInput represents the optional filters for listing.
type ListTransactionsInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *entity.PaymentStatus
	FlowType   *entity.FlowType
	IsForecast *bool
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithRefs
}

// ListTransactionsUseCase handles transaction listing with filters.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute retrieves transactions matching the filter, ordered by due date
// then flow type.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     input.Status,
		FlowType:   input.FlowType,
		IsForecast: input.IsForecast,
	})
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
