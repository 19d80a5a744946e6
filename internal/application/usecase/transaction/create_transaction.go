// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
// TotalValue is not accepted; it is always derived as Value + Interest.
type CreateTransactionInput struct {
	FlowType         entity.FlowType
	CategoryID       *uint
	SubcategoryID    *uint
	SupplierID       *uint
	BankID           *uint
	Description      string
	Value            decimal.Decimal
	Interest         decimal.Decimal
	DueDate          time.Time
	PaymentDate      *time.Time
	Status           entity.PaymentStatus
	IsRecurrent      bool
	RecurrencePeriod entity.RecurrencePeriod
	Occurrences      int
	Notes            string
	IsForecast       bool
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	CreatedCount      int
	RecurrenceGroupID *uuid.UUID
	Transactions      []*entity.Transaction
}

// CreateTransactionUseCase handles transaction creation, including the
// recurrence expansion and the atomic batch insert of every expanded record.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	cache           adapter.StatementCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.StatementCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
	}
}

// Execute validates the input, expands the recurrence and persists the whole
// batch atomically. A store failure on any record rolls back every record.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := uc.validateInput(ctx, input); err != nil {
		return nil, err
	}

	template := entity.NewTransaction(
		input.FlowType,
		input.Value,
		input.Interest,
		input.DueDate,
		input.Status,
		input.IsForecast,
	)
	template.CategoryID = input.CategoryID
	template.SubcategoryID = input.SubcategoryID
	template.SupplierID = input.SupplierID
	template.BankID = input.BankID
	template.Description = input.Description
	template.PaymentDate = input.PaymentDate
	template.Notes = input.Notes
	template.IsRecurrent = input.IsRecurrent
	if input.IsRecurrent {
		template.RecurrencePeriod = input.RecurrencePeriod
	}

	occurrences := 0
	if input.IsRecurrent {
		occurrences = input.Occurrences
	}
	records := ExpandRecurrence(template, occurrences)

	if err := uc.transactionRepo.CreateBatch(ctx, records); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeBatchInsertFailed,
			"failed to persist transaction batch",
			err,
		)
	}

	invalidateStatements(ctx, uc.cache)

	return &CreateTransactionOutput{
		CreatedCount:      len(records),
		RecurrenceGroupID: records[0].RecurrenceGroupID,
		Transactions:      records,
	}, nil
}

// validateInput rejects invalid input before anything is written.
func (uc *CreateTransactionUseCase) validateInput(ctx context.Context, input CreateTransactionInput) error {
	if input.FlowType != entity.FlowTypeInflow && input.FlowType != entity.FlowTypeOutflow {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidFlowType,
			"flow type must be 'inflow' or 'outflow'",
			domainerror.ErrInvalidFlowType,
		)
	}

	if !input.Value.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveValue,
			"value must be greater than zero",
			domainerror.ErrNonPositiveValue,
		)
	}

	if input.Interest.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeInterest,
			"interest must not be negative",
			domainerror.ErrNegativeInterest,
		)
	}

	if input.IsRecurrent {
		if !isValidRecurrencePeriod(input.RecurrencePeriod) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidRecurrencePeriod,
				"recurrence period must be 'daily', 'monthly' or 'yearly'",
				domainerror.ErrInvalidRecurrencePeriod,
			)
		}
		if input.Occurrences < 1 || input.Occurrences > entity.MaxRecurrenceOccurrences {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidOccurrenceCount,
				fmt.Sprintf("occurrences must be between 1 and %d", entity.MaxRecurrenceOccurrences),
				domainerror.ErrInvalidOccurrenceCount,
			)
		}
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}

		if !category.Matches(input.FlowType) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeCategoryFlowMismatch,
				"category flow type does not match transaction",
				domainerror.ErrCategoryFlowMismatch,
			)
		}

		if input.SubcategoryID != nil {
			sub, err := uc.categoryRepo.FindSubcategoryByID(ctx, *input.SubcategoryID)
			if err != nil || sub.CategoryID != category.ID {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeSubcategoryNotInCategory,
					"subcategory does not belong to category",
					domainerror.ErrSubcategoryNotInCategory,
				)
			}
		}
	}

	return nil
}

// isValidRecurrencePeriod validates the recurrence period.
func isValidRecurrencePeriod(period entity.RecurrencePeriod) bool {
	return period == entity.RecurrenceDaily ||
		period == entity.RecurrenceMonthly ||
		period == entity.RecurrenceYearly
}
