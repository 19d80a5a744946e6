package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating one transaction.
// Updates apply to a single record; siblings of a recurrence group are not
// touched.
type UpdateTransactionInput struct {
	ID            uint
	CategoryID    *uint
	SubcategoryID *uint
	SupplierID    *uint
	BankID        *uint
	Description   string
	Value         decimal.Decimal
	Interest      decimal.Decimal
	DueDate       time.Time
	PaymentDate   *time.Time
	Status        entity.PaymentStatus
	Notes         string
	IsForecast    bool
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles updates to a single transaction record.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	cache           adapter.StatementCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.StatementCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
	}
}

// Execute updates the transaction, recomputing TotalValue from the new
// value and interest. The flow type of an existing transaction is immutable.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if !input.Value.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveValue,
			"value must be greater than zero",
			domainerror.ErrNonPositiveValue,
		)
	}

	if input.Interest.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeInterest,
			"interest must not be negative",
			domainerror.ErrNegativeInterest,
		)
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}

		if !category.Matches(existing.FlowType) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCategoryFlowMismatch,
				"category flow type does not match transaction",
				domainerror.ErrCategoryFlowMismatch,
			)
		}

		if input.SubcategoryID != nil {
			sub, err := uc.categoryRepo.FindSubcategoryByID(ctx, *input.SubcategoryID)
			if err != nil || sub.CategoryID != category.ID {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeSubcategoryNotInCategory,
					"subcategory does not belong to category",
					domainerror.ErrSubcategoryNotInCategory,
				)
			}
		}
	}

	existing.CategoryID = input.CategoryID
	existing.SubcategoryID = input.SubcategoryID
	existing.SupplierID = input.SupplierID
	existing.BankID = input.BankID
	existing.Description = input.Description
	existing.SetAmounts(input.Value, input.Interest)
	existing.DueDate = input.DueDate
	existing.PaymentDate = input.PaymentDate
	existing.Status = input.Status
	existing.Notes = input.Notes
	existing.IsForecast = input.IsForecast
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	invalidateStatements(ctx, uc.cache)

	return &UpdateTransactionOutput{Transaction: existing}, nil
}
