// Package error defines domain-specific errors for the BK Finance backend.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidFlowType is returned when the flow type is not inflow or outflow.
	ErrInvalidFlowType = errors.New("invalid flow type")

	// ErrNonPositiveValue is returned when the transaction value is zero or negative.
	ErrNonPositiveValue = errors.New("value must be greater than zero")

	// ErrNegativeInterest is returned when the interest is negative.
	ErrNegativeInterest = errors.New("interest must not be negative")

	// ErrInvalidRecurrencePeriod is returned when the recurrence period is not daily, monthly or yearly.
	ErrInvalidRecurrencePeriod = errors.New("invalid recurrence period")

	// ErrInvalidOccurrenceCount is returned when the occurrence count is outside 1..24.
	ErrInvalidOccurrenceCount = errors.New("occurrence count out of range")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryFlowMismatch is returned when the category does not accept the transaction's flow type.
	ErrCategoryFlowMismatch = errors.New("category flow type does not match transaction")

	// ErrSubcategoryNotInCategory is returned when the subcategory does not belong to the chosen category.
	ErrSubcategoryNotInCategory = errors.New("subcategory does not belong to category")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFlowType          TransactionErrorCode = "TXN-010001"
	ErrCodeNonPositiveValue         TransactionErrorCode = "TXN-010002"
	ErrCodeNegativeInterest         TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidRecurrencePeriod  TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidOccurrenceCount   TransactionErrorCode = "TXN-010005"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010007"
	ErrCodeCategoryFlowMismatch     TransactionErrorCode = "TXN-010008"
	ErrCodeSubcategoryNotInCategory TransactionErrorCode = "TXN-010009"

	// Persistence errors (02XXXX)
	ErrCodeBatchInsertFailed TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
