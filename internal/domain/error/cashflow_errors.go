// Package error defines domain-specific errors for the BK Finance backend.
package error

import "errors"

// Cash-flow statement errors.
var (
	// ErrInvalidWindow is returned when the statement window is not between 1 and 24 months.
	ErrInvalidWindow = errors.New("window must be between 1 and 24 months")
)

// CashflowErrorCode defines error codes for cash-flow statement errors.
type CashflowErrorCode string

const (
	ErrCodeInvalidWindow CashflowErrorCode = "CFS-010001"
)

// CashflowError represents a cash-flow statement error with code and message.
type CashflowError struct {
	Code    CashflowErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CashflowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CashflowError) Unwrap() error {
	return e.Err
}

// NewCashflowError creates a new CashflowError with the given code and message.
func NewCashflowError(code CashflowErrorCode, message string, err error) *CashflowError {
	return &CashflowError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
