// Package error defines domain-specific errors for the BK Finance backend.
package error

// NotificationErrorCode defines error codes for digest dispatch errors.
type NotificationErrorCode string

const (
	// ErrCodePermanentDigestFailure marks failures that will not succeed on retry
	// (bad credentials, rejected payload).
	ErrCodePermanentDigestFailure NotificationErrorCode = "NTF-010001"

	// ErrCodeTemporaryDigestFailure marks failures worth retrying (rate limits,
	// upstream 5xx).
	ErrCodeTemporaryDigestFailure NotificationErrorCode = "NTF-010002"
)

// NotificationError represents a digest dispatch error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
