// Package email provides digest dispatch via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/bk-finance/backend/internal/application/adapter"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// ResendClient implements the adapter.DigestSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send dispatches a digest via Resend. Errors are classified so callers can
// tell retryable failures from permanent ones.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendDigestInput) (*adapter.SendDigestResult, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      input.To,
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodePermanentDigestFailure,
				"permanent digest failure",
				err,
			)
		}
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeTemporaryDigestFailure,
			"temporary digest failure",
			err,
		)
	}

	return &adapter.SendDigestResult{ProviderID: resp.Id}, nil
}

// isPermanentError reports whether the failure will not succeed on retry.
// Permanent: 401, 403, 422. Temporary: 429 and 5xx.
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// MockDigestSender is a mock implementation for testing.
type MockDigestSender struct {
	SentDigests []adapter.SendDigestInput
	ShouldFail  bool
	FailError   error
	IsPermanent bool
}

// NewMockDigestSender creates a new mock digest sender.
func NewMockDigestSender() *MockDigestSender {
	return &MockDigestSender{
		SentDigests: make([]adapter.SendDigestInput, 0),
	}
}

// Send implements the adapter.DigestSender interface for testing.
func (m *MockDigestSender) Send(_ context.Context, input adapter.SendDigestInput) (*adapter.SendDigestResult, error) {
	if m.ShouldFail {
		code := domainerror.ErrCodeTemporaryDigestFailure
		message := "mock temporary failure"
		if m.IsPermanent {
			code = domainerror.ErrCodePermanentDigestFailure
			message = "mock permanent failure"
		}
		return nil, domainerror.NewNotificationError(code, message, m.FailError)
	}

	m.SentDigests = append(m.SentDigests, input)
	return &adapter.SendDigestResult{
		ProviderID: fmt.Sprintf("mock-%d", len(m.SentDigests)),
	}, nil
}

// SetFailure configures the mock to fail with the given error.
func (m *MockDigestSender) SetFailure(err error, permanent bool) {
	m.ShouldFail = true
	m.FailError = err
	m.IsPermanent = permanent
}

// Reset clears all sent digests and failure configuration.
func (m *MockDigestSender) Reset() {
	m.SentDigests = make([]adapter.SendDigestInput, 0)
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.DigestSender = (*ResendClient)(nil)
	_ adapter.DigestSender = (*MockDigestSender)(nil)
)
