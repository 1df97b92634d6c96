package viator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx response from the provider.
type StatusError struct {
	Operation  string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status: %d", e.Operation, e.StatusCode)
}

// Retryable reports whether the status is worth another attempt.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	var decodeErr *decodeError
	return !errors.As(err, &decodeErr)
}

type decodeError struct {
	Err error
}

func (e *decodeError) Error() string {
	return fmt.Errorf("decode response: %w", e.Err).Error()
}

func (e *decodeError) Unwrap() error {
	return e.Err
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("status_%d", statusErr.StatusCode)
	}
	var decodeErr *decodeError
	if errors.As(err, &decodeErr) {
		return "decode"
	}
	return "transport"
}
