package resilience

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// HTTPStatusError carries a non-2xx response from an upstream provider
// together with a truncated copy of the body for logs.
type HTTPStatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return e.Operation + ": unexpected status " + http.StatusText(e.StatusCode)
	}
	return e.Operation + ": unexpected status " + http.StatusText(e.StatusCode) + ": " + e.Body
}

// ClassifyHTTPError is the shared classifier for REST clients. Network
// faults, 5xx and 429 responses are retryable; other 4xx responses are
// caller mistakes and never trip the breaker.
func ClassifyHTTPError(err error) ErrorClassification {
	if err == nil {
		return ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrorClassification{Retryable: false, RecordFailure: false}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return ErrorClassification{Retryable: true, RecordFailure: true}
		case statusErr.StatusCode >= 500:
			return ErrorClassification{Retryable: true, RecordFailure: true}
		default:
			return ErrorClassification{Retryable: false, RecordFailure: false}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrorClassification{Retryable: true, RecordFailure: true}
	}

	// Unknown transport failure. Assume transient.
	return ErrorClassification{Retryable: true, RecordFailure: true}
}
