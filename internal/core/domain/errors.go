package domain

import (
	"errors"
	"fmt"
)

// Typed failures of the triage pipeline. Infrastructure problems are
// never coerced into a default classification: a wrong default could
// mis-route a ticket.
var (
	ErrClassifierUnavailable = errors.New("sentiment classifier unavailable")
	ErrPriorityResolution    = errors.New("priority resolution failed")
	ErrTopicTagging          = errors.New("topic tagging failed")
	ErrRetrievalUnavailable  = errors.New("retrieval unavailable")
	ErrGenerationFailed      = errors.New("answer generation failed")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrInvalidTicketData     = errors.New("invalid ticket data")
	ErrTemporary             = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
