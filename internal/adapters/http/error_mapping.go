package httpadapter

import (
	"net/http"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/resilience"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidTicketData):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrTicketNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrTemporary), resilience.IsCircuitOpen(err):
		return http.StatusServiceUnavailable
	case domain.IsKind(err, domain.ErrClassifierUnavailable),
		domain.IsKind(err, domain.ErrRetrievalUnavailable),
		domain.IsKind(err, domain.ErrGenerationFailed),
		domain.IsKind(err, domain.ErrPriorityResolution),
		domain.IsKind(err, domain.ErrTopicTagging):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
