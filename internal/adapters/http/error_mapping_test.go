package httpadapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

func TestMapErrorToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid ticket data", domain.WrapError(domain.ErrInvalidTicketData, "decode", errors.New("bad json")), http.StatusBadRequest},
		{"ticket not found", domain.WrapError(domain.ErrTicketNotFound, "get", errors.New("id T-404")), http.StatusNotFound},
		{"temporary", domain.WrapError(domain.ErrTemporary, "publish", errors.New("nats down")), http.StatusServiceUnavailable},
		{"classifier down", domain.WrapError(domain.ErrClassifierUnavailable, "classify", errors.New("timeout")), http.StatusBadGateway},
		{"retrieval down", domain.WrapError(domain.ErrRetrievalUnavailable, "search", errors.New("timeout")), http.StatusBadGateway},
		{"generation failed", domain.WrapError(domain.ErrGenerationFailed, "generate", errors.New("quota")), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapErrorToHTTPStatus(tc.err); got != tc.want {
				t.Fatalf("mapErrorToHTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}
