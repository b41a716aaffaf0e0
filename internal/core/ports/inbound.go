package ports

import (
	"context"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

// TicketAnalyzer is the inbound contract for per-ticket triage.
type TicketAnalyzer interface {
	AnalyzeText(ctx context.Context, body string) (*domain.TriageOutcome, error)
	AnalyzeByID(ctx context.Context, ticketID string) (*domain.TriageOutcome, error)
}

// TicketUploader is the inbound contract for bulk ticket uploads.
type TicketUploader interface {
	Upload(ctx context.Context, payload []byte) (int, error)
}

// BatchAnalyzer runs triage over a set of stored tickets.
type BatchAnalyzer interface {
	AnalyzeBatch(ctx context.Context, ticketIDs []string) (*domain.BatchSummary, error)
}

// DocumentIngestor indexes scraped documentation pages for retrieval.
type DocumentIngestor interface {
	IngestPages(ctx context.Context, pages []domain.DocumentPage) (int, error)
}
