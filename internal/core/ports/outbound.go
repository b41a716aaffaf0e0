package ports

import (
	"context"
	"io"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

// SentimentClassifier maps free text to ranked emotion labels using the
// locally served classification model.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (domain.EmotionLabel, error)
}

// ChatModel is a stateless single-shot language model call: one system
// instruction, one user prompt, one completion. No streaming, no
// multi-turn state.
type ChatModel interface {
	Complete(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// Embedder builds fixed-dimension vectors for chunks and query text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// VectorStore performs nearest-neighbor search over indexed chunks and
// accepts new chunks during ingestion.
type VectorStore interface {
	Query(ctx context.Context, vector []float32, topK int) ([]domain.DocumentChunk, error)
	Upsert(ctx context.Context, chunks []domain.DocumentChunk, vectors [][]float32) error
}

// TicketRepository reads and bulk-writes the externally owned ticket store.
type TicketRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	UpsertBatch(ctx context.Context, tickets []domain.Ticket) error
	ListIDs(ctx context.Context) ([]string, error)
}

// ObjectStorage archives raw uploaded payloads.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// BatchQueue distributes batch-analysis jobs to workers.
type BatchQueue interface {
	PublishTicketForAnalysis(ctx context.Context, ticketID string) error
	SubscribeTicketAnalysis(ctx context.Context, handler func(context.Context, string) error) error
}

// Chunker splits documentation text into indexable chunks.
type Chunker interface {
	Split(text string) []string
}
