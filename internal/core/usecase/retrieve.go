package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
)

// RetrieveUseCase embeds a query and runs nearest-neighbor search
// against the documentation index. A sparse index returning fewer than
// k matches is a legitimate result; service failures are typed so
// callers can tell "found nothing" from "retrieval broke".
type RetrieveUseCase struct {
	embedder ports.Embedder
	vectorDB ports.VectorStore
}

func NewRetrieveUseCase(embedder ports.Embedder, vectorDB ports.VectorStore) *RetrieveUseCase {
	return &RetrieveUseCase{embedder: embedder, vectorDB: vectorDB}
}

// Retrieve requires a positive k; the default top-k is owned by config,
// not re-invented here.
func (uc *RetrieveUseCase) Retrieve(ctx context.Context, query string, k int) (domain.RetrievalResult, error) {
	if k <= 0 {
		return domain.RetrievalResult{}, domain.WrapError(
			domain.ErrRetrievalUnavailable,
			"retrieve",
			fmt.Errorf("non-positive top-k %d", k),
		)
	}

	vector, err := uc.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return domain.RetrievalResult{}, domain.WrapError(domain.ErrRetrievalUnavailable, "embed query", err)
	}

	chunks, err := uc.vectorDB.Query(ctx, vector, k)
	if err != nil {
		return domain.RetrievalResult{}, domain.WrapError(domain.ErrRetrievalUnavailable, "search vector index", err)
	}

	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].Score > chunks[j].Score
	})
	if len(chunks) > k {
		chunks = chunks[:k]
	}
	return domain.RetrievalResult{Chunks: chunks}, nil
}
