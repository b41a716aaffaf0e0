package usecase

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
)

// IngestDocsUseCase splits scraped documentation pages into chunks,
// embeds them with the same model used at query time, and upserts them
// into the vector index. Pages are processed by a bounded pool with
// embedding calls throttled against provider rate limits.
type IngestDocsUseCase struct {
	chunker  ports.Chunker
	embedder ports.Embedder
	vectorDB ports.VectorStore
	workers  int
	limiter  *rate.Limiter
}

func NewIngestDocsUseCase(
	chunker ports.Chunker,
	embedder ports.Embedder,
	vectorDB ports.VectorStore,
	workers int,
	ratePerSecond float64,
) *IngestDocsUseCase {
	if workers <= 0 {
		workers = 8
	}
	limit := rate.Limit(ratePerSecond)
	if ratePerSecond <= 0 {
		limit = rate.Inf
	}
	return &IngestDocsUseCase{
		chunker:  chunker,
		embedder: embedder,
		vectorDB: vectorDB,
		workers:  workers,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// IngestPages returns the number of chunks indexed. The first page
// failure aborts the run; chunks already upserted stay indexed, the
// operation is independently retryable.
func (uc *IngestDocsUseCase) IngestPages(ctx context.Context, pages []domain.DocumentPage) (int, error) {
	jobs := make(chan domain.DocumentPage)
	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error
	indexed := 0

	workers := uc.workers
	if workers > len(pages) && len(pages) > 0 {
		workers = len(pages)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range jobs {
				count, err := uc.ingestPage(ctx, page)

				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = fmt.Errorf("ingest %s: %w", page.URL, err)
				}
				indexed += count
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, page := range pages {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- page:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return indexed, firstErr
	}
	if err := ctx.Err(); err != nil {
		return indexed, err
	}
	return indexed, nil
}

func (uc *IngestDocsUseCase) ingestPage(ctx context.Context, page domain.DocumentPage) (int, error) {
	chunks := uc.chunker.Split(page.Text)
	if len(chunks) == 0 {
		return 0, nil
	}

	if err := uc.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	vectors, err := uc.embedder.Embed(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("vectors/chunks mismatch: %d/%d", len(vectors), len(chunks))
	}

	docChunks := make([]domain.DocumentChunk, 0, len(chunks))
	for _, chunk := range chunks {
		docChunks = append(docChunks, domain.DocumentChunk{Source: page.URL, Text: chunk})
	}
	if err := uc.vectorDB.Upsert(ctx, docChunks, vectors); err != nil {
		return 0, fmt.Errorf("upsert chunks: %w", err)
	}
	return len(chunks), nil
}
