package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

// BatchAnalysisUseCase triages a set of stored tickets through a
// bounded worker pool. External LLM and embedding providers are rate
// limited, so the pool is never unbounded and every call waits on the
// shared limiter. Cancellation granularity is one ticket: aggregate
// counts only ever include completed analyses.
type BatchAnalysisUseCase struct {
	analyzer *TicketAnalysisUseCase
	workers  int
	limiter  *rate.Limiter
}

func NewBatchAnalysisUseCase(analyzer *TicketAnalysisUseCase, workers int, ratePerSecond float64) *BatchAnalysisUseCase {
	if workers <= 0 {
		workers = 8
	}
	limit := rate.Limit(ratePerSecond)
	if ratePerSecond <= 0 {
		limit = rate.Inf
	}
	return &BatchAnalysisUseCase{
		analyzer: analyzer,
		workers:  workers,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

func (uc *BatchAnalysisUseCase) AnalyzeBatch(ctx context.Context, ticketIDs []string) (*domain.BatchSummary, error) {
	summary := &domain.BatchSummary{
		BatchID:       uuid.NewString(),
		EmotionCounts: make(map[domain.EmotionLabel]int),
	}

	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := uc.workers
	if workers > len(ticketIDs) && len(ticketIDs) > 0 {
		workers = len(ticketIDs)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ticketID := range jobs {
				if err := uc.limiter.Wait(ctx); err != nil {
					return
				}

				outcome, err := uc.analyzer.AnalyzeByID(ctx, ticketID)

				mu.Lock()
				if err != nil {
					summary.Failed++
				} else {
					summary.Analyzed++
					summary.EmotionCounts[outcome.Result.Sentiment]++
					if outcome.Routing == domain.RoutingAnswered {
						summary.AnsweredCount++
					} else {
						summary.ReferredCount++
					}
				}
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, ticketID := range ticketIDs {
		select {
		case <-ctx.Done():
			summary.Cancelled = true
			break dispatch
		case jobs <- ticketID:
		}
	}
	close(jobs)
	wg.Wait()

	if summary.Cancelled || errors.Is(ctx.Err(), context.Canceled) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		summary.Cancelled = true
	}
	return summary, nil
}
