package usecase

import (
	"context"
	"fmt"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
)

// TicketAnalysisUseCase composes sentiment, priority and topic
// classification into a per-ticket outcome and decides whether the
// ticket goes to RAG answering or to human support. The answerable
// topic set is configured data shared by the ticket-ID and free-text
// paths, so routing policy changes without touching classification.
type TicketAnalysisUseCase struct {
	sentiment *SentimentUseCase
	priority  *PriorityResolver
	topics    *TopicTagger
	retriever *RetrieveUseCase
	generator *AnswerGenerator
	repo      ports.TicketRepository

	answerable    domain.TopicSet
	retrievalTopK int
	answerBackend domain.LLMBackend
}

func NewTicketAnalysisUseCase(
	sentiment *SentimentUseCase,
	priority *PriorityResolver,
	topics *TopicTagger,
	retriever *RetrieveUseCase,
	generator *AnswerGenerator,
	repo ports.TicketRepository,
	answerable domain.TopicSet,
	retrievalTopK int,
	answerBackend domain.LLMBackend,
) *TicketAnalysisUseCase {
	return &TicketAnalysisUseCase{
		sentiment: sentiment,
		priority:  priority,
		topics:    topics,
		retriever: retriever,
		generator: generator,
		repo:      repo,

		answerable:    answerable,
		retrievalTopK: retrievalTopK,
		answerBackend: answerBackend,
	}
}

// AnalyzeText triages free ticket text.
func (uc *TicketAnalysisUseCase) AnalyzeText(ctx context.Context, body string) (*domain.TriageOutcome, error) {
	return uc.analyze(ctx, body)
}

// AnalyzeByID loads the ticket first; a missing ID fails before any
// classification is attempted.
func (uc *TicketAnalysisUseCase) AnalyzeByID(ctx context.Context, ticketID string) (*domain.TriageOutcome, error) {
	ticket, err := uc.repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("load ticket: %w", err)
	}
	return uc.analyze(ctx, ticket.Body)
}

func (uc *TicketAnalysisUseCase) analyze(ctx context.Context, body string) (*domain.TriageOutcome, error) {
	result, err := uc.classify(ctx, body)
	if err != nil {
		return nil, err
	}

	outcome := &domain.TriageOutcome{
		Result: result,
		Emoji:  result.Sentiment.Emoji(),
	}

	if !uc.answerable.Contains(result.Topic) {
		outcome.Routing = domain.RoutingReferredToSupport
		return outcome, nil
	}

	retrieval, err := uc.retriever.Retrieve(ctx, body, uc.retrievalTopK)
	if err != nil {
		return nil, err
	}

	answer, err := uc.generator.Generate(ctx, body, retrieval.Context(), uc.answerBackend)
	if err != nil {
		return nil, err
	}

	outcome.Routing = domain.RoutingAnswered
	outcome.Answer = answer
	outcome.Sources = retrieval.SourceURLs()
	return outcome, nil
}

// classify runs the three classifiers. They are logically independent;
// order here is not a correctness requirement.
func (uc *TicketAnalysisUseCase) classify(ctx context.Context, body string) (domain.AnalysisResult, error) {
	sentiment, err := uc.sentiment.Classify(ctx, body)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	priority, err := uc.priority.Resolve(ctx, body)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	topic, err := uc.topics.Tag(ctx, body)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	return domain.AnalysisResult{
		Sentiment: sentiment,
		Priority:  priority,
		Topic:     topic,
	}, nil
}
