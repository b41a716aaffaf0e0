package bootstrap

import (
	"context"
	"fmt"

	"github.com/atlasdesk/triage-assistant/internal/config"
	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
	"github.com/atlasdesk/triage-assistant/internal/core/usecase"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/chunking"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/embedding/tei"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/llm/gemini"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/llm/groq"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/llm/keypool"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/queue/nats"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/repository/postgres"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/resilience"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/sentiment/hfserve"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/storage/localfs"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/vector/pinecone"
)

type App struct {
	Config config.Config
	Policy config.TriagePolicy

	Queue *nats.Queue
	Repo  ports.TicketRepository

	AnalyzeUC ports.TicketAnalyzer
	UploadUC  ports.TicketUploader
	BatchUC   ports.BatchAnalyzer
	IngestUC  ports.DocumentIngestor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	policy, err := config.LoadTriagePolicy(cfg.PolicyPath)
	if err != nil {
		return nil, fmt.Errorf("load triage policy: %w", err)
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewTicketRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init batch queue: %w", err)
	}

	backends, err := buildBackends(cfg, executor)
	if err != nil {
		queue.Close()
		_ = db.Close()
		return nil, err
	}
	classifyModel, err := pickBackend(backends, cfg.ClassifyBackend)
	if err != nil {
		queue.Close()
		_ = db.Close()
		return nil, fmt.Errorf("classify backend: %w", err)
	}
	answerBackend, ok := domain.ParseLLMBackend(cfg.AnswerBackend)
	if !ok {
		queue.Close()
		_ = db.Close()
		return nil, fmt.Errorf("answer backend: unknown backend %q", cfg.AnswerBackend)
	}
	if _, ok := backends[answerBackend]; !ok {
		queue.Close()
		_ = db.Close()
		return nil, fmt.Errorf("answer backend %s is not configured", answerBackend)
	}

	classifier := hfserve.New(cfg.SentimentURL, executor)
	embedder := tei.New(cfg.EmbeddingURL, cfg.EmbeddingDimension, executor)
	vectorDB := pinecone.New(cfg.PineconeURL, cfg.PineconeAPIKey, executor)
	chunker := chunking.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)

	sentimentUC := usecase.NewSentimentUseCase(classifier)
	priority := usecase.NewPriorityResolver(classifyModel, policy.HighKeywords, policy.MediumKeywords, policy.LowKeywords)
	topics := usecase.NewTopicTagger(classifyModel)
	retriever := usecase.NewRetrieveUseCase(embedder, vectorDB)
	generator := usecase.NewAnswerGenerator(backends)

	analyzeUC := usecase.NewTicketAnalysisUseCase(
		sentimentUC, priority, topics, retriever, generator, repo,
		policy.AnswerableTopics, cfg.RetrievalTopK, answerBackend,
	)
	uploadUC := usecase.NewUploadTicketsUseCase(repo, storage)
	batchUC := usecase.NewBatchAnalysisUseCase(analyzeUC, cfg.BatchWorkers, cfg.BatchRatePerSecond)
	ingestUC := usecase.NewIngestDocsUseCase(chunker, embedder, vectorDB, cfg.BatchWorkers, cfg.BatchRatePerSecond)

	return &App{
		Config: cfg,
		Policy: policy,

		Queue: queue,
		Repo:  repo,

		AnalyzeUC: analyzeUC,
		UploadUC:  uploadUC,
		BatchUC:   batchUC,
		IngestUC:  ingestUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func buildBackends(cfg config.Config, executor *resilience.Executor) (map[domain.LLMBackend]ports.ChatModel, error) {
	backends := make(map[domain.LLMBackend]ports.ChatModel, 2)

	if cfg.GeminiAPIKey != "" {
		backends[domain.BackendGemini] = gemini.New(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, executor)
	}
	if len(cfg.GroqAPIKeys) > 0 {
		pool, err := keypool.New(cfg.GroqAPIKeys)
		if err != nil {
			return nil, fmt.Errorf("groq credentials: %w", err)
		}
		backends[domain.BackendGroq] = groq.New(cfg.GroqBaseURL, cfg.GroqModel, pool, executor)
	}
	if len(backends) == 0 {
		return nil, fmt.Errorf("no llm backend configured: set GEMINI_API_KEY or GROQ_API_KEYS")
	}
	return backends, nil
}

func pickBackend(backends map[domain.LLMBackend]ports.ChatModel, name string) (ports.ChatModel, error) {
	backend, ok := domain.ParseLLMBackend(name)
	if !ok {
		return nil, fmt.Errorf("unknown backend %q", name)
	}
	model, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("backend %s is not configured", backend)
	}
	return model, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
