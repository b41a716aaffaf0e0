package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atlasdesk/triage-assistant/internal/bootstrap"
	"github.com/atlasdesk/triage-assistant/internal/config"
	"github.com/atlasdesk/triage-assistant/internal/observability/logging"
	"github.com/atlasdesk/triage-assistant/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger("worker", cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logger.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics("worker")
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", workerMetrics.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: metricsMux,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("worker_metrics_server_failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeTicketAnalysis(ctx, func(handlerCtx context.Context, ticketID string) error {
		analyzeCtx, cancel := context.WithTimeout(handlerCtx, 2*time.Minute)
		defer cancel()

		workerMetrics.StartTicket()
		start := time.Now()
		outcome, err := app.AnalyzeUC.AnalyzeByID(analyzeCtx, ticketID)
		workerMetrics.FinishTicket("worker", time.Since(start), err)
		if err != nil {
			return err
		}

		logger.Info("ticket_analyzed",
			"ticket_id", ticketID,
			"sentiment", outcome.Result.Sentiment,
			"priority", outcome.Result.Priority,
			"topic", outcome.Result.Topic,
			"routing", outcome.Routing,
			"sources", len(outcome.Sources),
		)
		return nil
	})
	if err != nil {
		logger.Error("worker_subscribe_failed", "error", err)
		os.Exit(1)
	}
}
