package httpadapter

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
	"github.com/atlasdesk/triage-assistant/internal/observability/metrics"
)

const maxUploadBytes = 10 << 20

type Router struct {
	analyzer ports.TicketAnalyzer
	uploader ports.TicketUploader
	queue    ports.BatchQueue
	repo     ports.TicketRepository
	metrics  *metrics.HTTPServerMetrics

	service        string
	rateLimitRPS   float64
	rateLimitBurst int
	maxInFlight    int
}

type Options struct {
	Service        string
	Metrics        *metrics.HTTPServerMetrics
	RateLimitRPS   float64
	RateLimitBurst int
	MaxInFlight    int
}

func NewRouter(
	analyzer ports.TicketAnalyzer,
	uploader ports.TicketUploader,
	queue ports.BatchQueue,
	repo ports.TicketRepository,
	options Options,
) *Router {
	service := options.Service
	if service == "" {
		service = "api"
	}
	return &Router{
		analyzer:       analyzer,
		uploader:       uploader,
		queue:          queue,
		repo:           repo,
		metrics:        options.Metrics,
		service:        service,
		rateLimitRPS:   options.RateLimitRPS,
		rateLimitBurst: options.RateLimitBurst,
		maxInFlight:    options.MaxInFlight,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/tickets", rt.uploadTickets)
	mux.HandleFunc("/v1/tickets/", rt.analyzeTicketByID)
	mux.HandleFunc("/v1/analyze", rt.analyzeText)
	mux.HandleFunc("/v1/batches", rt.startBatch)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.service, handler)
	}
	if rt.rateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.rateLimitRPS, rt.rateLimitBurst)
	}
	if rt.maxInFlight > 0 {
		handler = backpressureMiddleware(handler, rt.maxInFlight, 50*time.Millisecond)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) uploadTickets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}

	count, err := rt.uploader.Upload(r.Context(), payload)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordUploadedTickets(rt.service, count)
	}
	writeJSON(w, http.StatusCreated, map[string]int{"uploaded": count})
}

func (rt *Router) analyzeTicketByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/tickets/")
	ticketID, ok := strings.CutSuffix(rest, "/analyze")
	if !ok || ticketID == "" || strings.Contains(ticketID, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	start := time.Now()
	outcome, err := rt.analyzer.AnalyzeByID(r.Context(), ticketID)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	rt.recordOutcome(outcome, start)
	writeJSON(w, http.StatusOK, toAnalysisResponse(outcome))
}

func (rt *Router) analyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	start := time.Now()
	outcome, err := rt.analyzer.AnalyzeText(r.Context(), req.Text)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	rt.recordOutcome(outcome, start)
	writeJSON(w, http.StatusOK, toAnalysisResponse(outcome))
}

// startBatch enqueues one NATS message per ticket. With no explicit
// ticket list the whole store is queued.
func (rt *Router) startBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		TicketIDs []string `json:"ticket_ids"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
	}

	ticketIDs := req.TicketIDs
	if len(ticketIDs) == 0 {
		ids, err := rt.repo.ListIDs(r.Context())
		if err != nil {
			writeMappedError(w, err)
			return
		}
		ticketIDs = ids
	}
	if len(ticketIDs) == 0 {
		writeError(w, http.StatusBadRequest, "no tickets to analyze")
		return
	}

	for _, ticketID := range ticketIDs {
		if err := rt.queue.PublishTicketForAnalysis(r.Context(), ticketID); err != nil {
			writeMappedError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"batch_id": uuid.NewString(),
		"enqueued": len(ticketIDs),
	})
}

type analysisResponse struct {
	Sentiment string   `json:"sentiment"`
	Emoji     string   `json:"emoji"`
	Priority  string   `json:"priority"`
	Topic     string   `json:"topic"`
	Routing   string   `json:"routing"`
	Answer    string   `json:"answer,omitempty"`
	Sources   []string `json:"sources,omitempty"`
}

func toAnalysisResponse(outcome *domain.TriageOutcome) analysisResponse {
	return analysisResponse{
		Sentiment: string(outcome.Result.Sentiment),
		Emoji:     outcome.Emoji,
		Priority:  string(outcome.Result.Priority),
		Topic:     string(outcome.Result.Topic),
		Routing:   string(outcome.Routing),
		Answer:    outcome.Answer,
		Sources:   outcome.Sources,
	}
}

func (rt *Router) recordOutcome(outcome *domain.TriageOutcome, start time.Time) {
	if rt.metrics == nil {
		return
	}
	rt.metrics.RecordAnalysis(
		rt.service,
		string(outcome.Routing),
		string(outcome.Result.Topic),
		string(outcome.Result.Priority),
		string(outcome.Result.Sentiment),
		len(outcome.Sources),
		time.Since(start),
	)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeMappedError(w http.ResponseWriter, err error) {
	writeError(w, mapErrorToHTTPStatus(err), err.Error())
}
