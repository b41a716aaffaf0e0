// Package hfserve talks to the locally served emotion classification
// model over its small HTTP API.
package hfserve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL string, executor *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		executor:   executor,
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type rankedLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify returns the highest-scoring emotion label for the text. The
// server responds with the full ranked label list; only the top entry
// matters here.
func (c *Client) Classify(ctx context.Context, text string) (domain.EmotionLabel, error) {
	var ranked []rankedLabel
	err := c.executor.Execute(ctx, "sentiment.classify", func(ctx context.Context) error {
		return c.postJSON(ctx, "/classify", classifyRequest{Text: text}, &ranked)
	}, resilience.ClassifyHTTPError)
	if err != nil {
		return "", err
	}

	if len(ranked) == 0 {
		return "", fmt.Errorf("sentiment classify: empty label list")
	}
	top := ranked[0]
	for _, candidate := range ranked[1:] {
		if candidate.Score > top.Score {
			top = candidate
		}
	}
	return domain.EmotionLabel(top.Label), nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sentiment request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &resilience.HTTPStatusError{
			Operation:  "sentiment.classify",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode classify response: %w", err)
	}
	return nil
}
