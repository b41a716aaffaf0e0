// Package tei implements the embedder port against a locally served
// text-embeddings-inference style HTTP API.
package tei

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atlasdesk/triage-assistant/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	dimension  int
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL string, dimension int, executor *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		dimension:  dimension,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		executor:   executor,
	}
}

type embedRequest struct {
	Inputs []string `json:"inputs"`
}

func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var vectors [][]float32
	err := c.executor.Execute(ctx, "embedding.embed", func(ctx context.Context) error {
		return c.postJSON(ctx, "/embed", embedRequest{Inputs: texts}, &vectors)
	}, resilience.ClassifyHTTPError)
	if err != nil {
		return nil, err
	}

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embed: got %d vectors for %d inputs", len(vectors), len(texts))
	}
	for i, vector := range vectors {
		if len(vector) != c.dimension {
			return nil, fmt.Errorf("embed: vector %d has dimension %d, want %d", i, len(vector), c.dimension)
		}
	}
	return vectors, nil
}

func (c *Client) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embed: empty result")
	}
	return vectors[0], nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("embedding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &resilience.HTTPStatusError{
			Operation:  "embedding.embed",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode embed response: %w", err)
	}
	return nil
}
