// Package pinecone implements the vector store port against the
// Pinecone index REST API.
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL, apiKey string, executor *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		executor:   executor,
	}
}

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []struct {
		Score    float64           `json:"score"`
		Metadata map[string]string `json:"metadata"`
	} `json:"matches"`
}

func (c *Client) Query(ctx context.Context, vector []float32, topK int) ([]domain.DocumentChunk, error) {
	request := queryRequest{Vector: vector, TopK: topK, IncludeMetadata: true}

	var response queryResponse
	err := c.executor.Execute(ctx, "vector.query", func(ctx context.Context) error {
		return c.postJSON(ctx, "/query", "vector.query", request, &response)
	}, resilience.ClassifyHTTPError)
	if err != nil {
		return nil, err
	}

	chunks := make([]domain.DocumentChunk, 0, len(response.Matches))
	for _, match := range response.Matches {
		chunks = append(chunks, domain.DocumentChunk{
			Source: match.Metadata["source"],
			Text:   match.Metadata["text"],
			Score:  match.Score,
		})
	}
	return chunks, nil
}

type upsertVector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata"`
}

func (c *Client) Upsert(ctx context.Context, chunks []domain.DocumentChunk, vectors [][]float32) error {
	if len(chunks) == 0 {
		return nil
	}
	if len(chunks) != len(vectors) {
		return fmt.Errorf("pinecone upsert: %d chunks for %d vectors", len(chunks), len(vectors))
	}

	payload := struct {
		Vectors []upsertVector `json:"vectors"`
	}{Vectors: make([]upsertVector, 0, len(chunks))}

	for i, chunk := range chunks {
		payload.Vectors = append(payload.Vectors, upsertVector{
			ID:     uuid.NewString(),
			Values: vectors[i],
			Metadata: map[string]string{
				"source": chunk.Source,
				"text":   chunk.Text,
			},
		})
	}

	return c.executor.Execute(ctx, "vector.upsert", func(ctx context.Context) error {
		return c.postJSON(ctx, "/vectors/upsert", "vector.upsert", payload, &struct{}{})
	}, resilience.ClassifyHTTPError)
}

func (c *Client) postJSON(ctx context.Context, path, operation string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s body: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pinecone %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &resilience.HTTPStatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}
