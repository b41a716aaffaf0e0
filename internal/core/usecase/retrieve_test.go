package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

func TestRetrieveOrdersByScoreAndCapsAtK(t *testing.T) {
	vector := &fakeVectorStore{chunks: []domain.DocumentChunk{
		{Source: "u2", Text: "b", Score: 0.5},
		{Source: "u1", Text: "a", Score: 0.9},
		{Source: "u3", Text: "c", Score: 0.7},
	}}
	uc := NewRetrieveUseCase(&fakeEmbedder{vector: []float32{0.1}}, vector)

	result, err := uc.Retrieve(context.Background(), "query", 2)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(result.Chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(result.Chunks))
	}
	if result.Chunks[0].Score < result.Chunks[1].Score {
		t.Fatalf("expected non-increasing scores: %v", result.Chunks)
	}
	if result.Chunks[0].Text != "a" {
		t.Fatalf("expected best match first, got %q", result.Chunks[0].Text)
	}
}

func TestRetrieveSparseIndexReturnsFewerWithoutError(t *testing.T) {
	vector := &fakeVectorStore{chunks: []domain.DocumentChunk{{Source: "u1", Text: "only", Score: 0.4}}}
	uc := NewRetrieveUseCase(&fakeEmbedder{vector: []float32{0.1}}, vector)

	result, err := uc.Retrieve(context.Background(), "query", 10)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(result.Chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(result.Chunks))
	}
}

func TestRetrieveEmptyIndexIsNotAnError(t *testing.T) {
	uc := NewRetrieveUseCase(&fakeEmbedder{vector: []float32{0.1}}, &fakeVectorStore{})
	result, err := uc.Retrieve(context.Background(), "query", 5)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(result.Chunks) != 0 || result.Context() != "" {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestRetrieveRejectsNonPositiveK(t *testing.T) {
	vector := &fakeVectorStore{}
	uc := NewRetrieveUseCase(&fakeEmbedder{vector: []float32{0.1}}, vector)
	for _, k := range []int{0, -3} {
		_, err := uc.Retrieve(context.Background(), "query", k)
		if !domain.IsKind(err, domain.ErrRetrievalUnavailable) {
			t.Fatalf("k=%d: expected ErrRetrievalUnavailable, got %v", k, err)
		}
	}
	if vector.topK != 0 {
		t.Fatalf("expected no index query for invalid k, got topK=%d", vector.topK)
	}
}

func TestRetrieveEmbedFailureIsTyped(t *testing.T) {
	uc := NewRetrieveUseCase(&fakeEmbedder{err: errors.New("down")}, &fakeVectorStore{})
	_, err := uc.Retrieve(context.Background(), "query", 5)
	if !domain.IsKind(err, domain.ErrRetrievalUnavailable) {
		t.Fatalf("expected ErrRetrievalUnavailable, got %v", err)
	}
}

func TestRetrieveSearchFailureIsTyped(t *testing.T) {
	uc := NewRetrieveUseCase(
		&fakeEmbedder{vector: []float32{0.1}},
		&fakeVectorStore{queryErr: errors.New("503")},
	)
	_, err := uc.Retrieve(context.Background(), "query", 5)
	if !domain.IsKind(err, domain.ErrRetrievalUnavailable) {
		t.Fatalf("expected ErrRetrievalUnavailable, got %v", err)
	}
}
