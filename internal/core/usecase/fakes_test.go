package usecase

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

type fakeClassifier struct {
	label domain.EmotionLabel
	err   error
	calls int
}

func (f *fakeClassifier) Classify(context.Context, string) (domain.EmotionLabel, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.label, nil
}

// fakeChatModel returns canned responses in order, repeating the last
// one when exhausted.
type fakeChatModel struct {
	responses []string
	err       error
	calls     int
	systems   []string
	prompts   []string
}

func (f *fakeChatModel) Complete(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.systems = append(f.systems, system)
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	idx := f.calls - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	if idx < 0 {
		return "", nil
	}
	return f.responses[idx], nil
}

type fakeEmbedder struct {
	vector []float32
	err    error
	texts  []string
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.texts = append(f.texts, texts...)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

type fakeVectorStore struct {
	chunks   []domain.DocumentChunk
	queryErr error
	upserted []domain.DocumentChunk
	topK     int
}

func (f *fakeVectorStore) Query(_ context.Context, _ []float32, topK int) ([]domain.DocumentChunk, error) {
	f.topK = topK
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.chunks, nil
}

func (f *fakeVectorStore) Upsert(_ context.Context, chunks []domain.DocumentChunk, _ [][]float32) error {
	f.upserted = append(f.upserted, chunks...)
	return nil
}

type fakeTicketRepo struct {
	tickets  map[string]domain.Ticket
	upserted []domain.Ticket
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrTicketNotFound, "get ticket", domainNotFoundErr(id))
	}
	return &ticket, nil
}

func domainNotFoundErr(id string) error {
	return &notFoundErr{id: id}
}

type notFoundErr struct{ id string }

func (e *notFoundErr) Error() string { return "no ticket row for id " + e.id }

func (f *fakeTicketRepo) UpsertBatch(_ context.Context, tickets []domain.Ticket) error {
	f.upserted = append(f.upserted, tickets...)
	return nil
}

func (f *fakeTicketRepo) ListIDs(context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.tickets))
	for id := range f.tickets {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeStorage struct {
	saved map[string]string
}

func (f *fakeStorage) Save(_ context.Context, key string, data io.Reader) error {
	if f.saved == nil {
		f.saved = make(map[string]string)
	}
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(data)
	f.saved[key] = buf.String()
	return nil
}

func (f *fakeStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(f.saved[key])), nil
}

type fakeChunker struct {
	size int
}

func (f *fakeChunker) Split(text string) []string {
	if text == "" {
		return nil
	}
	size := f.size
	if size <= 0 {
		size = 10
	}
	var out []string
	for start := 0; start < len(text); start += size {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		out = append(out, text[start:end])
	}
	return out
}
