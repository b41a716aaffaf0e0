package domain

import "strings"

// DocumentChunk is one indexed passage of product documentation.
// Embedding dimension is fixed at ingestion time and must match the
// query embedding dimension exactly.
type DocumentChunk struct {
	Source string  `json:"source"`
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
}

// RetrievalResult is the ranked top-K result of a similarity search,
// ordered by non-increasing score. Fewer than K matches is legitimate,
// not an error.
type RetrievalResult struct {
	Chunks []DocumentChunk `json:"chunks"`
}

// Context concatenates chunk texts in ranked order, double-newline
// separated, for use as generation context.
func (r RetrievalResult) Context() string {
	texts := make([]string, 0, len(r.Chunks))
	for _, chunk := range r.Chunks {
		texts = append(texts, chunk.Text)
	}
	return strings.Join(texts, "\n\n")
}

// SourceURLs projects the distinct source URLs in first-seen order.
func (r RetrievalResult) SourceURLs() []string {
	seen := make(map[string]struct{}, len(r.Chunks))
	urls := make([]string, 0, len(r.Chunks))
	for _, chunk := range r.Chunks {
		if _, ok := seen[chunk.Source]; ok {
			continue
		}
		seen[chunk.Source] = struct{}{}
		urls = append(urls, chunk.Source)
	}
	return urls
}

// DocumentPage is one scraped documentation page fed into ingestion.
type DocumentPage struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}
