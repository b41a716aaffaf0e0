package chunking

import (
	"strings"
	"testing"
)

func TestSplitOverlapsAdjacentChunks(t *testing.T) {
	splitter := NewSplitter(10, 4)
	text := "abcdefghijklmnopqrstuvwxyz"

	chunks := splitter.Split(text)
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "abcdefghij" || chunks[1] != "ghijklmnop" {
		t.Fatalf("unexpected chunk boundaries: %v", chunks)
	}
	// Last four runes of each chunk open the next one.
	if !strings.HasPrefix(chunks[1], chunks[0][len(chunks[0])-4:]) {
		t.Fatalf("missing overlap between chunks: %v", chunks)
	}
}

func TestSplitShortTextIsSingleChunk(t *testing.T) {
	splitter := NewSplitter(1000, 200)
	chunks := splitter.Split("short text")
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
}

func TestSplitEmptyTextReturnsNothing(t *testing.T) {
	splitter := NewSplitter(1000, 200)
	if chunks := splitter.Split("   "); len(chunks) != 0 {
		t.Fatalf("expected no chunks for blank text, got %v", chunks)
	}
}

func TestSplitHandlesMultibyteRunes(t *testing.T) {
	splitter := NewSplitter(4, 0)
	chunks := splitter.Split("приветмир")
	if len(chunks) != 3 {
		t.Fatalf("expected rune-based windows, got %v", chunks)
	}
	if chunks[0] != "прив" {
		t.Fatalf("unexpected first chunk: %q", chunks[0])
	}
}

func TestNewSplitterClampsInvalidOverlap(t *testing.T) {
	splitter := NewSplitter(100, 100)
	if splitter.Overlap >= splitter.ChunkSize {
		t.Fatalf("overlap not clamped: %+v", splitter)
	}
}
