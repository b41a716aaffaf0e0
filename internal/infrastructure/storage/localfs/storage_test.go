package localfs

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveCreatesNestedKeyDirectories(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	key := "uploads/20260830_batch.json"
	if err := storage.Save(context.Background(), key, strings.NewReader(`[{"id":"T-1"}]`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reader, err := storage.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `[{"id":"T-1"}]` {
		t.Fatalf("unexpected content: %s", data)
	}
}

func TestOpenMissingKeyFails(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := storage.Open(context.Background(), "uploads/missing.json"); err == nil {
		t.Fatalf("expected error for missing key")
	}
}
