package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writePagesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pages.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pages file: %v", err)
	}
	return path
}

func TestLoadPagesFileParsesValidDump(t *testing.T) {
	path := writePagesFile(t, `[
		{"url":"https://docs.example.com/a","text":"page a"},
		{"url":"https://docs.example.com/b","text":"page b"}
	]`)

	pages, err := loadPagesFile(path)
	if err != nil {
		t.Fatalf("loadPagesFile() error = %v", err)
	}
	if len(pages) != 2 || pages[0].URL != "https://docs.example.com/a" {
		t.Fatalf("unexpected pages: %+v", pages)
	}
}

func TestLoadPagesFileRejectsMissingURL(t *testing.T) {
	path := writePagesFile(t, `[{"url":"  ","text":"page"}]`)
	if _, err := loadPagesFile(path); err == nil {
		t.Fatalf("expected error for missing url")
	}
}

func TestLoadPagesFileRejectsBlankText(t *testing.T) {
	path := writePagesFile(t, `[{"url":"https://docs.example.com/a","text":""}]`)
	if _, err := loadPagesFile(path); err == nil {
		t.Fatalf("expected error for blank text")
	}
}

func TestLoadPagesFileRejectsEmptyDump(t *testing.T) {
	path := writePagesFile(t, `[]`)
	if _, err := loadPagesFile(path); err == nil {
		t.Fatalf("expected error for empty dump")
	}
}

func TestLoadPagesFileRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644); err != nil {
		t.Fatalf("write pages file: %v", err)
	}
	if _, err := loadPagesFile(path); err == nil {
		t.Fatalf("expected error for invalid utf-8")
	}
}
