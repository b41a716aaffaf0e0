package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/atlasdesk/triage-assistant/internal/bootstrap"
	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

func newIngestCmd() *cobra.Command {
	var pagesPath string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Index scraped documentation pages into the vector store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				pages, err := loadPagesFile(pagesPath)
				if err != nil {
					return err
				}

				indexed, err := app.IngestUC.IngestPages(ctx, pages)
				if err != nil {
					return err
				}
				cmd.Printf("indexed %d chunks from %d pages\n", indexed, len(pages))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&pagesPath, "pages", "", "path to scraped pages JSON ([{url,text}])")
	_ = cmd.MarkFlagRequired("pages")
	return cmd
}

// loadPagesFile parses a scraped-pages dump. Pages with a missing URL
// or blank text are rejected up front so a bad scrape fails loudly
// instead of poisoning the index.
func loadPagesFile(path string) ([]domain.DocumentPage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pages file: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("pages file is not valid utf-8: %s", path)
	}

	var pages []domain.DocumentPage
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("parse pages file: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pages file is empty: %s", path)
	}
	for i, page := range pages {
		if strings.TrimSpace(page.URL) == "" {
			return nil, fmt.Errorf("page %d has no url", i)
		}
		if strings.TrimSpace(page.Text) == "" {
			return nil, fmt.Errorf("page %d (%s) has no text", i, page.URL)
		}
	}
	return pages, nil
}
