package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atlasdesk/triage-assistant/internal/bootstrap"
)

func newSeedCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upload a JSON ticket file into the ticket store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				payload, err := os.ReadFile(filePath)
				if err != nil {
					return fmt.Errorf("read ticket file: %w", err)
				}

				count, err := app.UploadUC.Upload(ctx, payload)
				if err != nil {
					return err
				}
				cmd.Printf("uploaded %d tickets\n", count)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "path to a JSON array of tickets [{id,subject,body}]")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
