// Package cli implements the triagectl command set: seeding tickets,
// ingesting documentation, and running batch analyses from the shell.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atlasdesk/triage-assistant/internal/bootstrap"
	"github.com/atlasdesk/triage-assistant/internal/config"
	"github.com/atlasdesk/triage-assistant/internal/observability/logging"
)

var rootCmd = &cobra.Command{
	Use:           "triagectl",
	Short:         "Operations companion for the ticket triage service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newSeedCmd(), newIngestCmd(), newBatchCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runWithApp wires the full dependency graph for one command run and
// tears it down afterwards.
func runWithApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg := config.Load()
	slog.SetDefault(logging.NewJSONLogger("triagectl", cfg.LogLevel))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer app.Close()

	return fn(ctx, app)
}
