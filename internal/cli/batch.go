package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/atlasdesk/triage-assistant/internal/bootstrap"
	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

func newBatchCmd() *cobra.Command {
	var (
		ticketIDs []string
		enqueue   bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze a set of stored tickets and print an aggregate summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				ids := ticketIDs
				if len(ids) == 0 {
					stored, err := app.Repo.ListIDs(ctx)
					if err != nil {
						return fmt.Errorf("list tickets: %w", err)
					}
					ids = stored
				}
				if len(ids) == 0 {
					return fmt.Errorf("no tickets to analyze")
				}

				if enqueue {
					for _, id := range ids {
						if err := app.Queue.PublishTicketForAnalysis(ctx, id); err != nil {
							return fmt.Errorf("enqueue ticket %s: %w", id, err)
						}
					}
					cmd.Printf("enqueued %d tickets\n", len(ids))
					return nil
				}

				summary, err := app.BatchUC.AnalyzeBatch(ctx, ids)
				if err != nil {
					return err
				}
				printSummary(cmd, summary)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&ticketIDs, "ids", nil, "ticket ids to analyze (default: every stored ticket)")
	cmd.Flags().BoolVar(&enqueue, "enqueue", false, "publish tickets to the worker queue instead of analyzing locally")
	return cmd
}

func printSummary(cmd *cobra.Command, summary *domain.BatchSummary) {
	cmd.Printf("batch %s\n", summary.BatchID)
	cmd.Printf("analyzed=%d failed=%d answered=%d referred=%d\n",
		summary.Analyzed, summary.Failed, summary.AnsweredCount, summary.ReferredCount)
	if summary.Cancelled {
		cmd.Println("batch was cancelled before completion; counts are partial")
	}

	labels := make([]domain.EmotionLabel, 0, len(summary.EmotionCounts))
	for label := range summary.EmotionCounts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for _, label := range labels {
		cmd.Printf("  %s %s: %d\n", label.Emoji(), label, summary.EmotionCounts[label])
	}
}
