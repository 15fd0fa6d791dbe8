package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"brandguard-hq/brandguard/pkg/cli"
	"brandguard-hq/brandguard/pkg/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query and prune the evaluation history",
}

var historyQueryFlags struct {
	kind   string
	brand  string
	since  string
	limit  int
	format string
}

var historyQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query past evaluations",
	Long: `Query the evaluation history, newest first.

Examples:
  # Last 20 evaluations for a brand
  brandguard history query --brand acme --limit 20

  # Safety evaluations from the last day
  brandguard history query --kind safety --since 24h

  # JSON output
  brandguard history query --format json`,
	RunE: runHistoryQuery,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete history records older than the retention window",
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyQueryCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyQueryCmd.Flags().StringVar(&historyQueryFlags.kind, "kind", "", "evaluation kind: safety, compliance, combined")
	historyQueryCmd.Flags().StringVarP(&historyQueryFlags.brand, "brand", "b", "", "brand name")
	historyQueryCmd.Flags().StringVar(&historyQueryFlags.since, "since", "", "look-back window (e.g. 24h, 30m)")
	historyQueryCmd.Flags().IntVar(&historyQueryFlags.limit, "limit", 50, "maximum records returned")
	historyQueryCmd.Flags().StringVar(&historyQueryFlags.format, "format", "text", "output format: text, json")
}

func runHistoryQuery(cmd *cobra.Command, args []string) error {
	store, _, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	q := &history.Query{
		Kind:      historyQueryFlags.kind,
		BrandName: historyQueryFlags.brand,
		Limit:     historyQueryFlags.limit,
	}
	if historyQueryFlags.since != "" {
		d, err := time.ParseDuration(historyQueryFlags.since)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		q.Since = time.Now().UTC().Add(-d)
	}

	ctx := cli.SetupSignalHandler()
	records, err := store.Query(ctx, q)
	if err != nil {
		return err
	}

	if historyQueryFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(cmd.OutOrStdout(), records)
	}

	for _, r := range records {
		outcome := "fail"
		if r.Passed {
			outcome = "pass"
		}
		line := fmt.Sprintf("%s  %-10s %-4s", r.CreatedAt.Format(time.RFC3339), r.Kind, outcome)
		if r.BrandName != "" {
			line += "  brand=" + r.BrandName
		}
		if r.Score != nil {
			line += fmt.Sprintf("  score=%d", *r.Score)
		}
		if r.Risk != "" {
			line += "  risk=" + r.Risk
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d record(s)\n", len(records))
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	store, cfg, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	pruner := history.NewPruner(store, history.PrunerConfig{
		RetentionDays: cfg.History.RetentionDays,
	})

	ctx := cli.SetupSignalHandler()
	deleted, err := pruner.Prune(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d record(s)\n", deleted)
	return nil
}
