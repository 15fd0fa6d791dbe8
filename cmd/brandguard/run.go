package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/cli"
	"brandguard-hq/brandguard/pkg/history"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the engine as a long-lived process",
	Long: `Run the engine until interrupted. In this mode the brand directory
is watched for changes when brands.watch is enabled, and history
retention pruning runs on the configured cron schedule.

Example config:
  brands:
    dir: brands
    watch: true
  history:
    enabled: true
    retention_days: 90
    prune_schedule: "0 3 * * *"`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	cfg := rt.config.Snapshot()
	ctx := cli.SetupSignalHandler()

	if rt.history != nil && cfg.History.PruneSchedule != "" {
		pruner := history.NewPruner(rt.history, history.PrunerConfig{
			RetentionDays: cfg.History.RetentionDays,
			PruneSchedule: cfg.History.PruneSchedule,
		})
		scheduler := history.NewScheduler(pruner)
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	if cfg.Brands.Watch {
		if cfg.Brands.Dir == "" {
			return fmt.Errorf("brands.watch is enabled but brands.dir is not configured")
		}
		watcher, err := brand.NewWatcher(cfg.Brands.Dir, rt.brands, nil)
		if err != nil {
			return err
		}
		watcher.OnReload = func(err error) {
			if rt.metrics == nil {
				return
			}
			if err != nil {
				rt.metrics.RecordBrandReload("failure")
			} else {
				rt.metrics.RecordBrandReload("success")
			}
		}
		watchErr := make(chan error, 1)
		go func() { watchErr <- watcher.Watch(ctx) }()
		defer watcher.Stop()

		select {
		case <-ctx.Done():
		case err := <-watchErr:
			if err != nil {
				return fmt.Errorf("brand watcher failed: %w", err)
			}
		}
		return nil
	}

	slog.Info("engine running", "brands", rt.brands.Count())
	<-ctx.Done()
	return nil
}
