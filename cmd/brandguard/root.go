package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "brandguard",
	Short: "BrandGuard - content evaluation engine for brand safety and compliance",
	Long: `BrandGuard evaluates text content against configurable safety categories
and brand guideline documents.

It provides:
  - Multi-category safety risk categorization with per-category tolerances
  - Brand tone, voice, and terminology compliance scoring
  - Combined safety/compliance decisions with configurable weights
  - Cached results, evaluation history, and Prometheus metrics`,
	Version: Version,
}

// exitCode is the process exit status. Commands set it instead of
// calling os.Exit directly so deferred cleanup still runs.
var exitCode int

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
