package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/cli"
)

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "Manage brand guideline documents",
}

var brandsLintFlags struct {
	file   string
	dir    string
	format string
}

// BrandLintResult is the lint outcome for one brand file.
type BrandLintResult struct {
	File  string `json:"file"`
	Brand string `json:"brand,omitempty"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

var brandsLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate brand guideline files",
	Long: `Validate brand YAML files for structural and semantic errors:
  - YAML syntax
  - Required fields (brand name, rule preferred terms, exemption terms)
  - Conflicting guidelines (a tone both primary and avoided)

Examples:
  # Lint a single file
  brandguard brands lint --file acme.yaml

  # Lint a directory
  brandguard brands lint --dir brands/

  # JSON output for CI
  brandguard brands lint --dir brands/ --format json`,
	RunE: runBrandsLint,
}

var brandsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List brands in the configured brand directory",
	RunE:  runBrandsList,
}

func init() {
	rootCmd.AddCommand(brandsCmd)
	brandsCmd.AddCommand(brandsLintCmd)
	brandsCmd.AddCommand(brandsListCmd)

	brandsLintCmd.Flags().StringVarP(&brandsLintFlags.file, "file", "f", "", "brand file to validate")
	brandsLintCmd.Flags().StringVarP(&brandsLintFlags.dir, "dir", "d", "", "directory of brand files")
	brandsLintCmd.Flags().StringVar(&brandsLintFlags.format, "format", "text", "output format: text, json")
}

func runBrandsLint(cmd *cobra.Command, args []string) error {
	if brandsLintFlags.file == "" && brandsLintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string
	if brandsLintFlags.file != "" {
		files = append(files, brandsLintFlags.file)
	}
	if brandsLintFlags.dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(brandsLintFlags.dir, pattern))
			if err != nil {
				return fmt.Errorf("listing brand files: %w", err)
			}
			files = append(files, matches...)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no brand files found")
	}

	results := make([]BrandLintResult, 0, len(files))
	failures := 0
	for _, file := range files {
		result := BrandLintResult{File: file, Valid: true}
		b, err := brand.LoadFile(file)
		if err != nil {
			result.Valid = false
			result.Error = err.Error()
			failures++
		} else {
			result.Brand = b.Name
		}
		results = append(results, result)
	}

	if brandsLintFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%s)\n", r.File, r.Brand)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %s\n", r.File, r.Error)
			}
		}
	}

	if failures > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d file(s) failed validation\n", failures, len(files))
		exitCode = 1
	}
	return nil
}

func runBrandsList(cmd *cobra.Command, args []string) error {
	svc, err := loadConfigService()
	if err != nil {
		return err
	}
	cfg := svc.Snapshot()
	if cfg.Brands.Dir == "" {
		return fmt.Errorf("no brand directory configured")
	}

	brands, err := brand.LoadDir(cfg.Brands.Dir)
	if err != nil {
		return err
	}
	for _, b := range brands {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b.Name)
	}
	return nil
}
