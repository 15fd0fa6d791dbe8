package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"brandguard-hq/brandguard/pkg/cli"
	"brandguard-hq/brandguard/pkg/engine"
	"brandguard-hq/brandguard/pkg/evaluation"
)

var evaluateFlags struct {
	text           string
	file           string
	context        string
	brand          string
	safetyOnly     bool
	complianceOnly bool
	format         string
	safetyWeight   float64
	brandWeight    float64
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate content for safety and brand compliance",
	Long: `Evaluate a piece of content against the configured safety categories
and, when a brand is given, that brand's guidelines.

Examples:
  # Combined evaluation against a brand
  brandguard evaluate --text "Our product delivers results." --brand acme

  # Safety-only evaluation
  brandguard evaluate --text "..." --safety-only

  # Read content from a file, JSON output
  brandguard evaluate --file post.txt --brand acme --format json

  # Read content from stdin
  cat post.txt | brandguard evaluate --brand acme

  # Override the combined weights
  brandguard evaluate --text "..." --brand acme --safety-weight 0.6 --brand-weight 0.4`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVarP(&evaluateFlags.text, "text", "t", "", "content text to evaluate")
	evaluateCmd.Flags().StringVarP(&evaluateFlags.file, "file", "f", "", "file containing content to evaluate")
	evaluateCmd.Flags().StringVar(&evaluateFlags.context, "context", "", "usage context label (e.g. social-media, legal)")
	evaluateCmd.Flags().StringVarP(&evaluateFlags.brand, "brand", "b", "", "brand name for compliance analysis")
	evaluateCmd.Flags().BoolVar(&evaluateFlags.safetyOnly, "safety-only", false, "run only the safety evaluation")
	evaluateCmd.Flags().BoolVar(&evaluateFlags.complianceOnly, "compliance-only", false, "run only the compliance evaluation")
	evaluateCmd.Flags().StringVar(&evaluateFlags.format, "format", "text", "output format: text, json")
	evaluateCmd.Flags().Float64Var(&evaluateFlags.safetyWeight, "safety-weight", 0, "combined weight applied to safety")
	evaluateCmd.Flags().Float64Var(&evaluateFlags.brandWeight, "brand-weight", 0, "combined weight applied to compliance")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	text := evaluateFlags.text
	switch {
	case text != "":
	case evaluateFlags.file != "":
		data, err := os.ReadFile(evaluateFlags.file)
		if err != nil {
			return fmt.Errorf("reading content file: %w", err)
		}
		text = string(data)
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}
	if text == "" {
		return fmt.Errorf("no content provided: use --text, --file, or stdin")
	}
	if evaluateFlags.safetyOnly && evaluateFlags.complianceOnly {
		return fmt.Errorf("--safety-only and --compliance-only are mutually exclusive")
	}

	rt, err := buildRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	req := engine.Request{
		Text:              text,
		Context:           evaluateFlags.context,
		BrandName:         evaluateFlags.brand,
		IncludeSafety:     !evaluateFlags.complianceOnly,
		IncludeCompliance: !evaluateFlags.safetyOnly && evaluateFlags.brand != "",
	}
	if evaluateFlags.safetyWeight > 0 || evaluateFlags.brandWeight > 0 {
		req.Weights = &evaluation.CombinedWeights{
			Safety: evaluateFlags.safetyWeight,
			Brand:  evaluateFlags.brandWeight,
		}
	}

	ctx := cli.SetupSignalHandler()
	result, err := rt.engine.Evaluate(ctx, req)
	if err != nil {
		return err
	}

	out, err := rt.engine.Format(result, evaluateFlags.format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	if !result.Compliant {
		exitCode = 1
	}
	return nil
}
