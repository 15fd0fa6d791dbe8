package plugin

import (
	"encoding/json"
	"fmt"
	"strings"

	"brandguard-hq/brandguard/pkg/evaluation"
)

// builtinVersion is the version reported by the built-in plugins. It
// tracks the engine release so compatibility checks always pass.
const builtinVersion = "1.0.0"

// JSONFormatter renders evaluation results as indented JSON. It is
// registered by default so every installation can produce
// machine-readable output without external plugins.
type JSONFormatter struct{}

// ID implements Plugin.
func (JSONFormatter) ID() string { return "builtin.formatter.json" }

// Name implements Plugin.
func (JSONFormatter) Name() string { return "JSON Formatter" }

// Version implements Plugin.
func (JSONFormatter) Version() string { return builtinVersion }

// IsCompatible implements Plugin. Built-ins ship with the engine and
// are always compatible.
func (JSONFormatter) IsCompatible(systemVersion string) bool { return true }

// Formats implements Formatter.
func (JSONFormatter) Formats() []string { return []string{"json"} }

// Format implements Formatter.
func (JSONFormatter) Format(result interface{}, format string) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling result: %w", err)
	}
	return string(data), nil
}

// TextFormatter renders evaluation results as a plain-text report
// suitable for terminals and logs.
type TextFormatter struct{}

// ID implements Plugin.
func (TextFormatter) ID() string { return "builtin.formatter.text" }

// Name implements Plugin.
func (TextFormatter) Name() string { return "Text Formatter" }

// Version implements Plugin.
func (TextFormatter) Version() string { return builtinVersion }

// IsCompatible implements Plugin.
func (TextFormatter) IsCompatible(systemVersion string) bool { return true }

// Formats implements Formatter.
func (TextFormatter) Formats() []string { return []string{"text"} }

// Format implements Formatter.
func (TextFormatter) Format(result interface{}, format string) (string, error) {
	switch r := result.(type) {
	case *evaluation.CombinedResult:
		return formatCombined(r), nil
	case *evaluation.SafetyEvaluation:
		return formatSafety(r), nil
	case *evaluation.ComplianceEvaluation:
		return formatCompliance(r), nil
	default:
		return "", fmt.Errorf("unsupported result type %T", result)
	}
}

func formatSafety(e *evaluation.SafetyEvaluation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Safety Evaluation\n")
	fmt.Fprintf(&b, "  Overall risk: %s\n", e.OverallRisk)
	fmt.Fprintf(&b, "  Safe: %t\n", e.IsSafe())
	for _, cat := range e.Categories {
		marker := " "
		if cat.Exceeded {
			marker = "!"
		}
		fmt.Fprintf(&b, "  %s %-20s %-9s (tolerance %s)\n", marker, cat.Category, cat.Risk, cat.Tolerance)
	}
	if e.Summary != "" {
		fmt.Fprintf(&b, "  %s\n", e.Summary)
	}
	return b.String()
}

func formatCompliance(e *evaluation.ComplianceEvaluation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Brand Compliance: %s\n", e.BrandName)
	fmt.Fprintf(&b, "  Score: %d/100\n", e.Score)
	fmt.Fprintf(&b, "  Compliant: %t\n", e.IsCompliant())
	for _, issue := range e.Issues {
		fmt.Fprintf(&b, "  [%s] %s: %s\n", issue.Severity, issue.Type, issue.Description)
		if issue.Suggestion != "" {
			fmt.Fprintf(&b, "      suggestion: %s\n", issue.Suggestion)
		}
	}
	if e.Summary != "" {
		fmt.Fprintf(&b, "  %s\n", e.Summary)
	}
	return b.String()
}

func formatCombined(r *evaluation.CombinedResult) string {
	var b strings.Builder
	if r.Safety != nil {
		b.WriteString(formatSafety(r.Safety))
	}
	if r.Compliance != nil {
		b.WriteString(formatCompliance(r.Compliance))
	}
	fmt.Fprintf(&b, "Combined\n")
	if r.CombinedScore != nil {
		fmt.Fprintf(&b, "  Score: %d/100\n", *r.CombinedScore)
	}
	fmt.Fprintf(&b, "  Compliant: %t\n", r.Compliant)
	return b.String()
}

// RegisterBuiltins registers the formatters that ship with the engine.
func RegisterBuiltins(registry *Registry) error {
	if err := registry.RegisterFormatter(JSONFormatter{}); err != nil {
		return err
	}
	return registry.RegisterFormatter(TextFormatter{})
}
