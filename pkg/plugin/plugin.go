// Package plugin defines the extension points of the evaluation engine
// and the registry and pipeline that run them.
//
// Three capability interfaces share one lifecycle: Evaluator plugins
// contribute independent scores and issues, Enricher plugins transform
// content before evaluation in a strictly sequential priority chain,
// and Formatter plugins render results for named output formats. Every
// plugin declares identity and a compatibility predicate that is
// checked once at registration; incompatible plugins are rejected at
// load time and never invoked. Plugin state lives for the process;
// unloading invokes an optional cleanup hook before removal.
package plugin

import (
	"brandguard-hq/brandguard/pkg/evaluation"
)

// Plugin is the identity contract every plugin implements.
type Plugin interface {
	// ID is the unique plugin identifier.
	ID() string

	// Name is the human-readable plugin name.
	Name() string

	// Version is the plugin's own version string.
	Version() string

	// IsCompatible reports whether the plugin supports the given engine
	// version. Checked before registration; incompatible plugins are
	// rejected, not invoked.
	IsCompatible(systemVersion string) bool
}

// Result is the output of one evaluation plugin. Any field may be nil
// or empty; plugins report only what they assess.
type Result struct {
	// Score is an optional 0-100 score.
	Score *int `json:"score,omitempty"`

	// Risk is an optional risk assessment.
	Risk *evaluation.RiskLevel `json:"risk,omitempty"`

	// Issues lists problems the plugin detected. Plugin issues may use
	// the info/warning/error/critical severity scale.
	Issues []evaluation.Issue `json:"issues,omitempty"`
}

// Evaluator is a plugin that evaluates content independently of the
// built-in analyzers. Evaluators run in isolation: a failure or panic
// in one is logged and skipped without affecting the others.
type Evaluator interface {
	Plugin

	// Evaluate assesses the content and returns the plugin's result.
	Evaluate(content *evaluation.Content) (*Result, error)
}

// Enricher is a plugin that transforms or annotates content before
// evaluation. Enrichers form a sequential pipeline in descending
// priority order; each receives the previous enricher's text and
// metadata.
type Enricher interface {
	Plugin

	// Priority orders the chain; higher priorities run first.
	Priority() int

	// Enrich transforms the text and metadata and returns the new pair.
	Enrich(text string, metadata map[string]interface{}) (string, map[string]interface{}, error)
}

// Formatter is a plugin that renders an evaluation result into an
// output string for a named format.
type Formatter interface {
	Plugin

	// Formats lists the format names this formatter serves.
	Formats() []string

	// Format renders the result for the given format name.
	Format(result interface{}, format string) (string, error)
}

// Cleaner is the optional cleanup hook invoked when a plugin is
// unloaded.
type Cleaner interface {
	// Cleanup releases any resources the plugin holds.
	Cleanup() error
}
