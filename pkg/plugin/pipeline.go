package plugin

import (
	"fmt"
	"log/slog"

	"brandguard-hq/brandguard/pkg/evaluation"
)

// EvaluatorOutput is the outcome of running one evaluation plugin.
// Failed plugins appear with Err set and a nil Result so callers can
// see that isolation kicked in without losing the other results.
type EvaluatorOutput struct {
	// PluginID identifies the plugin.
	PluginID string `json:"plugin_id"`

	// Result is the plugin's result; nil when the plugin failed.
	Result *Result `json:"result,omitempty"`

	// Err is the failure, if any. Never aborts the batch.
	Err error `json:"-"`
}

// Pipeline runs the registered plugins through their lifecycle roles.
type Pipeline struct {
	registry *Registry
	logger   *slog.Logger
}

// NewPipeline creates a pipeline over a registry.
func NewPipeline(registry *Registry, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default().With("component", "plugin.pipeline")
	}
	return &Pipeline{registry: registry, logger: logger}
}

// RunEvaluators runs every evaluation plugin in isolation. A plugin
// error or panic is logged and recorded; the remaining plugins still
// run and the batch always completes.
func (p *Pipeline) RunEvaluators(content *evaluation.Content) []EvaluatorOutput {
	evaluators := p.registry.Evaluators()
	if len(evaluators) == 0 {
		return nil
	}

	outputs := make([]EvaluatorOutput, 0, len(evaluators))
	for _, ev := range evaluators {
		result, err := p.runOne(ev, content)
		if err != nil {
			p.logger.Error("evaluation plugin failed, skipping",
				"id", ev.ID(),
				"error", err,
			)
			outputs = append(outputs, EvaluatorOutput{PluginID: ev.ID(), Err: err})
			continue
		}
		outputs = append(outputs, EvaluatorOutput{PluginID: ev.ID(), Result: result})
	}
	return outputs
}

// runOne invokes a single evaluator, converting panics into errors so
// one misbehaving plugin cannot abort the evaluation.
func (p *Pipeline) runOne(ev Evaluator, content *evaluation.Content) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("plugin panicked: %v", r)
		}
	}()

	return ev.Evaluate(content)
}

// Enrich runs the enricher chain sequentially in descending priority
// order, each enricher consuming the previous one's text and metadata.
// A failing enricher is logged and skipped; the chain continues with
// the last good output. The chain must never be parallelized: later
// enrichers depend on earlier output.
func (p *Pipeline) Enrich(text string, metadata map[string]interface{}) (string, map[string]interface{}) {
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	for _, enricher := range p.registry.Enrichers() {
		nextText, nextMeta, err := p.enrichOne(enricher, text, metadata)
		if err != nil {
			p.logger.Error("enricher plugin failed, skipping",
				"id", enricher.ID(),
				"error", err,
			)
			continue
		}
		text = nextText
		if nextMeta != nil {
			metadata = nextMeta
		}
	}

	return text, metadata
}

// enrichOne invokes a single enricher with panic isolation.
func (p *Pipeline) enrichOne(enricher Enricher, text string, metadata map[string]interface{}) (outText string, outMeta map[string]interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("plugin panicked: %v", r)
		}
	}()

	return enricher.Enrich(text, metadata)
}

// Format renders a result with the formatter registered for the named
// format.
func (p *Pipeline) Format(result interface{}, format string) (string, error) {
	formatter, ok := p.registry.FormatterFor(format)
	if !ok {
		return "", fmt.Errorf("no formatter registered for format %q", format)
	}

	out, err := p.formatOne(formatter, result, format)
	if err != nil {
		return "", fmt.Errorf("formatter %q failed: %w", formatter.ID(), err)
	}
	return out, nil
}

// formatOne invokes a single formatter with panic isolation.
func (p *Pipeline) formatOne(formatter Formatter, result interface{}, format string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("plugin panicked: %v", r)
		}
	}()

	return formatter.Format(result, format)
}
