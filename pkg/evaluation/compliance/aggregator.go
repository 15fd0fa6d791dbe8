// Package compliance implements the compliance aggregator: it merges
// the tone, voice, and terminology sub-scores into one weighted
// compliance evaluation, assigns issue severities, and produces the
// summary text.
package compliance

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"brandguard-hq/brandguard/pkg/evaluation"
)

// Weights are the analyzer weights used for the compliance score.
type Weights struct {
	// Tone is the tone analyzer weight.
	Tone float64 `json:"tone" yaml:"tone"`

	// Voice is the voice analyzer weight.
	Voice float64 `json:"voice" yaml:"voice"`

	// Terminology is the terminology analyzer weight.
	Terminology float64 `json:"terminology" yaml:"terminology"`
}

// DefaultWeights returns the default analyzer weights.
func DefaultWeights() Weights {
	return Weights{Tone: 0.35, Voice: 0.30, Terminology: 0.35}
}

// normalized returns the weights scaled to sum to 1.
func (w Weights) normalized() Weights {
	total := w.Tone + w.Voice + w.Terminology
	if total == 0 {
		return DefaultWeights()
	}
	return Weights{
		Tone:        w.Tone / total,
		Voice:       w.Voice / total,
		Terminology: w.Terminology / total,
	}
}

// Aggregator merges analyzer outputs into a compliance evaluation. It
// is safe for concurrent use; weight updates are atomic.
type Aggregator struct {
	mu      sync.RWMutex
	weights Weights
}

// NewAggregator creates an aggregator with the given weights, which are
// normalized to sum to 1. Nil uses the defaults.
func NewAggregator(weights *Weights) *Aggregator {
	w := DefaultWeights()
	if weights != nil {
		w = weights.normalized()
	}
	return &Aggregator{weights: w}
}

// SetWeights validates and installs a new weight triple, renormalized
// to sum to 1. Non-positive weights are rejected and the prior weights
// stay in effect.
func (a *Aggregator) SetWeights(weights Weights) error {
	if weights.Tone <= 0 || weights.Voice <= 0 || weights.Terminology <= 0 {
		return &evaluation.ConfigError{
			Setting: "compliance.weights",
			Message: fmt.Sprintf("weights must be positive, got tone=%g voice=%g terminology=%g",
				weights.Tone, weights.Voice, weights.Terminology),
		}
	}

	a.mu.Lock()
	a.weights = weights.normalized()
	a.mu.Unlock()
	return nil
}

// Weights returns the currently active, normalized weights.
func (a *Aggregator) Weights() Weights {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.weights
}

// Aggregate merges the three analyzer results for one content/brand
// pair into a compliance evaluation.
func (a *Aggregator) Aggregate(content *evaluation.Content, brandName string, tone, voice, terminology *evaluation.AnalysisResult) (*evaluation.ComplianceEvaluation, error) {
	if content == nil {
		return nil, &evaluation.ValidationError{Field: "content", Message: "content cannot be nil"}
	}
	if tone == nil || voice == nil || terminology == nil {
		return nil, &evaluation.ValidationError{Field: "analysis", Message: "all three analyzer results are required"}
	}

	weights := a.Weights()
	weighted := float64(tone.Score)*weights.Tone +
		float64(voice.Score)*weights.Voice +
		float64(terminology.Score)*weights.Terminology

	score := int(math.Round(weighted))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	issues := make([]evaluation.Issue, 0, len(tone.Issues)+len(voice.Issues)+len(terminology.Issues))
	issues = append(issues, tone.Issues...)
	issues = append(issues, voice.Issues...)
	issues = append(issues, terminology.Issues...)

	for i := range issues {
		if issues[i].Severity == "" {
			issues[i].Severity = classifySeverity(issues[i].Description)
		}
	}

	// Stable sort keeps analyzer order within a severity band, which
	// makes repeated evaluations byte-identical.
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() > issues[j].Severity.Rank()
	})

	summary := summarize(score, issues)

	return evaluation.NewComplianceEvaluation(
		content.Text(), content.Context(), brandName, score, issues, summary)
}

// classifySeverity assigns a severity from keyword heuristics over the
// issue description.
func classifySeverity(description string) evaluation.Severity {
	lower := strings.ToLower(description)

	for _, kw := range []string{"avoided", "forbidden", "never", "critical"} {
		if strings.Contains(lower, kw) {
			return evaluation.SeverityHigh
		}
	}
	for _, kw := range []string{"should", "prefer", "recommended"} {
		if strings.Contains(lower, kw) {
			return evaluation.SeverityMedium
		}
	}
	return evaluation.SeverityLow
}

// summarize buckets the score into five bands and appends per-severity
// issue counts.
func summarize(score int, issues []evaluation.Issue) string {
	var band string
	switch {
	case score >= 90:
		band = "excellent brand compliance"
	case score >= 80:
		band = "good brand compliance"
	case score >= 70:
		band = "fair brand compliance"
	case score >= 60:
		band = "poor brand compliance"
	default:
		band = "very poor brand compliance"
	}

	if len(issues) == 0 {
		return fmt.Sprintf("%s (score %d); no issues found", band, score)
	}

	high, medium, low := 0, 0, 0
	for _, issue := range issues {
		switch rank := issue.Severity.Rank(); {
		case rank >= evaluation.SeverityHigh.Rank():
			high++
		case rank >= evaluation.SeverityMedium.Rank():
			medium++
		default:
			low++
		}
	}

	return fmt.Sprintf("%s (score %d); %d high, %d medium, %d low severity issue(s)",
		band, score, high, medium, low)
}
