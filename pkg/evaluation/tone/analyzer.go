// Package tone implements the tone analyzer: weighted keyword and
// phrase pattern detection of a brand's primary and avoided tones, with
// contextual tone substitution.
package tone

import (
	"fmt"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/evaluation"
	"brandguard-hq/brandguard/pkg/evaluation/match"
)

const (
	// DetectionThreshold is the confidence above which a tone counts as
	// detected.
	DetectionThreshold = 0.5

	// WeakPrimaryThreshold is the confidence below which the primary
	// tone is penalized as missing.
	WeakPrimaryThreshold = 0.3

	// weakPrimaryPenalty is subtracted when the primary tone confidence
	// is below WeakPrimaryThreshold.
	weakPrimaryPenalty = 20

	// avoidedTonePenalty is subtracted for each avoided tone detected
	// above DetectionThreshold.
	avoidedTonePenalty = 25
)

// Analyzer detects tonal fit against a fixed brand. It is stateless
// over the brand and safe for concurrent use.
type Analyzer struct {
	brand   *brand.Brand
	matcher *match.Matcher
}

// NewAnalyzer creates a tone analyzer for one brand.
func NewAnalyzer(b *brand.Brand, matcher *match.Matcher) *Analyzer {
	if matcher == nil {
		matcher = match.New()
	}
	return &Analyzer{brand: b, matcher: matcher}
}

// Analyze scores tonal compliance of the content. A contextual tone
// override, when present for the content's context label, substitutes
// for the primary tone before scoring.
func (a *Analyzer) Analyze(content *evaluation.Content) (*evaluation.AnalysisResult, error) {
	if content == nil {
		return nil, &evaluation.ValidationError{Field: "content", Message: "content cannot be nil"}
	}

	text := content.Normalized()
	result := &evaluation.AnalysisResult{Score: 100}

	primary := a.brand.Tone.Primary
	if override, ok := a.brand.ContextualTone(content.Context()); ok {
		primary = override
	}

	if primary != "" {
		confidence := a.Confidence(text, primary)
		if confidence < WeakPrimaryThreshold {
			result.Score -= weakPrimaryPenalty
			result.Issues = append(result.Issues, evaluation.Issue{
				Type: evaluation.IssueTone,
				Description: fmt.Sprintf(
					"primary tone %q is not clearly present (confidence %.2f); content should convey this tone more strongly",
					primary, confidence),
				Suggestion: fmt.Sprintf("rework the copy to express a %s tone", primary),
			})
		}
	}

	for _, avoided := range a.brand.Tone.Avoided {
		confidence := a.Confidence(text, avoided)
		if confidence > DetectionThreshold {
			result.Score -= avoidedTonePenalty
			result.Issues = append(result.Issues, evaluation.Issue{
				Type: evaluation.IssueTone,
				Description: fmt.Sprintf(
					"avoided tone %q detected (confidence %.2f)", avoided, confidence),
				Suggestion: fmt.Sprintf("remove language that reads as %s", avoided),
			})
		}
	}

	if result.Score < 0 {
		result.Score = 0
	}

	return result, nil
}

// Confidence computes the detection confidence for one tone: the sum of
// weighted pattern hits, capped at 1. Tones without a built-in lexicon
// fall back to matching the tone word itself.
func (a *Analyzer) Confidence(text, tone string) float64 {
	patterns, ok := toneLexicon[tone]
	if !ok {
		patterns = []match.WeightedPattern{{Phrase: tone, Weight: 0.6}}
	}
	return a.matcher.Confidence(text, patterns)
}
