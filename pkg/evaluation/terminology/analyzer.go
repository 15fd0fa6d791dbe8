// Package terminology implements the terminology analyzer: globally
// avoided terms with context-scoped exemptions, preferred-vs-alternative
// term rules, and proper-noun formatting checks.
package terminology

import (
	"fmt"
	"strings"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/evaluation"
	"brandguard-hq/brandguard/pkg/evaluation/match"
)

const (
	// avoidedTermPenalty is subtracted per unexempted avoided-term hit.
	avoidedTermPenalty = 15

	// alternativePenalty is subtracted per term rule violated.
	alternativePenalty = 10

	// properNounPenalty is subtracted per misformatted proper noun.
	properNounPenalty = 5
)

// Analyzer checks terminology compliance against a fixed brand. It is
// stateless over the brand and safe for concurrent use.
type Analyzer struct {
	brand   *brand.Brand
	matcher *match.Matcher
}

// NewAnalyzer creates a terminology analyzer for one brand.
func NewAnalyzer(b *brand.Brand, matcher *match.Matcher) *Analyzer {
	if matcher == nil {
		matcher = match.New()
	}
	return &Analyzer{brand: b, matcher: matcher}
}

// Analyze runs the avoided-term, preferred-term, and proper-noun checks.
func (a *Analyzer) Analyze(content *evaluation.Content) (*evaluation.AnalysisResult, error) {
	if content == nil {
		return nil, &evaluation.ValidationError{Field: "content", Message: "content cannot be nil"}
	}

	text := content.Normalized()
	context := content.Context()
	result := &evaluation.AnalysisResult{Score: 100}

	a.checkAvoidedTerms(text, context, result)
	a.checkTermRules(text, context, result)
	a.checkProperNouns(text, result)

	if result.Score < 0 {
		result.Score = 0
	}

	return result, nil
}

// checkAvoidedTerms flags word-boundary hits of globally avoided terms,
// consulting the exemption list before flagging.
func (a *Analyzer) checkAvoidedTerms(text, context string, result *evaluation.AnalysisResult) {
	for _, term := range a.brand.Terminology.AvoidedTerms {
		if a.isExempt(term, context) {
			continue
		}

		locations := a.matcher.Locate(text, term)
		if len(locations) == 0 {
			continue
		}

		result.Score -= avoidedTermPenalty * len(locations)
		result.Issues = append(result.Issues, evaluation.Issue{
			Type: evaluation.IssueTerminology,
			Description: fmt.Sprintf(
				"avoided term %q appears %d time(s)", term, len(locations)),
			Suggestion: fmt.Sprintf("remove or replace %q", term),
			Position: &evaluation.Position{
				Start: locations[0][0],
				End:   locations[0][1],
			},
		})
	}
}

// isExempt reports whether a term is exempt from avoided-term flagging
// under the given context.
func (a *Analyzer) isExempt(term, context string) bool {
	for _, ex := range a.brand.Terminology.Exemptions {
		if ex.Exempts(term, context) {
			return true
		}
	}
	return false
}

// checkTermRules flags term rules whose alternative appears without the
// preferred term, honoring per-rule context scoping.
func (a *Analyzer) checkTermRules(text, context string, result *evaluation.AnalysisResult) {
	for _, rule := range a.brand.Terminology.Rules {
		if !rule.AppliesToContext(context) {
			continue
		}

		alternative, found := a.matcher.ContainsAny(text, rule.Alternatives)
		if !found {
			continue
		}
		if a.matcher.Contains(text, rule.Preferred) {
			continue
		}

		result.Score -= alternativePenalty
		result.Issues = append(result.Issues, evaluation.Issue{
			Type: evaluation.IssueTerminology,
			Description: fmt.Sprintf(
				"term %q used where %q is preferred", alternative, rule.Preferred),
			Suggestion: fmt.Sprintf("replace %q with %q", alternative, rule.Preferred),
		})
	}
}

// checkProperNouns flags proper nouns whose occurrences do not match the
// required formatting: exact capitalization, and no internal spaces for
// compound names.
func (a *Analyzer) checkProperNouns(text string, result *evaluation.AnalysisResult) {
	for _, noun := range a.brand.Terminology.ProperNouns {
		if noun == "" {
			continue
		}

		if pos, bad := a.findFormattingMismatch(text, noun); bad {
			result.Score -= properNounPenalty
			result.Issues = append(result.Issues, evaluation.Issue{
				Type: evaluation.IssueTerminology,
				Description: fmt.Sprintf(
					"proper noun %q appears with nonstandard formatting", noun),
				Suggestion: fmt.Sprintf("write the name exactly as %q", noun),
				Position:   pos,
			})
		}
	}
}

// findFormattingMismatch locates the first occurrence of a proper noun
// that deviates from the required form.
func (a *Analyzer) findFormattingMismatch(text, noun string) (*evaluation.Position, bool) {
	// Capitalization: any case-insensitive hit whose exact text differs
	// from the canonical form.
	for _, loc := range a.matcher.Locate(text, noun) {
		if text[loc[0]:loc[1]] != noun {
			return &evaluation.Position{Start: loc[0], End: loc[1]}, true
		}
	}

	// Compound names written without spaces must not be split apart.
	if spaced := spacedVariant(noun); spaced != "" {
		if locs := a.matcher.Locate(text, spaced); len(locs) > 0 {
			return &evaluation.Position{Start: locs[0][0], End: locs[0][1]}, true
		}
	}

	return nil, false
}

// spacedVariant returns the space-separated form of a compound name
// like "BrandGuard" ("Brand Guard"), or "" when the name has no
// interior capital to split on.
func spacedVariant(noun string) string {
	if strings.ContainsRune(noun, ' ') {
		return ""
	}

	var sb strings.Builder
	split := false
	for i, r := range noun {
		if i > 0 && r >= 'A' && r <= 'Z' {
			sb.WriteRune(' ')
			split = true
		}
		sb.WriteRune(r)
	}
	if !split {
		return ""
	}
	return sb.String()
}
