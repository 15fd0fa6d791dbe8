// Package voice implements the voice analyzer: contraction usage,
// personal pronoun usage, and sentence structure checks against a
// brand's voice guidelines. Checks are statistically gated: short
// content with too few sentences is never flagged for style.
package voice

import (
	"fmt"
	"strings"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/evaluation"
	"brandguard-hq/brandguard/pkg/evaluation/match"
)

const (
	// contractionSentenceGate is the sentence count above which the
	// contraction check applies.
	contractionSentenceGate = 3

	// pronounSentenceGate is the sentence count above which the pronoun
	// check applies.
	pronounSentenceGate = 2

	// contractionPenalty is subtracted for a failed contraction check.
	contractionPenalty = 15

	// pronounPenalty is subtracted for a failed pronoun check.
	pronounPenalty = 15

	// structurePenalty is subtracted for a failed structure check.
	structurePenalty = 20

	// conciseMaxAverageWords is the average sentence length above which
	// "concise" content is flagged.
	conciseMaxAverageWords = 20.0

	// variedMinSpread is the minimum word-count spread across sentences
	// for "varied" content.
	variedMinSpread = 4

	// directMaxPassiveRatio is the passive-voice ratio above which
	// "direct" content is flagged.
	directMaxPassiveRatio = 0.3
)

// Analyzer checks voice compliance against a fixed brand. It is
// stateless over the brand and safe for concurrent use.
type Analyzer struct {
	brand *brand.Brand
}

// NewAnalyzer creates a voice analyzer for one brand.
func NewAnalyzer(b *brand.Brand) *Analyzer {
	return &Analyzer{brand: b}
}

// Analyze runs the three independent voice checks. Each failed check
// subtracts its fixed penalty and contributes its own issue. A
// contextual contraction override can restore the score and remove
// already-recorded contraction issues when the content is appropriate
// under the contextual rule.
func (a *Analyzer) Analyze(content *evaluation.Content) (*evaluation.AnalysisResult, error) {
	if content == nil {
		return nil, &evaluation.ValidationError{Field: "content", Message: "content cannot be nil"}
	}

	text := content.Normalized()
	sentences := match.CountSentences(text)
	result := &evaluation.AnalysisResult{Score: 100}

	a.checkContractions(text, content.Context(), sentences, result)
	a.checkPronouns(text, sentences, result)
	a.checkStructure(text, sentences, result)

	if result.Score < 0 {
		result.Score = 0
	}

	return result, nil
}

// checkContractions compares contraction counts against the boolean
// guideline, gated on sentence count.
func (a *Analyzer) checkContractions(text, context string, sentences int, result *evaluation.AnalysisResult) {
	if sentences <= contractionSentenceGate {
		return
	}

	count := match.CountContractions(text)
	if a.contractionsOK(a.brand.Voice.UseContractions, count) {
		return
	}

	issue := a.contractionIssue(a.brand.Voice.UseContractions)
	result.Score -= contractionPenalty
	result.Issues = append(result.Issues, issue)

	// A contextual rule can make the recorded usage appropriate after
	// all; restore the score and drop the issue.
	if override, ok := a.brand.ContextualContractions(context); ok && a.contractionsOK(override, count) {
		result.Score += contractionPenalty
		result.Issues = removeContractionIssues(result.Issues)
	}
}

// contractionsOK reports whether the observed contraction count
// satisfies the policy.
func (a *Analyzer) contractionsOK(useContractions bool, count int) bool {
	if useContractions {
		return count > 0
	}
	return count == 0
}

// contractionIssue builds the issue for a failed contraction check.
func (a *Analyzer) contractionIssue(useContractions bool) evaluation.Issue {
	if useContractions {
		return evaluation.Issue{
			Type:        evaluation.IssueVoice,
			Description: "no contractions found; the brand voice should use contractions for an approachable feel",
			Suggestion:  "use forms like \"we're\" and \"don't\" where natural",
		}
	}
	return evaluation.Issue{
		Type:        evaluation.IssueVoice,
		Description: "contractions found; the brand voice should avoid contractions",
		Suggestion:  "expand contractions, e.g. \"we're\" to \"we are\"",
	}
}

// checkPronouns compares first/second person pronoun usage against the
// boolean guideline, gated on sentence count.
func (a *Analyzer) checkPronouns(text string, sentences int, result *evaluation.AnalysisResult) {
	if sentences <= pronounSentenceGate {
		return
	}

	count := match.CountPersonalPronouns(text)
	wantPronouns := a.brand.Voice.PersonalPronouns

	if wantPronouns && count == 0 {
		result.Score -= pronounPenalty
		result.Issues = append(result.Issues, evaluation.Issue{
			Type:        evaluation.IssueVoice,
			Description: "no personal pronouns found; the brand voice should address the reader directly",
			Suggestion:  "use \"we\" and \"you\" to speak to the reader",
		})
		return
	}

	if !wantPronouns && count > 0 {
		result.Score -= pronounPenalty
		result.Issues = append(result.Issues, evaluation.Issue{
			Type:        evaluation.IssueVoice,
			Description: fmt.Sprintf("%d personal pronouns found; the brand voice should stay impersonal", count),
			Suggestion:  "rephrase in third person",
		})
	}
}

// checkStructure compares sentence structure against the guideline
// keywords ("concise", "varied", "direct"). At most one structure
// penalty applies per evaluation.
func (a *Analyzer) checkStructure(text string, sentences int, result *evaluation.AnalysisResult) {
	structure := strings.ToLower(a.brand.Voice.SentenceStructure)
	if structure == "" || sentences == 0 {
		return
	}

	if strings.Contains(structure, "concise") {
		if avg := match.AverageSentenceLength(text); avg > conciseMaxAverageWords {
			a.failStructure(result, fmt.Sprintf(
				"average sentence length %.1f words exceeds the concise guideline; shorter sentences are recommended", avg))
			return
		}
	}

	if strings.Contains(structure, "varied") && sentences > contractionSentenceGate {
		if spread := sentenceLengthSpread(text); spread < variedMinSpread {
			a.failStructure(result,
				"sentence lengths are uniform; the brand voice prefers varied sentence structure")
			return
		}
	}

	if strings.Contains(structure, "direct") {
		if ratio := match.PassiveVoiceRatio(text); ratio > directMaxPassiveRatio {
			a.failStructure(result, fmt.Sprintf(
				"%.0f%% of sentences use passive voice; the brand voice should be direct", ratio*100))
		}
	}
}

// failStructure records the structure penalty and issue.
func (a *Analyzer) failStructure(result *evaluation.AnalysisResult, description string) {
	result.Score -= structurePenalty
	result.Issues = append(result.Issues, evaluation.Issue{
		Type:        evaluation.IssueVoice,
		Description: description,
		Suggestion:  "rework sentence structure to match the brand voice",
	})
}

// sentenceLengthSpread returns the difference between the longest and
// shortest sentence, in words.
func sentenceLengthSpread(text string) int {
	sentences := match.SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	minLen, maxLen := -1, 0
	for _, s := range sentences {
		words := match.CountWords(s)
		if minLen == -1 || words < minLen {
			minLen = words
		}
		if words > maxLen {
			maxLen = words
		}
	}
	return maxLen - minLen
}

// removeContractionIssues drops contraction issues from the list,
// keeping the others in order.
func removeContractionIssues(issues []evaluation.Issue) []evaluation.Issue {
	kept := issues[:0]
	for _, issue := range issues {
		if issue.Type == evaluation.IssueVoice && strings.Contains(issue.Description, "contraction") {
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}
