// Package safety implements the safety categorizer: keyword and pattern
// checks per safety category, each yielding a risk level with an
// explanation citing the matched signal. The overall risk of an
// evaluation is the maximum across categories; configured tolerances
// never change assessed risk, they only feed the downstream decision.
package safety

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"brandguard-hq/brandguard/pkg/config"
	"brandguard-hq/brandguard/pkg/evaluation"
	"brandguard-hq/brandguard/pkg/evaluation/match"
)

// Categorizer evaluates content per safety category. It is stateless
// over a given configuration and safe for concurrent use.
type Categorizer struct {
	matcher *match.Matcher
	logger  *slog.Logger
}

// NewCategorizer creates a safety categorizer.
func NewCategorizer(matcher *match.Matcher, logger *slog.Logger) *Categorizer {
	if matcher == nil {
		matcher = match.New()
	}
	if logger == nil {
		logger = slog.Default().With("component", "evaluation.safety")
	}
	return &Categorizer{matcher: matcher, logger: logger}
}

// Evaluate runs every enabled category check against the normalized
// content and aggregates the overall risk as the maximum category risk.
// Unknown category names in the configuration are ignored.
func (c *Categorizer) Evaluate(content *evaluation.Content, cfg *config.SafetyConfig) (*evaluation.SafetyEvaluation, error) {
	if content == nil {
		return nil, &evaluation.ValidationError{Field: "content", Message: "content cannot be nil"}
	}

	text := content.Normalized()

	// Deterministic category order regardless of map iteration.
	categories := make([]string, 0, len(cfg.Tolerances))
	for category := range cfg.Tolerances {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	result := &evaluation.SafetyEvaluation{
		ContentText: content.Text(),
		Context:     content.Context(),
		OverallRisk: evaluation.RiskNone,
	}

	for _, category := range categories {
		tolerance, err := evaluation.ParseRiskLevel(cfg.Tolerances[category])
		if err != nil {
			// Validated at config time; a bad value here is a bug, not
			// an evaluation failure.
			return nil, &evaluation.ConfigError{Setting: "safety.tolerances." + category, Message: err.Error()}
		}

		catEval, known := c.evaluateCategory(category, text, cfg)
		if !known {
			c.logger.Debug("ignoring unknown safety category", "category", category)
			continue
		}

		catEval.Tolerance = tolerance
		catEval.Exceeded = catEval.Risk > tolerance
		result.Categories = append(result.Categories, catEval)
		result.OverallRisk = evaluation.MaxRisk(result.OverallRisk, catEval.Risk)
	}

	result.Summary = summarize(result)
	result.Timestamp = time.Now().UTC()

	return result, nil
}

// evaluateCategory runs one category's check. The second return value
// reports whether the category is known.
func (c *Categorizer) evaluateCategory(category, text string, cfg *config.SafetyConfig) (evaluation.CategoryEvaluation, bool) {
	switch category {
	case config.CategorySentiment:
		return c.evaluateSentiment(category, text), true
	case config.CategoryContextual:
		return c.evaluateContextual(category, text, cfg), true
	}

	groups, ok := categorySignals[category]
	if !ok {
		return evaluation.CategoryEvaluation{}, false
	}

	return c.evaluateSignals(category, text, groups), true
}

// evaluateSignals assesses one lexicon-backed category. The first
// (highest-risk) group with a match sets the base risk; three or more
// hits inside the category escalate the risk one level.
func (c *Categorizer) evaluateSignals(category, text string, groups []signalGroup) evaluation.CategoryEvaluation {
	var (
		baseRisk  = evaluation.RiskNone
		firstTerm string
		matches   int
	)

	for _, group := range groups {
		for _, term := range group.terms {
			hits := c.matcher.Count(text, term)
			if hits == 0 {
				continue
			}
			matches += hits
			if group.risk > baseRisk {
				baseRisk = group.risk
				firstTerm = term
			} else if firstTerm == "" {
				firstTerm = term
			}
		}
	}

	if baseRisk == evaluation.RiskNone {
		return evaluation.CategoryEvaluation{
			Category:    category,
			Risk:        evaluation.RiskNone,
			Explanation: "no signals detected",
		}
	}

	risk := baseRisk
	if matches >= escalationMatchCount && risk < evaluation.RiskVeryHigh {
		risk++
	}

	explanation := fmt.Sprintf("matched %q (%d signal hit(s))", firstTerm, matches)
	return evaluation.CategoryEvaluation{
		Category:    category,
		Risk:        risk,
		Explanation: explanation,
	}
}

// evaluateSentiment runs the rule-based negative-sentiment check:
// keyword counts only, no classifier.
func (c *Categorizer) evaluateSentiment(category, text string) evaluation.CategoryEvaluation {
	negative := 0
	positive := 0
	for _, term := range negativeSentimentTerms {
		negative += c.matcher.Count(text, term)
	}
	for _, term := range positiveSentimentTerms {
		positive += c.matcher.Count(text, term)
	}

	total := negative + positive
	if total == 0 || negative <= positive {
		return evaluation.CategoryEvaluation{
			Category:    category,
			Risk:        evaluation.RiskNone,
			Explanation: "no negative sentiment signals",
		}
	}

	score := float64(negative-positive) / float64(total)
	risk := evaluation.RiskLow
	if score > 0.5 && negative >= 3 {
		risk = evaluation.RiskMedium
	}

	return evaluation.CategoryEvaluation{
		Category:    category,
		Risk:        risk,
		Explanation: fmt.Sprintf("negative sentiment (%d negative vs %d positive terms)", negative, positive),
	}
}

// evaluateContextual checks the configured sensitive keywords and topic
// lists. Blocked topics assess HIGH, sensitive keywords MEDIUM; allowed
// topics are exempt.
func (c *Categorizer) evaluateContextual(category, text string, cfg *config.SafetyConfig) evaluation.CategoryEvaluation {
	allowed := make(map[string]bool, len(cfg.AllowedTopics))
	for _, topic := range cfg.AllowedTopics {
		allowed[strings.ToLower(topic)] = true
	}

	for _, topic := range cfg.BlockedTopics {
		if allowed[strings.ToLower(topic)] {
			continue
		}
		if c.matcher.Contains(text, topic) {
			return evaluation.CategoryEvaluation{
				Category:    category,
				Risk:        evaluation.RiskHigh,
				Explanation: fmt.Sprintf("matched blocked topic %q", topic),
			}
		}
	}

	for _, keyword := range cfg.SensitiveKeywords {
		if allowed[strings.ToLower(keyword)] {
			continue
		}
		if c.matcher.Contains(text, keyword) {
			return evaluation.CategoryEvaluation{
				Category:    category,
				Risk:        evaluation.RiskMedium,
				Explanation: fmt.Sprintf("matched sensitive keyword %q", keyword),
			}
		}
	}

	return evaluation.CategoryEvaluation{
		Category:    category,
		Risk:        evaluation.RiskNone,
		Explanation: "no contextual signals detected",
	}
}

// summarize builds the human-readable summary of a safety evaluation.
func summarize(eval *evaluation.SafetyEvaluation) string {
	flagged := 0
	exceeded := 0
	for _, cat := range eval.Categories {
		if cat.Risk > evaluation.RiskNone {
			flagged++
		}
		if cat.Exceeded {
			exceeded++
		}
	}

	if flagged == 0 {
		return "no safety signals detected"
	}

	summary := fmt.Sprintf("%d of %d categories flagged; overall risk %s",
		flagged, len(eval.Categories), eval.OverallRisk)
	if exceeded > 0 {
		summary += fmt.Sprintf("; %d categories above tolerance", exceeded)
	}
	return summary
}
