package evaluation

import (
	"fmt"
	"time"
)

// ComplianceThreshold is the minimum compliance score considered
// compliant. The boundary is inclusive: a score of exactly 80 passes.
const ComplianceThreshold = 80

// CategoryEvaluation is the assessment of one safety category.
type CategoryEvaluation struct {
	// Category is the safety category name (e.g., "profanity").
	Category string `json:"category"`

	// Risk is the assessed risk level for this category.
	Risk RiskLevel `json:"risk"`

	// Tolerance is the configured maximum tolerated risk for this
	// category. It never changes the assessed risk; it only feeds the
	// downstream publication decision.
	Tolerance RiskLevel `json:"tolerance"`

	// Exceeded reports whether Risk is above Tolerance.
	Exceeded bool `json:"exceeded"`

	// Explanation cites the signal that produced the assessment.
	Explanation string `json:"explanation"`
}

// SafetyEvaluation is the result of evaluating content against the
// configured safety categories.
type SafetyEvaluation struct {
	// ContentText is the evaluated content.
	ContentText string `json:"content_text"`

	// Context is the usage-context label the content was evaluated under.
	Context string `json:"context,omitempty"`

	// OverallRisk is the maximum risk across all category evaluations.
	OverallRisk RiskLevel `json:"overall_risk"`

	// Categories holds the per-category assessments.
	Categories []CategoryEvaluation `json:"categories"`

	// Summary is a human-readable description of the outcome.
	Summary string `json:"summary"`

	// Timestamp is when the evaluation completed.
	Timestamp time.Time `json:"timestamp"`
}

// IsSafe reports whether the overall risk is NONE or LOW. The boundary
// is exact: MEDIUM is not safe.
func (e *SafetyEvaluation) IsSafe() bool {
	return e.OverallRisk <= RiskLow
}

// AnalysisResult is the common output contract of the tone, voice, and
// terminology analyzers: a 0-100 sub-score and the issues found.
type AnalysisResult struct {
	// Score is the analyzer sub-score, clamped to [0, 100].
	Score int `json:"score"`

	// Issues lists the problems the analyzer detected.
	Issues []Issue `json:"issues"`
}

// ComplianceEvaluation is the result of evaluating content against a
// brand's tone, voice, and terminology guidelines.
type ComplianceEvaluation struct {
	// ContentText is the evaluated content.
	ContentText string `json:"content_text"`

	// Context is the usage-context label the content was evaluated under.
	Context string `json:"context,omitempty"`

	// BrandName identifies the brand rule set used.
	BrandName string `json:"brand_name"`

	// Score is the weighted compliance score in [0, 100].
	Score int `json:"score"`

	// Issues is the severity-sorted union of all analyzer issues.
	Issues []Issue `json:"issues"`

	// Summary is a human-readable description of the outcome.
	Summary string `json:"summary"`

	// Timestamp is when the evaluation completed.
	Timestamp time.Time `json:"timestamp"`
}

// NewComplianceEvaluation constructs a compliance evaluation, rejecting
// out-of-range scores. Scores are produced clamped by the aggregator, so
// an out-of-range value here indicates a programming error upstream.
func NewComplianceEvaluation(contentText, context, brandName string, score int, issues []Issue, summary string) (*ComplianceEvaluation, error) {
	if score < 0 || score > 100 {
		return nil, &ValidationError{
			Field:   "score",
			Message: fmt.Sprintf("compliance score %d is outside [0, 100]", score),
		}
	}

	return &ComplianceEvaluation{
		ContentText: contentText,
		Context:     context,
		BrandName:   brandName,
		Score:       score,
		Issues:      issues,
		Summary:     summary,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// IsCompliant reports whether the score meets ComplianceThreshold.
func (e *ComplianceEvaluation) IsCompliant() bool {
	return e.Score >= ComplianceThreshold
}

// CombinedWeights is the weight pair used to merge safety and
// compliance into one combined score.
type CombinedWeights struct {
	// Safety is the weight applied to the safety-derived score.
	Safety float64 `json:"safety" yaml:"safety"`

	// Brand is the weight applied to the compliance score.
	Brand float64 `json:"brand" yaml:"brand"`
}

// CombinedResult merges an optional safety evaluation and an optional
// compliance evaluation into one publication decision.
type CombinedResult struct {
	// Safety is the safety evaluation, nil when skipped by caller flags.
	Safety *SafetyEvaluation `json:"safety,omitempty"`

	// Compliance is the compliance evaluation, nil when skipped.
	Compliance *ComplianceEvaluation `json:"compliance,omitempty"`

	// CombinedScore is the weighted 0-100 score. It is nil when no
	// weights were supplied; in that case Compliant is derived from the
	// individual sub-evaluation thresholds instead.
	CombinedScore *int `json:"combined_score,omitempty"`

	// Weights records the weight pair used, nil if none was supplied.
	Weights *CombinedWeights `json:"weights,omitempty"`

	// Compliant is the final gate decision.
	Compliant bool `json:"compliant"`

	// Timestamp is when the combination completed.
	Timestamp time.Time `json:"timestamp"`
}
