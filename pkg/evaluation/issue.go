package evaluation

// IssueType identifies which analyzer (or plugin) produced an issue.
type IssueType string

const (
	// IssueTone marks issues from the tone analyzer.
	IssueTone IssueType = "tone"

	// IssueVoice marks issues from the voice analyzer.
	IssueVoice IssueType = "voice"

	// IssueTerminology marks issues from the terminology analyzer.
	IssueTerminology IssueType = "terminology"

	// IssueSafety marks issues from safety category evaluation.
	IssueSafety IssueType = "safety"

	// IssuePlugin marks issues contributed by evaluation plugins.
	IssuePlugin IssueType = "plugin"
)

// Severity describes how serious an issue is. Analyzer issues use the
// low/medium/high scale; plugin-sourced issues may additionally use the
// info/warning/error/critical scale.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"

	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// severityRank orders severities for sorting, highest first. Plugin
// severities interleave with the analyzer scale at comparable weight.
var severityRank = map[Severity]int{
	SeverityCritical: 5,
	SeverityHigh:     4,
	SeverityError:    4,
	SeverityMedium:   3,
	SeverityWarning:  3,
	SeverityLow:      2,
	SeverityInfo:     1,
}

// Rank returns the sort weight of the severity; higher is more severe.
func (s Severity) Rank() int {
	return severityRank[s]
}

// Position marks a location in the content by character offsets.
type Position struct {
	// Start is the starting character index.
	Start int `json:"start"`

	// End is the ending character index (exclusive).
	End int `json:"end"`
}

// Issue is one detected problem in a piece of content. Issues are pure
// evaluation output and never mutated after creation.
type Issue struct {
	// Type identifies the producing analyzer.
	Type IssueType `json:"type"`

	// Severity is assigned by the producing analyzer or, for compliance
	// issues, by the aggregator's keyword heuristic.
	Severity Severity `json:"severity"`

	// Description is the human-readable explanation of the problem.
	Description string `json:"description"`

	// Suggestion is an optional remediation hint.
	Suggestion string `json:"suggestion,omitempty"`

	// Position optionally locates the problem in the content.
	Position *Position `json:"position,omitempty"`
}
