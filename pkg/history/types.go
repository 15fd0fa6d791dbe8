package history

import "time"

// Record is one persisted evaluation outcome. The raw content is never
// stored; the fingerprint ties a record back to content the caller
// still holds.
type Record struct {
	// ID is a UUID assigned at store time.
	ID string `json:"id"`

	// Kind is the evaluation kind: "safety", "compliance", or
	// "combined".
	Kind string `json:"kind"`

	// Fingerprint is the content fingerprint the result cache uses.
	Fingerprint string `json:"fingerprint"`

	// BrandName is the brand evaluated against, empty for safety-only
	// evaluations.
	BrandName string `json:"brand_name,omitempty"`

	// Context is the content context, if any.
	Context string `json:"context,omitempty"`

	// Score is the numeric score, when the evaluation produced one.
	Score *int `json:"score,omitempty"`

	// Risk is the overall risk level name for safety evaluations.
	Risk string `json:"risk,omitempty"`

	// Passed reports whether the evaluation passed its threshold.
	Passed bool `json:"passed"`

	// IssueCount is the number of issues raised.
	IssueCount int `json:"issue_count"`

	// Summary is the human-readable outcome summary.
	Summary string `json:"summary,omitempty"`

	// CreatedAt is when the record was stored.
	CreatedAt time.Time `json:"created_at"`
}

// Query filters records returned by Store.Query. Zero values mean no
// filtering on that field.
type Query struct {
	// Kind restricts results to one evaluation kind.
	Kind string

	// BrandName restricts results to one brand.
	BrandName string

	// Since excludes records created before this time.
	Since time.Time

	// Until excludes records created after this time.
	Until time.Time

	// Limit caps the number of records returned. Zero uses the default
	// of 100.
	Limit int

	// Offset skips the first N matching records.
	Offset int
}
