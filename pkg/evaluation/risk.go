package evaluation

import "fmt"

// RiskLevel is an ordered safety severity. It is used both as a
// per-category assessment and as the aggregated overall value of a
// safety evaluation.
type RiskLevel int

const (
	// RiskNone indicates no detected risk.
	RiskNone RiskLevel = iota

	// RiskLow indicates minimal risk that rarely needs review.
	RiskLow

	// RiskMedium indicates risk that should be reviewed before publication.
	RiskMedium

	// RiskHigh indicates serious risk that normally blocks publication.
	RiskHigh

	// RiskVeryHigh indicates the most severe risk level.
	RiskVeryHigh
)

// riskNames maps risk levels to their canonical string form.
var riskNames = map[RiskLevel]string{
	RiskNone:     "NONE",
	RiskLow:      "LOW",
	RiskMedium:   "MEDIUM",
	RiskHigh:     "HIGH",
	RiskVeryHigh: "VERY_HIGH",
}

// riskScores converts a risk level to a 0-100 score for combined
// scoring. The table is fixed: safer content scores higher.
var riskScores = map[RiskLevel]int{
	RiskNone:     100,
	RiskLow:      80,
	RiskMedium:   60,
	RiskHigh:     30,
	RiskVeryHigh: 0,
}

// String returns the canonical name of the risk level.
func (r RiskLevel) String() string {
	if name, ok := riskNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RiskLevel(%d)", int(r))
}

// Score converts the risk level to a 0-100 safety score.
func (r RiskLevel) Score() int {
	if score, ok := riskScores[r]; ok {
		return score
	}
	return 0
}

// IsValid reports whether the value is one of the defined risk levels.
func (r RiskLevel) IsValid() bool {
	_, ok := riskNames[r]
	return ok
}

// ParseRiskLevel parses a risk level name (case-sensitive, canonical
// form). Unknown names are rejected so configuration errors surface at
// update time rather than during evaluation.
func ParseRiskLevel(s string) (RiskLevel, error) {
	for level, name := range riskNames {
		if name == s {
			return level, nil
		}
	}
	return RiskNone, fmt.Errorf("unknown risk level: %q", s)
}

// MaxRisk returns the higher of two risk levels.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if b > a {
		return b
	}
	return a
}

// MarshalJSON encodes the risk level as its canonical name.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON decodes a canonical risk level name.
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	level, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}
	*r = level
	return nil
}
