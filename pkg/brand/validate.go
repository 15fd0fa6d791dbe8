package brand

import (
	"fmt"

	"brandguard-hq/brandguard/pkg/evaluation"
)

// Validate checks a brand rule set for structural problems. A brand that
// fails validation must never reach the analyzers.
func Validate(b *Brand) error {
	if b == nil {
		return &evaluation.ValidationError{Field: "brand", Message: "brand cannot be nil"}
	}

	if b.Name == "" {
		return &evaluation.ValidationError{Field: "brand.name", Message: "brand name is required"}
	}

	for i, rule := range b.Terminology.Rules {
		if rule.Preferred == "" {
			return &evaluation.ValidationError{
				Field:   fmt.Sprintf("brand.terminology.rules[%d].preferred", i),
				Message: "term rule requires a preferred term",
			}
		}
	}

	for i, ex := range b.Terminology.Exemptions {
		if ex.Term == "" {
			return &evaluation.ValidationError{
				Field:   fmt.Sprintf("brand.terminology.exemptions[%d].term", i),
				Message: "exemption requires a term",
			}
		}
	}

	for _, avoided := range b.Tone.Avoided {
		if avoided == b.Tone.Primary && avoided != "" {
			return &evaluation.ValidationError{
				Field:   "brand.tone.avoided",
				Message: fmt.Sprintf("tone %q cannot be both primary and avoided", avoided),
			}
		}
	}

	return nil
}
