// Package brand defines the brand compliance rule set consumed by the
// evaluation engine, plus loading, validation, deep-merge updates, a
// thread-safe registry, and file watching for live reload.
//
// A Brand is loaded once from a YAML document (structured
// deserialization only, never evaluated source text) and treated as
// immutable by the engine. Runtime updates go through the registry,
// which replaces the stored value wholesale or deep-merges a partial
// document over the cached base.
package brand

// Brand is the complete compliance rule set for one brand: tone, voice,
// and terminology guidelines plus optional visual identity and
// per-context adjustments.
type Brand struct {
	// Name uniquely identifies the brand. Required.
	Name string `yaml:"name" json:"name"`

	// Description is a human-readable summary of the brand.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Tone holds the tonal guidelines.
	Tone ToneGuidelines `yaml:"tone,omitempty" json:"tone,omitempty"`

	// Voice holds the voice and style guidelines.
	Voice VoiceGuidelines `yaml:"voice,omitempty" json:"voice,omitempty"`

	// Terminology holds the terminology guidelines.
	Terminology TerminologyGuidelines `yaml:"terminology,omitempty" json:"terminology,omitempty"`

	// VisualIdentity is carried for completeness but never used in text
	// evaluation.
	VisualIdentity *VisualIdentity `yaml:"visual_identity,omitempty" json:"visual_identity,omitempty"`

	// ContextualAdjustments maps a usage-context label (e.g.,
	// "marketing", "internal") to guideline overrides applied when
	// content is evaluated under that context.
	ContextualAdjustments map[string]ContextualAdjustment `yaml:"contextual_adjustments,omitempty" json:"contextual_adjustments,omitempty"`
}

// ToneGuidelines describes the tonal expectations of a brand.
type ToneGuidelines struct {
	// Primary is the tone the brand leads with (e.g., "confident").
	Primary string `yaml:"primary,omitempty" json:"primary,omitempty"`

	// Secondary lists acceptable supporting tones.
	Secondary []string `yaml:"secondary,omitempty" json:"secondary,omitempty"`

	// Avoided lists tones that must not appear; each detection is
	// penalized independently.
	Avoided []string `yaml:"avoided,omitempty" json:"avoided,omitempty"`

	// ContextualShifts maps a context label to the tone that replaces
	// Primary under that context.
	ContextualShifts map[string]string `yaml:"contextual_shifts,omitempty" json:"contextual_shifts,omitempty"`

	// Examples are illustrative on-tone sentences. They are documentation
	// for brand authors, not matching input.
	Examples []string `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// VoiceGuidelines describes sentence-level style expectations.
type VoiceGuidelines struct {
	// Personality is a descriptor of the brand's voice (e.g.,
	// "approachable expert").
	Personality string `yaml:"personality,omitempty" json:"personality,omitempty"`

	// SentenceStructure holds structure preference keywords. The
	// analyzer recognizes "concise", "varied", and "direct".
	SentenceStructure string `yaml:"sentence_structure,omitempty" json:"sentence_structure,omitempty"`

	// UseContractions is the contraction policy: true expects
	// contractions in long-enough content, false forbids them.
	UseContractions bool `yaml:"use_contractions" json:"use_contractions"`

	// PersonalPronouns is the pronoun policy: true expects first/second
	// person pronouns, false discourages them.
	PersonalPronouns bool `yaml:"personal_pronouns" json:"personal_pronouns"`
}

// TerminologyGuidelines describes word-choice rules.
type TerminologyGuidelines struct {
	// AvoidedTerms are globally forbidden terms.
	AvoidedTerms []string `yaml:"avoided_terms,omitempty" json:"avoided_terms,omitempty"`

	// Exemptions exempt specific terms from AvoidedTerms flagging, each
	// optionally scoped to contexts (empty contexts = exempt everywhere).
	Exemptions []Exemption `yaml:"exemptions,omitempty" json:"exemptions,omitempty"`

	// ProperNouns lists names with required formatting (exact
	// capitalization; compound names without internal spaces).
	ProperNouns []string `yaml:"proper_nouns,omitempty" json:"proper_nouns,omitempty"`

	// Rules are preferred-term rules, optionally context-scoped.
	Rules []TermRule `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// Exemption exempts one term from avoided-term flagging in the listed
// contexts.
type Exemption struct {
	// Term is the exempted term.
	Term string `yaml:"term" json:"term"`

	// Contexts limits the exemption to these context labels; empty means
	// the term is exempt in every context.
	Contexts []string `yaml:"contexts,omitempty" json:"contexts,omitempty"`
}

// TermRule prefers one term over alternatives, optionally scoped to
// specific contexts.
type TermRule struct {
	// Preferred is the term the brand wants used.
	Preferred string `yaml:"preferred" json:"preferred"`

	// Alternatives are terms the rule flags when present without the
	// preferred term.
	Alternatives []string `yaml:"alternatives,omitempty" json:"alternatives,omitempty"`

	// Contexts limits the rule to these context labels; empty means the
	// rule applies in every context.
	Contexts []string `yaml:"contexts,omitempty" json:"contexts,omitempty"`

	// AvoidInContexts disables the rule in these context labels.
	AvoidInContexts []string `yaml:"avoid_in_contexts,omitempty" json:"avoid_in_contexts,omitempty"`
}

// ContextualAdjustment overrides guidelines for one usage context.
type ContextualAdjustment struct {
	// Tone, when set, replaces the primary tone for this context.
	Tone string `yaml:"tone,omitempty" json:"tone,omitempty"`

	// UseContractions, when set, replaces the contraction policy for
	// this context.
	UseContractions *bool `yaml:"use_contractions,omitempty" json:"use_contractions,omitempty"`
}

// VisualIdentity carries visual brand attributes. Out of scope for text
// evaluation; preserved on load so round-tripping a brand document does
// not lose data.
type VisualIdentity struct {
	// PrimaryColor is the main brand color (e.g., "#1a73e8").
	PrimaryColor string `yaml:"primary_color,omitempty" json:"primary_color,omitempty"`

	// SecondaryColors are supporting colors.
	SecondaryColors []string `yaml:"secondary_colors,omitempty" json:"secondary_colors,omitempty"`

	// FontFamily is the preferred typeface.
	FontFamily string `yaml:"font_family,omitempty" json:"font_family,omitempty"`

	// LogoURL points at the canonical logo asset.
	LogoURL string `yaml:"logo_url,omitempty" json:"logo_url,omitempty"`
}

// AppliesToContext reports whether a term rule is active for the given
// context label, honoring both Contexts and AvoidInContexts scoping.
func (r *TermRule) AppliesToContext(context string) bool {
	for _, avoided := range r.AvoidInContexts {
		if avoided == context {
			return false
		}
	}

	if len(r.Contexts) == 0 {
		return true
	}
	for _, c := range r.Contexts {
		if c == context {
			return true
		}
	}
	return false
}

// Exempts reports whether the exemption covers the term under the given
// context label.
func (e *Exemption) Exempts(term, context string) bool {
	if e.Term != term {
		return false
	}
	if len(e.Contexts) == 0 {
		return true
	}
	for _, c := range e.Contexts {
		if c == context {
			return true
		}
	}
	return false
}

// ContextualTone returns the tone that substitutes for the primary tone
// under the given context, looked up first in ContextualAdjustments and
// then in the tone guidelines' contextual shifts. The second return
// value reports whether an override exists.
func (b *Brand) ContextualTone(context string) (string, bool) {
	if context == "" {
		return "", false
	}

	if adj, ok := b.ContextualAdjustments[context]; ok && adj.Tone != "" {
		return adj.Tone, true
	}
	if tone, ok := b.Tone.ContextualShifts[context]; ok && tone != "" {
		return tone, true
	}
	return "", false
}

// ContextualContractions returns the contraction policy override for the
// given context, if one exists.
func (b *Brand) ContextualContractions(context string) (bool, bool) {
	if context == "" {
		return false, false
	}
	if adj, ok := b.ContextualAdjustments[context]; ok && adj.UseContractions != nil {
		return *adj.UseContractions, true
	}
	return false, false
}
