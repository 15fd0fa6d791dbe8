package config

import (
	"fmt"

	"brandguard-hq/brandguard/pkg/evaluation"
)

// Validate checks a configuration for invalid values. Validation runs
// after defaults are applied, so every field is populated. An invalid
// configuration is rejected whole; the caller's prior configuration
// stays active.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if cfg.Content.MaxLength < 1 {
		return &evaluation.ConfigError{
			Setting: "content.max_length",
			Message: "must be at least 1",
		}
	}

	// Tolerance values must parse; unknown category names are tolerated
	// here and ignored by the categorizer.
	for category, tolerance := range cfg.Safety.Tolerances {
		if _, err := evaluation.ParseRiskLevel(tolerance); err != nil {
			return &evaluation.ConfigError{
				Setting: "safety.tolerances." + category,
				Message: err.Error(),
			}
		}
	}

	if err := validateWeight("compliance.tone_weight", cfg.Compliance.ToneWeight); err != nil {
		return err
	}
	if err := validateWeight("compliance.voice_weight", cfg.Compliance.VoiceWeight); err != nil {
		return err
	}
	if err := validateWeight("compliance.terminology_weight", cfg.Compliance.TerminologyWeight); err != nil {
		return err
	}

	if cfg.Combined.SafetyWeight < 0 || cfg.Combined.BrandWeight < 0 {
		return &evaluation.ConfigError{
			Setting: "combined",
			Message: "weights cannot be negative",
		}
	}

	if cfg.Cache.SafetyTTL < 0 || cfg.Cache.ComplianceTTL < 0 {
		return &evaluation.ConfigError{
			Setting: "cache",
			Message: "TTLs cannot be negative",
		}
	}
	if cfg.Cache.MaxEntries < 0 {
		return &evaluation.ConfigError{
			Setting: "cache.max_entries",
			Message: "cannot be negative",
		}
	}

	if cfg.History.RetentionDays < 1 {
		return &evaluation.ConfigError{
			Setting: "history.retention_days",
			Message: "must be at least 1",
		}
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &evaluation.ConfigError{
			Setting: "logging.level",
			Message: fmt.Sprintf("unknown level %q", cfg.Logging.Level),
		}
	}

	switch cfg.Logging.Format {
	case "json", "text", "console":
	default:
		return &evaluation.ConfigError{
			Setting: "logging.format",
			Message: fmt.Sprintf("unknown format %q", cfg.Logging.Format),
		}
	}

	return nil
}

// validateWeight rejects non-positive compliance weights. A zero weight
// would silently drop an analyzer from the score.
func validateWeight(setting string, w float64) error {
	if w <= 0 {
		return &evaluation.ConfigError{
			Setting: setting,
			Message: "must be positive",
		}
	}
	return nil
}

// NormalizedComplianceWeights returns the tone, voice, and terminology
// weights renormalized to sum to 1.
func (c *ComplianceConfig) NormalizedComplianceWeights() (tone, voice, terminology float64) {
	total := c.ToneWeight + c.VoiceWeight + c.TerminologyWeight
	if total == 0 {
		return 0.35, 0.30, 0.35
	}
	return c.ToneWeight / total, c.VoiceWeight / total, c.TerminologyWeight / total
}
