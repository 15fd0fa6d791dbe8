package config

import "time"

// Safety category names recognized by the categorizer. The set is a
// fixed enumeration; configuration may tighten or loosen tolerances but
// cannot invent categories.
const (
	CategorySexualContent        = "sexual_content"
	CategoryViolence             = "violence"
	CategoryHateSpeech           = "hate_speech"
	CategoryHarassment           = "harassment"
	CategorySelfHarm             = "self_harm"
	CategoryIllegalActivities    = "illegal_activities"
	CategoryProfanity            = "profanity"
	CategoryControlledSubstances = "controlled_substances"
	CategoryPolitical            = "political"
	CategoryReligious            = "religious"
	CategorySentiment            = "sentiment"
	CategoryContextual           = "contextual"
)

// DefaultTolerances returns the default per-category risk tolerances.
func DefaultTolerances() map[string]string {
	return map[string]string{
		CategorySexualContent:        "NONE",
		CategoryViolence:             "LOW",
		CategoryHateSpeech:           "NONE",
		CategoryHarassment:           "NONE",
		CategorySelfHarm:             "NONE",
		CategoryIllegalActivities:    "NONE",
		CategoryProfanity:            "MEDIUM",
		CategoryControlledSubstances: "LOW",
		CategoryPolitical:            "MEDIUM",
		CategoryReligious:            "MEDIUM",
		CategorySentiment:            "HIGH",
		CategoryContextual:           "MEDIUM",
	}
}

// DefaultConfig returns a fully populated configuration with default
// values.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with defaults. Loaded
// configurations pass through here before validation, so a minimal YAML
// file yields a complete configuration.
func ApplyDefaults(cfg *Config) {
	if cfg.Content.MaxLength == 0 {
		cfg.Content.MaxLength = 100000
	}

	if cfg.Safety.Tolerances == nil {
		cfg.Safety.Tolerances = DefaultTolerances()
	} else {
		for category, tolerance := range DefaultTolerances() {
			if _, ok := cfg.Safety.Tolerances[category]; !ok {
				cfg.Safety.Tolerances[category] = tolerance
			}
		}
	}

	if cfg.Compliance.ToneWeight == 0 && cfg.Compliance.VoiceWeight == 0 && cfg.Compliance.TerminologyWeight == 0 {
		cfg.Compliance.ToneWeight = 0.35
		cfg.Compliance.VoiceWeight = 0.30
		cfg.Compliance.TerminologyWeight = 0.35
	}

	if cfg.Cache.SafetyTTL == 0 {
		cfg.Cache.SafetyTTL = time.Hour
	}
	if cfg.Cache.ComplianceTTL == 0 {
		cfg.Cache.ComplianceTTL = 30 * time.Minute
	}

	if cfg.Brands.Dir == "" {
		cfg.Brands.Dir = "brands"
	}

	if cfg.History.Path == "" {
		cfg.History.Path = "data/history.db"
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = 90
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "brandguard"
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = "engine"
	}
}
