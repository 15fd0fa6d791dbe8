package config

import "time"

// Config is the complete engine configuration.
type Config struct {
	// Content configures content validation limits.
	Content ContentConfig `yaml:"content"`

	// Safety configures the safety categorizer.
	Safety SafetyConfig `yaml:"safety"`

	// Compliance configures compliance aggregation weights.
	Compliance ComplianceConfig `yaml:"compliance"`

	// Combined configures the combined evaluator weights.
	Combined CombinedConfig `yaml:"combined"`

	// Cache configures the evaluation result cache.
	Cache CacheConfig `yaml:"cache"`

	// Brands configures where brand documents are loaded from.
	Brands BrandsConfig `yaml:"brands"`

	// History configures the evaluation history store.
	History HistoryConfig `yaml:"history"`

	// Logging configures structured logging output.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `yaml:"metrics"`
}

// ContentConfig bounds the content accepted for evaluation.
type ContentConfig struct {
	// MaxLength is the hard ceiling on content length in characters.
	MaxLength int `yaml:"max_length"`
}

// SafetyConfig configures per-category risk tolerances and the free-form
// keyword and topic lists the categorizer consults.
type SafetyConfig struct {
	// Tolerances maps a safety category name to the maximum risk level
	// name tolerated for that category (NONE, LOW, MEDIUM, HIGH,
	// VERY_HIGH). Categories not listed use their defaults; unknown
	// category names are ignored at evaluation time.
	Tolerances map[string]string `yaml:"tolerances"`

	// SensitiveKeywords are additional keywords flagged under the
	// contextual category.
	SensitiveKeywords []string `yaml:"sensitive_keywords"`

	// AllowedTopics are topics that never raise the contextual category.
	AllowedTopics []string `yaml:"allowed_topics"`

	// BlockedTopics are topics flagged at HIGH risk under the contextual
	// category.
	BlockedTopics []string `yaml:"blocked_topics"`
}

// ComplianceConfig holds the analyzer weights used by the compliance
// aggregator. Weights are renormalized to sum to 1 after loading.
type ComplianceConfig struct {
	// ToneWeight is the tone analyzer weight.
	ToneWeight float64 `yaml:"tone_weight"`

	// VoiceWeight is the voice analyzer weight.
	VoiceWeight float64 `yaml:"voice_weight"`

	// TerminologyWeight is the terminology analyzer weight.
	TerminologyWeight float64 `yaml:"terminology_weight"`
}

// CombinedConfig holds the default weight pair for merging safety and
// compliance into one score. When both weights are zero, no combined
// score is produced and the per-evaluation thresholds gate instead.
type CombinedConfig struct {
	// SafetyWeight is applied to the safety-derived score.
	SafetyWeight float64 `yaml:"safety_weight"`

	// BrandWeight is applied to the compliance score.
	BrandWeight float64 `yaml:"brand_weight"`
}

// CacheConfig configures the evaluation result cache.
type CacheConfig struct {
	// Enabled toggles result caching.
	Enabled bool `yaml:"enabled"`

	// SafetyTTL is the time-to-live for cached safety evaluations.
	SafetyTTL time.Duration `yaml:"safety_ttl"`

	// ComplianceTTL is the time-to-live for cached compliance
	// evaluations.
	ComplianceTTL time.Duration `yaml:"compliance_ttl"`

	// CleanupInterval is how often expired entries are swept. Zero
	// derives an interval from the shortest TTL.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// MaxEntries bounds the cache size; 0 means unlimited.
	MaxEntries int `yaml:"max_entries"`
}

// BrandsConfig configures brand document loading.
type BrandsConfig struct {
	// Dir is the directory holding brand YAML documents.
	Dir string `yaml:"dir"`

	// Watch enables live reload of changed brand files.
	Watch bool `yaml:"watch"`
}

// HistoryConfig configures the persisted evaluation trail.
type HistoryConfig struct {
	// Enabled toggles history recording.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// RetentionDays is how long records are kept before pruning.
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for automatic pruning. Empty
	// disables scheduled pruning.
	PruneSchedule string `yaml:"prune_schedule"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the output format ("json", "text", "console").
	Format string `yaml:"format"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Enabled toggles metric collection.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric namespace prefix.
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem prefix.
	Subsystem string `yaml:"subsystem"`
}

// Clone returns a deep copy of the configuration. Snapshots handed to
// callers are clones, so callers can never mutate the active
// configuration through a snapshot.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c

	if c.Safety.Tolerances != nil {
		clone.Safety.Tolerances = make(map[string]string, len(c.Safety.Tolerances))
		for k, v := range c.Safety.Tolerances {
			clone.Safety.Tolerances[k] = v
		}
	}
	clone.Safety.SensitiveKeywords = append([]string(nil), c.Safety.SensitiveKeywords...)
	clone.Safety.AllowedTopics = append([]string(nil), c.Safety.AllowedTopics...)
	clone.Safety.BlockedTopics = append([]string(nil), c.Safety.BlockedTopics...)

	return &clone
}
