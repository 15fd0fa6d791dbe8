package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults,
// and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies BRANDGUARD_* environment variable overrides. Environment
// variables always take precedence over file values.
//
// The loading sequence is:
//  1. Load YAML from file (applies defaults)
//  2. Apply environment variable overrides
//  3. Re-validate the final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides using the
// BRANDGUARD_SECTION_FIELD naming convention.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("BRANDGUARD_CONTENT_MAX_LENGTH"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Content.MaxLength = i
		}
	}

	if val := os.Getenv("BRANDGUARD_CACHE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Cache.Enabled = b
		}
	}
	if val := os.Getenv("BRANDGUARD_CACHE_SAFETY_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Cache.SafetyTTL = d
		}
	}
	if val := os.Getenv("BRANDGUARD_CACHE_COMPLIANCE_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Cache.ComplianceTTL = d
		}
	}

	if val := os.Getenv("BRANDGUARD_BRANDS_DIR"); val != "" {
		cfg.Brands.Dir = val
	}
	if val := os.Getenv("BRANDGUARD_BRANDS_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Brands.Watch = b
		}
	}

	if val := os.Getenv("BRANDGUARD_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("BRANDGUARD_HISTORY_PATH"); val != "" {
		cfg.History.Path = val
	}

	if val := os.Getenv("BRANDGUARD_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("BRANDGUARD_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}

	if val := os.Getenv("BRANDGUARD_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
}
