package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Content.MaxLength != 100000 {
		t.Errorf("Content.MaxLength = %d, want 100000", cfg.Content.MaxLength)
	}
	if cfg.Safety.Tolerances[CategoryProfanity] != "MEDIUM" {
		t.Errorf("profanity tolerance = %q, want MEDIUM", cfg.Safety.Tolerances[CategoryProfanity])
	}
	if cfg.Safety.Tolerances[CategoryHarassment] != "NONE" {
		t.Errorf("harassment tolerance = %q, want NONE", cfg.Safety.Tolerances[CategoryHarassment])
	}
	if cfg.Compliance.ToneWeight != 0.35 || cfg.Compliance.VoiceWeight != 0.30 || cfg.Compliance.TerminologyWeight != 0.35 {
		t.Errorf("compliance weights = %+v, want defaults", cfg.Compliance)
	}
	if cfg.Cache.SafetyTTL != time.Hour || cfg.Cache.ComplianceTTL != 30*time.Minute {
		t.Errorf("cache TTLs = %+v, want defaults", cfg.Cache)
	}
	if cfg.History.RetentionDays != 90 {
		t.Errorf("History.RetentionDays = %d, want 90", cfg.History.RetentionDays)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("default configuration fails validation: %v", err)
	}
}

func TestApplyDefaultsKeepsExplicitTolerances(t *testing.T) {
	cfg := &Config{Safety: SafetyConfig{Tolerances: map[string]string{CategoryProfanity: "NONE"}}}
	ApplyDefaults(cfg)

	if cfg.Safety.Tolerances[CategoryProfanity] != "NONE" {
		t.Errorf("explicit tolerance overwritten: %q", cfg.Safety.Tolerances[CategoryProfanity])
	}
	// Unlisted categories fall back to their defaults.
	if cfg.Safety.Tolerances[CategoryViolence] != "LOW" {
		t.Errorf("violence tolerance = %q, want default LOW", cfg.Safety.Tolerances[CategoryViolence])
	}
}

func TestValidateRejections(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative max length", func(c *Config) { c.Content.MaxLength = -1 }},
		{"bad tolerance", func(c *Config) { c.Safety.Tolerances[CategoryProfanity] = "SOMETIMES" }},
		{"zero tone weight", func(c *Config) { c.Compliance.ToneWeight = 0 }},
		{"negative combined weight", func(c *Config) { c.Combined.SafetyWeight = -0.5 }},
		{"negative cache TTL", func(c *Config) { c.Cache.SafetyTTL = -time.Second }},
		{"negative max entries", func(c *Config) { c.Cache.MaxEntries = -1 }},
		{"zero retention", func(c *Config) { c.History.RetentionDays = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Validate() accepted an invalid configuration")
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) succeeded")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
content:
  max_length: 5000
safety:
  tolerances:
    profanity: NONE
cache:
  enabled: true
  safety_ttl: 10m
logging:
  level: debug
  format: text
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Content.MaxLength != 5000 {
		t.Errorf("MaxLength = %d, want 5000", cfg.Content.MaxLength)
	}
	if cfg.Safety.Tolerances[CategoryProfanity] != "NONE" {
		t.Errorf("profanity tolerance = %q, want NONE", cfg.Safety.Tolerances[CategoryProfanity])
	}
	if cfg.Cache.SafetyTTL != 10*time.Minute {
		t.Errorf("SafetyTTL = %v, want 10m", cfg.Cache.SafetyTTL)
	}
	// Defaults fill the rest.
	if cfg.Cache.ComplianceTTL != 30*time.Minute {
		t.Errorf("ComplianceTTL = %v, want default 30m", cfg.Cache.ComplianceTTL)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() succeeded for a missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "logging:\n  level: loud")); err == nil {
		t.Error("LoadConfig() accepted an invalid configuration")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "content:\n  max_length: 5000")

	t.Setenv("BRANDGUARD_CONTENT_MAX_LENGTH", "250")
	t.Setenv("BRANDGUARD_CACHE_ENABLED", "true")
	t.Setenv("BRANDGUARD_BRANDS_DIR", "/etc/brandguard/brands")
	t.Setenv("BRANDGUARD_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v", err)
	}

	if cfg.Content.MaxLength != 250 {
		t.Errorf("MaxLength = %d, want env override 250", cfg.Content.MaxLength)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled not overridden")
	}
	if cfg.Brands.Dir != "/etc/brandguard/brands" {
		t.Errorf("Brands.Dir = %q", cfg.Brands.Dir)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestEnvOverridesRevalidated(t *testing.T) {
	path := writeConfig(t, "")

	t.Setenv("BRANDGUARD_LOGGING_LEVEL", "shouting")
	if _, err := LoadConfigWithEnvOverrides(path); err == nil {
		t.Error("invalid environment override accepted")
	}
}

func TestServiceSnapshotIsolation(t *testing.T) {
	svc, err := NewServiceFromConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("NewServiceFromConfig() error = %v", err)
	}

	snap := svc.Snapshot()
	snap.Content.MaxLength = 1
	snap.Safety.Tolerances[CategoryProfanity] = "VERY_HIGH"

	fresh := svc.Snapshot()
	if fresh.Content.MaxLength == 1 {
		t.Error("snapshot mutation leaked into the active configuration")
	}
	if fresh.Safety.Tolerances[CategoryProfanity] != "MEDIUM" {
		t.Error("snapshot map mutation leaked into the active configuration")
	}
}

func TestServiceUpdate(t *testing.T) {
	svc, err := NewServiceFromConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("NewServiceFromConfig() error = %v", err)
	}

	next := DefaultConfig()
	next.Content.MaxLength = 42
	if err := svc.Update(next); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got := svc.Snapshot().Content.MaxLength; got != 42 {
		t.Errorf("MaxLength after update = %d, want 42", got)
	}

	bad := DefaultConfig()
	bad.Logging.Level = "loud"
	if err := svc.Update(bad); err == nil {
		t.Fatal("Update() accepted an invalid configuration")
	}
	if got := svc.Snapshot().Content.MaxLength; got != 42 {
		t.Error("failed update changed the active configuration")
	}
}

func TestServiceReload(t *testing.T) {
	path := writeConfig(t, "content:\n  max_length: 100")

	svc, err := NewService(path)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if got := svc.Snapshot().Content.MaxLength; got != 100 {
		t.Fatalf("MaxLength = %d, want 100", got)
	}

	if err := os.WriteFile(path, []byte("content:\n  max_length: 200"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := svc.Snapshot().Content.MaxLength; got != 200 {
		t.Errorf("MaxLength after reload = %d, want 200", got)
	}

	// A broken file leaves the active configuration in place.
	if err := os.WriteFile(path, []byte("logging:\n  level: loud"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Reload(); err == nil {
		t.Fatal("Reload() accepted a broken file")
	}
	if got := svc.Snapshot().Content.MaxLength; got != 200 {
		t.Error("failed reload changed the active configuration")
	}

	fromCfg, err := NewServiceFromConfig(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fromCfg.Reload(); err == nil {
		t.Error("Reload() succeeded for a service without a file")
	}
}

func TestNormalizedComplianceWeights(t *testing.T) {
	c := ComplianceConfig{ToneWeight: 1, VoiceWeight: 1, TerminologyWeight: 2}
	tone, voice, term := c.NormalizedComplianceWeights()
	if tone != 0.25 || voice != 0.25 || term != 0.5 {
		t.Errorf("normalized = %g/%g/%g, want 0.25/0.25/0.5", tone, voice, term)
	}

	zero := ComplianceConfig{}
	tone, voice, term = zero.NormalizedComplianceWeights()
	if math.Abs(tone-0.35) > 1e-9 || math.Abs(voice-0.30) > 1e-9 || math.Abs(term-0.35) > 1e-9 {
		t.Errorf("zero weights normalized = %g/%g/%g, want defaults", tone, voice, term)
	}
}
