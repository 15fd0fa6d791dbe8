package engine

import (
	"fmt"
	"log/slog"
	"time"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/cache"
	"brandguard-hq/brandguard/pkg/config"
	"brandguard-hq/brandguard/pkg/evaluation/compliance"
	"brandguard-hq/brandguard/pkg/evaluation/match"
	"brandguard-hq/brandguard/pkg/evaluation/safety"
	"brandguard-hq/brandguard/pkg/history"
	"brandguard-hq/brandguard/pkg/plugin"
	"brandguard-hq/brandguard/pkg/telemetry/metrics"
)

// Version is the engine release version. Plugins declare compatibility
// against it.
const Version = "1.0.0"

// Options wires the engine's collaborators. Config and Brands are
// required; the rest are optional.
type Options struct {
	// Config supplies configuration snapshots.
	Config *config.Service

	// Brands resolves brand names to guideline sets.
	Brands *brand.Registry

	// Plugins is the plugin registry. Nil creates an empty registry
	// with the built-in formatters.
	Plugins *plugin.Registry

	// Metrics records Prometheus metrics. Nil disables metrics.
	Metrics *metrics.Collector

	// History persists evaluation records. Nil disables history.
	History *history.Store
}

// Engine evaluates content for safety and brand compliance.
type Engine struct {
	config     *config.Service
	brands     *brand.Registry
	matcher    *match.Matcher
	categorize *safety.Categorizer
	aggregator *compliance.Aggregator
	cache      *cache.ResultCache
	registry   *plugin.Registry
	pipeline   *plugin.Pipeline
	metrics    *metrics.Collector
	history    *history.Store
	logger     *slog.Logger
}

// New constructs an Engine from Options. The compliance aggregator
// weights and the cache dimensions are taken from the current config
// snapshot.
func New(opts Options) (*Engine, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config service is required")
	}
	if opts.Brands == nil {
		return nil, fmt.Errorf("brand registry is required")
	}

	logger := slog.Default().With("component", "engine")
	cfg := opts.Config.Snapshot()

	registry := opts.Plugins
	if registry == nil {
		registry = plugin.NewRegistry(Version, nil)
		if err := plugin.RegisterBuiltins(registry); err != nil {
			return nil, fmt.Errorf("registering built-in plugins: %w", err)
		}
	}

	matcher := match.New()

	e := &Engine{
		config:     opts.Config,
		brands:     opts.Brands,
		matcher:    matcher,
		categorize: safety.NewCategorizer(matcher, nil),
		aggregator: compliance.NewAggregator(nil),
		registry:   registry,
		pipeline:   plugin.NewPipeline(registry, nil),
		metrics:    opts.Metrics,
		history:    opts.History,
		logger:     logger,
	}

	if err := e.applyConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.Cache.Enabled {
		e.cache = cache.New(cfg.Cache.MaxEntries, cacheCleanupInterval(cfg.Cache))
	}

	return e, nil
}

// applyConfig pushes snapshot-derived settings into the collaborators.
func (e *Engine) applyConfig(cfg *config.Config) error {
	weights := compliance.Weights{
		Tone:        cfg.Compliance.ToneWeight,
		Voice:       cfg.Compliance.VoiceWeight,
		Terminology: cfg.Compliance.TerminologyWeight,
	}
	if err := e.aggregator.SetWeights(weights); err != nil {
		return fmt.Errorf("applying compliance weights: %w", err)
	}
	return nil
}

// ReloadConfig reloads configuration from disk and re-applies the
// settings the engine derives from it. A failed reload leaves the
// engine unchanged.
func (e *Engine) ReloadConfig() error {
	cfg, err := e.config.Reload()
	if err != nil {
		return err
	}
	if err := e.applyConfig(cfg); err != nil {
		return err
	}

	e.logger.Info("configuration reloaded")
	return nil
}

// Plugins returns the plugin registry for registration and unloading.
func (e *Engine) Plugins() *plugin.Registry {
	return e.registry
}

// Brands returns the brand registry.
func (e *Engine) Brands() *brand.Registry {
	return e.brands
}

// Close releases engine resources. The history store, if any, is owned
// by the caller and is not closed here.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// cacheCleanupInterval derives a sweep interval when none is
// configured, at half the shortest TTL.
func cacheCleanupInterval(cfg config.CacheConfig) time.Duration {
	if cfg.CleanupInterval > 0 {
		return cfg.CleanupInterval
	}

	shortest := cfg.SafetyTTL
	if cfg.ComplianceTTL > 0 && (shortest <= 0 || cfg.ComplianceTTL < shortest) {
		shortest = cfg.ComplianceTTL
	}
	if shortest <= 0 {
		return 5 * time.Minute
	}
	return shortest / 2
}
