package main

import (
	"fmt"
	"os"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/config"
	"brandguard-hq/brandguard/pkg/engine"
	"brandguard-hq/brandguard/pkg/history"
	"brandguard-hq/brandguard/pkg/telemetry/logging"
	"brandguard-hq/brandguard/pkg/telemetry/metrics"
)

// runtime bundles the engine and the resources it was built from, so
// commands can tear everything down in one call.
type runtime struct {
	engine  *engine.Engine
	config  *config.Service
	brands  *brand.Registry
	metrics *metrics.Collector
	history *history.Store
}

// close releases everything the runtime owns.
func (r *runtime) close() {
	if r.engine != nil {
		r.engine.Close()
	}
	if r.history != nil {
		r.history.Close()
	}
}

// loadConfigService loads the configured file, falling back to
// defaults when the default config path does not exist.
func loadConfigService() (*config.Service, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		cfg := &config.Config{}
		config.ApplyDefaults(cfg)
		return config.NewServiceFromConfig(cfg)
	}
	return config.NewService(cfgFile)
}

// buildRuntime assembles a fully wired engine from configuration.
func buildRuntime() (*runtime, error) {
	svc, err := loadConfigService()
	if err != nil {
		return nil, err
	}
	cfg := svc.Snapshot()

	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if _, err := logging.Setup(logCfg, os.Stderr); err != nil {
		return nil, err
	}

	brands := brand.NewRegistry()
	if _, err := os.Stat(cfg.Brands.Dir); cfg.Brands.Dir != "" && err == nil {
		loaded, err := brand.LoadDir(cfg.Brands.Dir)
		if err != nil {
			return nil, fmt.Errorf("loading brands from %q: %w", cfg.Brands.Dir, err)
		}
		for _, b := range loaded {
			if err := brands.Register(b); err != nil {
				return nil, err
			}
		}
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics, nil)
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.NewStore(&history.StoreConfig{Path: cfg.History.Path, WALMode: true})
		if err != nil {
			return nil, fmt.Errorf("opening history store: %w", err)
		}
	}

	eng, err := engine.New(engine.Options{
		Config:  svc,
		Brands:  brands,
		Metrics: collector,
		History: store,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	return &runtime{engine: eng, config: svc, brands: brands, metrics: collector, history: store}, nil
}

// openHistory opens just the history store, for commands that do not
// need a full engine.
func openHistory() (*history.Store, *config.Config, error) {
	svc, err := loadConfigService()
	if err != nil {
		return nil, nil, err
	}
	cfg := svc.Snapshot()

	if !cfg.History.Enabled {
		return nil, nil, fmt.Errorf("history is disabled in configuration")
	}

	store, err := history.NewStore(&history.StoreConfig{Path: cfg.History.Path, WALMode: true})
	if err != nil {
		return nil, nil, fmt.Errorf("opening history store: %w", err)
	}
	return store, cfg, nil
}
