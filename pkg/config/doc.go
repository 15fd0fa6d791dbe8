// Package config defines the engine configuration: content limits,
// safety tolerances, compliance and combined scoring weights, cache
// TTLs, brand sources, history retention, logging, and metrics.
//
// Configuration is loaded from a YAML file with BRANDGUARD_* environment
// variable overrides, validated as a whole, and served through a
// Service that hands out immutable snapshots. A rejected update or
// reload leaves the previously active configuration untouched; there is
// no partial apply.
//
// # Basic Usage
//
//	svc, err := config.NewService("config.yaml")
//	if err != nil {
//		// fall back, report, or exit
//	}
//
//	cfg := svc.Snapshot() // deep copy, safe to keep
//
// Live reload is an explicit call, not implicit global mutation:
//
//	cfg, err = svc.Reload()
package config
