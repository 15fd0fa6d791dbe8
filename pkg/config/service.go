package config

import (
	"fmt"
	"sync"
)

// Service serves configuration snapshots. It is constructed explicitly
// and passed to the components that need it; there is no global mutable
// configuration. Snapshot returns a deep copy, so a caller can never
// mutate the active configuration, and Reload is an explicit operation
// that swaps in a freshly loaded configuration atomically.
type Service struct {
	mu   sync.RWMutex
	path string
	cfg  *Config
}

// NewService loads configuration from the given path (with environment
// overrides) and returns a service holding it.
func NewService(path string) (*Service, error) {
	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, err
	}

	return &Service{path: path, cfg: cfg}, nil
}

// NewServiceFromConfig wraps an already constructed configuration.
// Intended for tests and for callers that assemble configuration
// programmatically.
func NewServiceFromConfig(cfg *Config) (*Service, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg.Clone()}, nil
}

// Snapshot returns a deep copy of the current configuration.
func (s *Service) Snapshot() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Reload re-reads the configuration file and swaps in the new
// configuration if it loads and validates. On failure the active
// configuration is unchanged and the error is returned.
func (s *Service) Reload() (*Config, error) {
	if s.path == "" {
		return nil, fmt.Errorf("service was not created from a file, nothing to reload")
	}

	cfg, err := LoadConfigWithEnvOverrides(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to reload configuration: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	return cfg.Clone(), nil
}

// Update validates and swaps in a new configuration. On failure the
// active configuration is unchanged.
func (s *Service) Update(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg.Clone()
	s.mu.Unlock()

	return nil
}
