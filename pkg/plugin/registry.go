package plugin

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Registry holds the registered plugins per capability role. It is
// thread-safe; registration and unloading may race with pipeline runs.
type Registry struct {
	systemVersion string
	logger        *slog.Logger

	mu         sync.RWMutex
	evaluators map[string]Evaluator
	enrichers  map[string]Enricher
	formatters map[string]Formatter
}

// NewRegistry creates a registry that admits plugins compatible with
// the given engine version.
func NewRegistry(systemVersion string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default().With("component", "plugin.registry")
	}
	return &Registry{
		systemVersion: systemVersion,
		logger:        logger,
		evaluators:    make(map[string]Evaluator),
		enrichers:     make(map[string]Enricher),
		formatters:    make(map[string]Formatter),
	}
}

// checkAdmission validates identity and compatibility before a plugin
// enters any role registry.
func (r *Registry) checkAdmission(p Plugin) error {
	if p == nil {
		return fmt.Errorf("plugin cannot be nil")
	}
	if p.ID() == "" {
		return fmt.Errorf("plugin id cannot be empty")
	}
	if !p.IsCompatible(r.systemVersion) {
		return fmt.Errorf("plugin %q (version %s) is not compatible with engine version %s",
			p.ID(), p.Version(), r.systemVersion)
	}
	return nil
}

// RegisterEvaluator admits an evaluation plugin.
func (r *Registry) RegisterEvaluator(p Evaluator) error {
	if err := r.checkAdmission(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.evaluators[p.ID()]; exists {
		return fmt.Errorf("evaluator plugin %q already registered", p.ID())
	}
	r.evaluators[p.ID()] = p

	r.logger.Info("evaluator plugin registered", "id", p.ID(), "version", p.Version())
	return nil
}

// RegisterEnricher admits an enricher plugin.
func (r *Registry) RegisterEnricher(p Enricher) error {
	if err := r.checkAdmission(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.enrichers[p.ID()]; exists {
		return fmt.Errorf("enricher plugin %q already registered", p.ID())
	}
	r.enrichers[p.ID()] = p

	r.logger.Info("enricher plugin registered", "id", p.ID(), "priority", p.Priority())
	return nil
}

// RegisterFormatter admits a formatter plugin.
func (r *Registry) RegisterFormatter(p Formatter) error {
	if err := r.checkAdmission(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[p.ID()]; exists {
		return fmt.Errorf("formatter plugin %q already registered", p.ID())
	}
	r.formatters[p.ID()] = p

	r.logger.Info("formatter plugin registered", "id", p.ID(), "formats", p.Formats())
	return nil
}

// Unload removes a plugin from every role registry, invoking its
// cleanup hook first if it has one. A cleanup failure is logged; the
// plugin is removed regardless.
func (r *Registry) Unload(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found Plugin
	if p, ok := r.evaluators[id]; ok {
		found = p
	} else if p, ok := r.enrichers[id]; ok {
		found = p
	} else if p, ok := r.formatters[id]; ok {
		found = p
	}

	if found == nil {
		return fmt.Errorf("plugin %q not found", id)
	}

	if cleaner, ok := found.(Cleaner); ok {
		if err := cleaner.Cleanup(); err != nil {
			r.logger.Error("plugin cleanup failed", "id", id, "error", err)
		}
	}

	delete(r.evaluators, id)
	delete(r.enrichers, id)
	delete(r.formatters, id)

	r.logger.Info("plugin unloaded", "id", id)
	return nil
}

// Evaluators returns the registered evaluation plugins in stable ID
// order.
func (r *Registry) Evaluators() []Evaluator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.evaluators))
	for id := range r.evaluators {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Evaluator, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.evaluators[id])
	}
	return out
}

// Enrichers returns the registered enricher plugins sorted by
// descending priority, ties broken by ID for determinism.
func (r *Registry) Enrichers() []Enricher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Enricher, 0, len(r.enrichers))
	for _, p := range r.enrichers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority() != out[j].Priority() {
			return out[i].Priority() > out[j].Priority()
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}

// FormatterFor returns a formatter serving the named format.
func (r *Registry) FormatterFor(format string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Stable ID order so overlapping formatters resolve deterministically.
	ids := make([]string, 0, len(r.formatters))
	for id := range r.formatters {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p := r.formatters[id]
		for _, f := range p.Formats() {
			if f == format {
				return p, true
			}
		}
	}
	return nil, false
}

// Count returns the total number of registered plugins across roles.
// A plugin registered under several roles counts once per role.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.evaluators) + len(r.enrichers) + len(r.formatters)
}
