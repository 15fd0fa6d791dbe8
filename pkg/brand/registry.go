package brand

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Registry is a thread-safe in-memory store of loaded brands. Stored
// brands are treated as immutable: updates replace the stored pointer
// atomically, so callers holding a previously returned brand keep a
// consistent snapshot.
type Registry struct {
	mu       sync.RWMutex
	brands   map[string]*Brand
	loadTime time.Time
}

// NewRegistry creates an empty brand registry.
func NewRegistry() *Registry {
	return &Registry{
		brands:   make(map[string]*Brand),
		loadTime: time.Now(),
	}
}

// Register validates and stores a brand, replacing any existing brand
// with the same name.
func (r *Registry) Register(b *Brand) error {
	if err := Validate(b); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.brands[b.Name] = b
	r.loadTime = time.Now()
	return nil
}

// Get retrieves a brand by name.
func (r *Registry) Get(name string) (*Brand, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.brands[name]
	return b, ok
}

// Update replaces a brand wholesale. The brand must already exist.
func (r *Registry) Update(b *Brand) error {
	if err := Validate(b); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.brands[b.Name]; !ok {
		return fmt.Errorf("brand %q not found", b.Name)
	}

	r.brands[b.Name] = b
	return nil
}

// ApplyPartial deep-merges a partial document over the cached base brand
// and stores the result. The cached base is untouched if the merge or
// validation fails.
func (r *Registry) ApplyPartial(name string, partial map[string]interface{}) (*Brand, error) {
	r.mu.RLock()
	base, ok := r.brands[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("brand %q not found", name)
	}

	merged, err := Merge(base, partial)
	if err != nil {
		return nil, fmt.Errorf("partial update of brand %q rejected: %w", name, err)
	}
	if merged.Name != name {
		return nil, fmt.Errorf("partial update of brand %q rejected: cannot rename brand", name)
	}

	r.mu.Lock()
	r.brands[name] = merged
	r.mu.Unlock()

	return merged, nil
}

// Remove deletes a brand from the registry.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.brands[name]; !ok {
		return fmt.Errorf("brand %q not found", name)
	}
	delete(r.brands, name)
	return nil
}

// Names returns the sorted names of all registered brands.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.brands))
	for name := range r.brands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered brands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.brands)
}

// LoadTime returns when the registry content last changed via Register.
func (r *Registry) LoadTime() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadTime
}
