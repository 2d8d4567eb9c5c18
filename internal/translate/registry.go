package translate

import (
	"fmt"
	"sort"
	"strings"
)

// Registry manages the available providers.
type Registry struct {
	providers map[string]Translator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Translator),
	}
}

// Register adds a provider under its lowercased name.
func (r *Registry) Register(t Translator) {
	r.providers[strings.ToLower(t.Name())] = t
}

// Get retrieves a provider by name.
func (r *Registry) Get(name string) (Translator, error) {
	t, ok := r.providers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("provider %s not found", name)
	}
	return t, nil
}

// List returns the registered provider names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
