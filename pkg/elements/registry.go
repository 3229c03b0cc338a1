package elements

import (
	"sort"
	"sync"

	"github.com/vango-dev/vbridge/internal/casing"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Registry maps the component names templates use to component classes.
// Lookups accept the registered name, its kebab-case and its lowerCamel form.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]vdom.ComponentType
	names   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]vdom.ComponentType)}
}

// Register adds typ under name, replacing any previous entry.
func (r *Registry) Register(name string, typ vdom.ComponentType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.classes[name]; !ok {
		r.names = append(r.names, name)
	}
	r.classes[name] = typ
	r.classes[casing.Kebab(name)] = typ
	r.classes[casing.LowerCamel(name)] = typ
}

// Lookup returns the class registered under name.
func (r *Registry) Lookup(name string) (vdom.ComponentType, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	typ, ok := r.classes[name]
	return typ, ok
}

// Names returns the names passed to Register, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]string(nil), r.names...)
	sort.Strings(out)
	return out
}
