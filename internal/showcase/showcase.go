// Package showcase holds the built-in example components the CLI and the
// preview server render.
package showcase

import (
	"sort"

	"github.com/vango-dev/vbridge/internal/errors"
	"github.com/vango-dev/vbridge/pkg/bridge"
	"github.com/vango-dev/vbridge/pkg/elements"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Entry is one showcase component.
type Entry struct {
	Name        string
	Description string
	Class       *bridge.Class

	// Example holds props that produce an interesting render.
	Example vdom.Props
}

// Catalog is the set of showcase components, registered under their names
// so templates can refer to one another by string.
type Catalog struct {
	registry *elements.Registry
	entries  map[string]*Entry
}

// New generates every showcase class with opts applied.
func New(opts ...bridge.Option) *Catalog {
	c := &Catalog{
		registry: elements.NewRegistry(),
		entries:  make(map[string]*Entry),
	}
	opts = append([]bridge.Option{bridge.WithRegistry(c.registry)}, opts...)

	for _, e := range []struct {
		name, desc string
		build      func([]bridge.Option) *bridge.Class
		example    vdom.Props
	}{
		{"label", "Text label with a default prop", newLabel, vdom.Props{"text": "Hello"}},
		{"counter", "Counter with data, a watcher and methods", newCounter, vdom.Props{"start": 5}},
		{"card", "Card with header and footer slots", newCard, vdom.Props{
			"headerContent": vdom.Element("h2", nil, "Card title"),
			"children":      vdom.Element("p", nil, "Card body"),
		}},
		{"todo-item", "Single todo entry that emits toggle", newTodoItem, vdom.Props{"title": "Write tests"}},
		{"todo-list", "Keyed list with a computed summary", newTodoList, vdom.Props{
			"items": []any{
				map[string]any{"id": 1, "title": "Write tests", "done": true},
				map[string]any{"id": 2, "title": "Ship it"},
			},
		}},
		{"page", "Composes card, label and todo-list by name", newPage, vdom.Props{"heading": "Showcase"}},
	} {
		class := e.build(opts)
		c.registry.Register(class.Tag(), class)
		c.entries[e.name] = &Entry{
			Name:        e.name,
			Description: e.desc,
			Class:       class,
			Example:     e.example,
		}
	}
	return c
}

// Get returns the named entry.
func (c *Catalog) Get(name string) (*Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, errors.New("E103").
			WithDetailf("no showcase component named %q", name).
			WithSuggestion("Run 'vbridge inspect --list' to see the available components")
	}
	return e, nil
}

// Names returns the entry names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry returns the registry the showcase classes resolve names against.
func (c *Catalog) Registry() *elements.Registry { return c.registry }
