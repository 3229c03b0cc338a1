// Package facade is the tree-building surface compiled render functions call.
//
// A Builder is bound to one instance for one render. It forwards node
// creation to an elements.Factory and exposes the helpers templates use for
// text interpolation, empty nodes and slots.
package facade

import (
	"encoding/json"
	"fmt"

	"github.com/vango-dev/vbridge/pkg/component"
	"github.com/vango-dev/vbridge/pkg/elements"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Builder implements component.Hyperscript for one instance.
type Builder struct {
	vm       *component.Instance
	factory  elements.Factory
	registry *elements.Registry
}

var _ component.Hyperscript = (*Builder)(nil)

// New binds a builder to vm. A nil factory uses elements.Default.
func New(vm *component.Instance, factory elements.Factory, registry *elements.Registry) *Builder {
	if factory == nil {
		factory = elements.Default
	}
	return &Builder{vm: vm, factory: factory, registry: registry}
}

// H creates a node of type typ.
//
// When the first argument is a props mapping (vdom.Props or
// map[string]any) it is the data object and the rest are children.
// Otherwise every argument is a child.
func (b *Builder) H(typ any, args ...any) *vdom.VNode {
	var data vdom.Props
	if len(args) > 0 {
		switch d := args[0].(type) {
		case vdom.Props:
			data, args = d, args[1:]
		case map[string]any:
			data, args = vdom.Props(d), args[1:]
		}
	}

	var children any
	switch len(args) {
	case 0:
	case 1:
		children = args[0]
	default:
		children = args
	}
	return b.factory.CreateElement(typ, data, children, b.registry, b.vm)
}

// Text returns v as interpolated text.
func (b *Builder) Text(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// String stringifies v the way template interpolation does: nil is empty,
// maps and slices are rendered as JSON and everything else with fmt.
func (b *Builder) String(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case map[string]any, []any, []string, vdom.Props:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
	return fmt.Sprint(v)
}

// Empty returns the empty node, which renders nothing.
func (b *Builder) Empty() *vdom.VNode { return nil }

// Slot returns the named slot of the bound instance, or fallback when the
// slot is absent or empty.
func (b *Builder) Slot(name string, fallback ...*vdom.VNode) []*vdom.VNode {
	if b.vm == nil {
		return fallback
	}
	var fb []*vdom.VNode
	if len(fallback) > 0 {
		fb = fallback
	}
	return b.vm.Slots().Resolve(name, fb)
}

// VM returns the bound instance.
func (b *Builder) VM() *component.Instance { return b.vm }
