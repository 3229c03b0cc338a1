package component

import (
	"sort"

	"github.com/vango-dev/vbridge/internal/casing"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Method is a component method. vm is the instance it runs against.
type Method func(vm *Instance, args ...any) any

// Hook is a lifecycle hook.
type Hook func(vm *Instance)

// Computed is a derived property recomputed before every render.
type Computed struct {
	Name string
	Get  func(vm *Instance) any
}

// Watcher reacts to a change of the named prop.
type Watcher struct {
	Prop    string
	Handler func(vm *Instance, value any)
}

// Prop describes a declared prop. A nil Default means no default.
type Prop struct {
	Default any
}

// RenderFunc builds the component's tree through the tree-building facade.
type RenderFunc func(h Hyperscript) *vdom.VNode

// Hyperscript is the surface a compiled render function targets.
type Hyperscript interface {
	// H creates a node. The first variadic argument is treated as attributes
	// only when it is a props mapping; otherwise all arguments are children.
	H(typ any, args ...any) *vdom.VNode

	// Text returns v as text, "" for nil.
	Text(v any) string

	// String stringifies v, "" for nil.
	String(v any) string

	// Empty returns the empty node.
	Empty() *vdom.VNode

	// Slot returns the named slot, or fallback when it is absent or empty.
	Slot(name string, fallback ...*vdom.VNode) []*vdom.VNode

	// VM returns the instance being rendered.
	VM() *Instance
}

// Hook names accepted in mixins and constructor args.
const (
	HookCreated       = "created"
	HookMounted       = "mounted"
	HookUpdated       = "updated"
	HookBeforeDestroy = "beforeDestroy"
)

// Definition is the caller-supplied description of a component.
type Definition struct {
	Name     string
	Props    map[string]Prop
	Data     func() map[string]any
	Computed []Computed
	Watch    []Watcher
	Methods  map[string]Method

	Created       Hook
	Mounted       Hook
	Updated       Hook
	BeforeDestroy Hook

	Render RenderFunc
}

// Mixin is merged onto a definition before generation; last write wins.
// Method values become methods, Hook values under a hook name replace that
// hook, everything else becomes an initial instance field.
type Mixin map[string]any

// Hooks groups the lifecycle hooks of a resolved definition.
type Hooks struct {
	Created       Hook
	Mounted       Hook
	Updated       Hook
	BeforeDestroy Hook
}

// Resolved is the immutable snapshot a class is generated from.
type Resolved struct {
	Name     string
	Props    map[string]Prop
	Data     func() map[string]any
	Computed []Computed
	Watch    []Watcher
	Methods  map[string]Method
	Hooks    Hooks
	Render   RenderFunc

	// Fields are initial instance values from the mixin and args.
	Fields map[string]any
}

// Resolve folds mixin, the definition's methods and args into a new
// snapshot. def is not modified, so resolving the same definition twice
// yields two equivalent snapshots.
//
// Precedence, lowest first: definition, mixin, definition methods, args.
func Resolve(def *Definition, mixin Mixin, args map[string]any) *Resolved {
	r := &Resolved{
		Name:     def.Name,
		Props:    make(map[string]Prop, len(def.Props)),
		Data:     def.Data,
		Computed: append([]Computed(nil), def.Computed...),
		Watch:    append([]Watcher(nil), def.Watch...),
		Methods:  make(map[string]Method, len(def.Methods)),
		Hooks: Hooks{
			Created:       def.Created,
			Mounted:       def.Mounted,
			Updated:       def.Updated,
			BeforeDestroy: def.BeforeDestroy,
		},
		Render: def.Render,
		Fields: make(map[string]any),
	}
	for name, p := range def.Props {
		r.Props[name] = p
	}

	r.merge(mixin)
	for name, m := range def.Methods {
		r.Methods[name] = m
		delete(r.Fields, name)
	}
	r.merge(args)

	return r
}

func (r *Resolved) merge(values map[string]any) {
	for _, key := range sortedKeys(values) {
		value := values[key]
		if h, ok := asHook(value); ok && r.setHook(key, h) {
			continue
		}
		if m, ok := asMethod(value); ok {
			r.Methods[key] = m
			delete(r.Fields, key)
			continue
		}
		r.Fields[key] = value
		delete(r.Methods, key)
	}
}

func (r *Resolved) setHook(name string, h Hook) bool {
	switch name {
	case HookCreated:
		r.Hooks.Created = h
	case HookMounted:
		r.Hooks.Mounted = h
	case HookUpdated:
		r.Hooks.Updated = h
	case HookBeforeDestroy:
		r.Hooks.BeforeDestroy = h
	default:
		return false
	}
	return true
}

func asHook(v any) (Hook, bool) {
	switch h := v.(type) {
	case Hook:
		return h, h != nil
	case func(*Instance):
		return h, h != nil
	}
	return nil, false
}

func asMethod(v any) (Method, bool) {
	switch m := v.(type) {
	case Method:
		return m, m != nil
	case func(*Instance, ...any) any:
		return m, m != nil
	}
	return nil, false
}

// MethodNames returns the resolved method names in sorted order.
func (r *Resolved) MethodNames() []string {
	names := make([]string, 0, len(r.Methods))
	for name := range r.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultProps returns {lowerCamel(name): default} for every prop declaring
// a default, or nil when none does.
func (r *Resolved) DefaultProps() vdom.Props {
	var out vdom.Props
	for name, p := range r.Props {
		if p.Default == nil {
			continue
		}
		if out == nil {
			out = vdom.Props{}
		}
		out[casing.LowerCamel(name)] = p.Default
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
