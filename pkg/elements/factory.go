// Package elements is the default element-creation collaborator: it turns the
// (type, data, children) triples emitted by compiled templates into render
// tree nodes.
package elements

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vango-dev/vbridge/internal/casing"
	"github.com/vango-dev/vbridge/pkg/component"
	"github.com/vango-dev/vbridge/pkg/postprocess"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Factory creates nodes for the tree-building facade.
type Factory interface {
	CreateElement(typ any, attrs vdom.Props, children any, reg *Registry, vm *component.Instance) *vdom.VNode
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(typ any, attrs vdom.Props, children any, reg *Registry, vm *component.Instance) *vdom.VNode

// CreateElement implements Factory.
func (f FactoryFunc) CreateElement(typ any, attrs vdom.Props, children any, reg *Registry, vm *component.Instance) *vdom.VNode {
	return f(typ, attrs, children, reg, vm)
}

// Default is the built-in factory.
var Default Factory = FactoryFunc(CreateElement)

// CreateElement builds a node from a template data object.
//
// typ may be a component class, a registered component name or an element
// tag. The data object is translated to host props:
//
//   - attrs, props and domProps are flattened into props
//   - staticClass and class (string, []string or map[string]bool) become className
//   - staticStyle and style are merged into style
//   - on: {event: handler} becomes on<Event> handler props
//   - ref: func(any) becomes the node's ref; a string ref records the handle
//     on vm under that name
//
// Component nodes receive vm as their parentVueComponent prop.
func CreateElement(typ any, attrs vdom.Props, children any, reg *Registry, vm *component.Instance) *vdom.VNode {
	props, ref := translate(attrs, vm)

	var node *vdom.VNode
	switch t := typ.(type) {
	case nil:
		return nil
	case vdom.ComponentType:
		node = vdom.Component(t, props, children)
	case string:
		if class, ok := reg.Lookup(t); ok {
			node = vdom.Component(class, props, children)
		} else {
			node = vdom.Element(t, props, children)
		}
	default:
		node = vdom.Element(fmt.Sprint(t), props, children)
	}

	if node.Kind == vdom.KindComponent && vm != nil {
		node.Props[vdom.ParentProp] = vm
	}
	node.Ref = ref
	return node
}

func translate(data vdom.Props, vm *component.Instance) (vdom.Props, func(any)) {
	props := vdom.Props{}
	var ref func(any)
	var classes []string
	var styles []any

	for _, key := range sortedKeys(data) {
		value := data[key]
		switch key {
		case "attrs", "props", "domProps":
			for k, v := range asMap(value) {
				props[k] = v
			}
		case "staticClass":
			classes = append([]string{classString(value)}, classes...)
		case "class", vdom.ClassNameProp:
			classes = append(classes, classString(value))
		case "staticStyle":
			styles = append([]any{value}, styles...)
		case vdom.StyleProp:
			styles = append(styles, value)
		case "on":
			for event, handler := range asMap(value) {
				props[casing.EventProp(event)] = handler
			}
		case "ref":
			ref = refFunc(value, vm)
		default:
			props[key] = value
		}
	}

	if cls := postprocess.MergeClassNames(classes...); cls != "" {
		props[vdom.ClassNameProp] = cls
	}
	if len(styles) > 0 {
		props[vdom.StyleProp] = postprocess.MergeStyles(styles...)
	}
	return props, ref
}

func refFunc(value any, vm *component.Instance) func(any) {
	switch r := value.(type) {
	case func(any):
		return r
	case string:
		if vm == nil || r == "" {
			return nil
		}
		return func(handle any) { vm.SetRef(r, handle) }
	}
	return nil
}

func classString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case []string:
		return strings.Join(c, " ")
	case []any:
		parts := make([]string, 0, len(c))
		for _, item := range c {
			parts = append(parts, classString(item))
		}
		return postprocess.MergeClassNames(parts...)
	case map[string]bool:
		keys := make([]string, 0, len(c))
		for k, on := range c {
			if on {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		return strings.Join(keys, " ")
	}
	return fmt.Sprint(v)
}

func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case vdom.Props:
		return m
	}
	return nil
}

func sortedKeys(m vdom.Props) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
