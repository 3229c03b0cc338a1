// Package slots projects host children and slot props into named slots.
package slots

import (
	"sort"

	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Default is the slot that receives props.children.
const Default = "default"

// Map maps slot names to their content. The Default key is always present.
type Map map[string][]*vdom.VNode

// Mapping maps slot names to the prop that supplies their content.
type Mapping map[string]string

// Project builds the slot map for one render.
//
// The default slot holds props.children flattened in order. Each mapped slot
// takes the content of its source prop, or an empty sequence when the prop is
// absent. Every non-text node is copied with LogicalTag set from its type so
// templates can tell slot children apart. The input nodes are not modified.
func Project(props vdom.Props, mapping Mapping) Map {
	m := Map{Default: stamp(vdom.ToChildren(props[vdom.ChildrenProp]))}
	for slot, source := range mapping {
		m[slot] = stamp(vdom.ToChildren(props[source]))
	}
	return m
}

func stamp(nodes []*vdom.VNode) []*vdom.VNode {
	for i, n := range nodes {
		if n.IsText() {
			continue
		}
		cp := *n
		cp.LogicalTag = n.TypeTag()
		nodes[i] = &cp
	}
	return nodes
}

// Get returns the named slot content and whether it exists.
func (m Map) Get(name string) ([]*vdom.VNode, bool) {
	nodes, ok := m[name]
	return nodes, ok
}

// Names returns the slot names in sorted order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the named slot's content, or fallback when the slot is
// absent or empty.
func (m Map) Resolve(name string, fallback []*vdom.VNode) []*vdom.VNode {
	nodes, ok := m[name]
	if fallback != nil && (!ok || len(nodes) == 0) {
		return fallback
	}
	return nodes
}
