package postprocess

import (
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Ephemeral lists the props that only carry information into a component
// root and must not reach the host as element attributes.
var Ephemeral = []string{
	vdom.AdditionalClassNameProp,
	vdom.AdditionalStylesProp,
	vdom.RefTempProp,
}

// StripProps removes names from node and all of its descendants.
//
// Children are processed first. A node is rebuilt only when it carries one
// of the names or one of its children was rebuilt; otherwise the original
// pointer is returned and nothing is allocated.
func StripProps(node *vdom.VNode, names []string) *vdom.VNode {
	return strip(node, names, false)
}

// StripEphemeral removes the Ephemeral props from every element and fragment
// in the tree. Component nodes keep their props, since those are the input
// of the child component, but their children are still processed.
func StripEphemeral(node *vdom.VNode) *vdom.VNode {
	return strip(node, Ephemeral, true)
}

func strip(node *vdom.VNode, names []string, keepComponentProps bool) *vdom.VNode {
	if node == nil {
		return nil
	}

	var children []*vdom.VNode
	for i, child := range node.Children {
		next := strip(child, names, keepComponentProps)
		if next == child {
			continue
		}
		if children == nil {
			children = append([]*vdom.VNode(nil), node.Children...)
		}
		children[i] = next
	}

	carries := !(keepComponentProps && node.Kind == vdom.KindComponent) && hasAny(node.Props, names)
	if !carries && children == nil {
		return node
	}

	cp := *node
	if children != nil {
		cp.Children = children
	}
	if carries {
		cp.Props = make(vdom.Props, len(node.Props))
		for k, v := range node.Props {
			if !contains(names, k) {
				cp.Props[k] = v
			}
		}
	}
	return &cp
}

func hasAny(props vdom.Props, names []string) bool {
	for _, name := range names {
		if _, ok := props[name]; ok {
			return true
		}
	}
	return false
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
