package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Element creates an element node. Children are flattened with ToChildren.
func Element(tag string, props Props, children ...any) *VNode {
	if props == nil {
		props = Props{}
	}
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: ToChildren(children),
	}
	if key, ok := props[KeyProp]; ok && key != nil {
		node.Key = fmt.Sprint(key)
	}
	return node
}

// Component creates a node that the host instantiates with typ.
func Component(typ ComponentType, props Props, children ...any) *VNode {
	if props == nil {
		props = Props{}
	}
	node := &VNode{
		Kind:     KindComponent,
		Type:     typ,
		Props:    props,
		Children: ToChildren(children),
	}
	if key, ok := props[KeyProp]; ok && key != nil {
		node.Key = fmt.Sprint(key)
	}
	return node
}

// Fragment groups children without a wrapper.
func Fragment(children ...any) *VNode {
	return &VNode{
		Kind:     KindFragment,
		Children: ToChildren(children),
	}
}

// ToChildren flattens arbitrary child content into an ordered node slice.
// Accepted values: nil, *VNode, []*VNode, string, []string, []any (recursively)
// and scalars, which become text nodes. Nil entries are dropped.
func ToChildren(v any) []*VNode {
	out := make([]*VNode, 0)
	appendChildren(&out, v)
	return out
}

func appendChildren(out *[]*VNode, v any) {
	switch c := v.(type) {
	case nil:
		return
	case *VNode:
		if c != nil {
			*out = append(*out, c)
		}
	case []*VNode:
		for _, n := range c {
			if n != nil {
				*out = append(*out, n)
			}
		}
	case string:
		*out = append(*out, Text(c))
	case []string:
		for _, s := range c {
			*out = append(*out, Text(s))
		}
	case []any:
		for _, item := range c {
			appendChildren(out, item)
		}
	case bool:
		// Conditional rendering leftovers render nothing.
		return
	default:
		*out = append(*out, Text(fmt.Sprint(c)))
	}
}

// Walk visits the node and its descendants depth-first, parents first.
// Returning false from fn skips the node's children.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}
