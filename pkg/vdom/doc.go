// Package vdom provides the render tree shared by the adapter and the host.
//
// VNode is the fundamental building block representing elements, text,
// fragments and host components. Props holds attributes, event handlers and
// the reserved adapter props (children, parentVueComponent,
// additionalClassName, additionalStyles, refTemp).
//
// # Building Trees
//
//	Element("div", Props{"className": "card"},
//	    Element("h1", nil, "Title"),
//	    Component(counterClass, Props{"count": 1}),
//	)
//
// Children may be given as nodes, node slices, strings or nested []any;
// ToChildren flattens them the same way everywhere.
//
// # Logical Tags
//
// Nodes produced by an adapter class carry LogicalTag, which names the
// source component regardless of the underlying element tag. TypeTag derives
// the tag a slot child advertises from its type.
package vdom
