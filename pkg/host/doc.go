// Package host is a small single-threaded host for generated classes.
//
// A Root keeps a shadow tree of mounted nodes. Rendering matches incoming
// nodes against that tree by kind, tag or component type, and key (or index
// when unkeyed), creating, updating or unmounting components as needed.
// After each pass the collected commit work runs children first: element
// refs receive the node's *Element handle, fragment, text and component refs
// receive the first element handle below them (nil when there is none), and
// ComponentDidMount or ComponentDidUpdate follows each component's subtree.
// Flush re-renders exactly the components invalidated since their last
// render, including changes made by NextTick callbacks during a commit.
//
//	root := host.New()
//	if err := root.Mount(class, vdom.Props{"title": "Hi"}); err != nil {
//	    return err
//	}
//	html, err := root.HTML()
//
// Panics raised by component code are not recovered.
package host
