package host

import (
	"github.com/google/uuid"

	"github.com/vango-dev/vbridge/pkg/bridge"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Element is the handle committed to element refs. It is stable for the
// lifetime of the mounted element.
type Element struct {
	ID  string
	Tag string
}

// node is one entry of the shadow tree.
type node struct {
	id    string
	kind  vdom.VKind
	tag   string
	typ   vdom.ComponentType
	key   string
	vnode *vdom.VNode

	handle   *Element
	children []*node

	comp     *bridge.Component
	rendered *node

	unmounted bool
}

func newNode(vn *vdom.VNode) *node {
	n := &node{
		id:   uuid.NewString(),
		kind: vn.Kind,
		tag:  vn.Tag,
		typ:  vn.Type,
		key:  vn.Key,
	}
	if vn.Kind == vdom.KindElement {
		n.handle = &Element{ID: n.id, Tag: vn.Tag}
	}
	return n
}

// matches reports whether vn can update n in place.
func (n *node) matches(vn *vdom.VNode) bool {
	if n.kind != vn.Kind || n.key != vn.Key {
		return false
	}
	switch vn.Kind {
	case vdom.KindElement:
		return n.tag == vn.Tag
	case vdom.KindComponent:
		return n.typ == vn.Type
	}
	return true
}

// rootHandle returns the first element handle at or below n.
func (n *node) rootHandle() *Element {
	if n == nil {
		return nil
	}
	if n.handle != nil {
		return n.handle
	}
	if n.rendered != nil {
		return n.rendered.rootHandle()
	}
	for _, c := range n.children {
		if h := c.rootHandle(); h != nil {
			return h
		}
	}
	return nil
}

// childKey identifies a child slot for reconciliation. Keyed children match
// by key, unkeyed children by index.
type childKey struct {
	kind vdom.VKind
	tag  string
	typ  vdom.ComponentType
	idx  int
	key  string
}

func keyOf(kind vdom.VKind, tag string, typ vdom.ComponentType, key string, idx int) childKey {
	if key != "" {
		idx = 0
	}
	return childKey{kind: kind, tag: tag, typ: typ, idx: idx, key: key}
}
