package host

import (
	"github.com/vango-dev/vbridge/pkg/bridge"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// render reconciles vn into *slot, appending commit work to commits.
func (r *Root) render(vn *vdom.VNode, slot **node, commits *[]func()) {
	if vn == nil {
		r.unmount(slot)
		return
	}
	if *slot == nil || !(*slot).matches(vn) {
		r.unmount(slot)
		*slot = newNode(vn)
	}
	n := *slot

	switch vn.Kind {
	case vdom.KindText:
		n.vnode = vn
		scheduleRef(vn.Ref, n, commits)
	case vdom.KindElement, vdom.KindFragment:
		n.vnode = vn
		n.children = r.renderChildren(vn.Children, n.children, commits)
		scheduleRef(vn.Ref, n, commits)
	case vdom.KindComponent:
		r.renderComponent(vn, n, commits)
	}
}

func (r *Root) renderComponent(vn *vdom.VNode, n *node, commits *[]func()) {
	n.vnode = vn

	class, ok := vn.Type.(*bridge.Class)
	if !ok {
		r.log.Warn("unknown component type", "tag", vn.TypeTag())
		r.render(vdom.Text("<"+vn.TypeTag()+">"), &n.rendered, commits)
		return
	}

	props := vn.Props.Clone()
	if len(vn.Children) > 0 || !props.Has(vdom.ChildrenProp) {
		props[vdom.ChildrenProp] = vn.Children
	}

	if n.comp == nil {
		c := class.NewContext(r.ctx, props)
		n.comp = c
		c.OnInvalidate(func() { r.invalidate(n) })
		r.clean(n)
		r.render(c.Render(), &n.rendered, commits)
		*commits = append(*commits, c.ComponentDidMount)
	} else {
		c := n.comp
		c.ComponentWillReceiveProps(props)
		c.ComponentWillUpdate(props)
		c.SetProps(props)
		r.clean(n)
		r.render(c.Render(), &n.rendered, commits)
		*commits = append(*commits, c.ComponentDidUpdate)
	}

	scheduleRef(vn.Ref, n, commits)
}

// scheduleRef queues ref with the first element handle at or below n. Text
// roots and fragments without elements report a nil handle.
func scheduleRef(ref func(any), n *node, commits *[]func()) {
	if ref == nil {
		return
	}
	*commits = append(*commits, func() {
		if h := n.rootHandle(); h != nil {
			ref(h)
			return
		}
		ref(nil)
	})
}

// renderChildren maps children to the current shadow children by key or
// index and unmounts the ones left over.
func (r *Root) renderChildren(vnodes []*vdom.VNode, current []*node, commits *[]func()) []*node {
	byKey := make(map[childKey]*node, len(current))
	for idx, c := range current {
		byKey[keyOf(c.kind, c.tag, c.typ, c.key, idx)] = c
	}

	next := make([]*node, 0, len(vnodes))
	used := make(map[*node]bool, len(vnodes))
	for idx, vn := range vnodes {
		if vn == nil {
			continue
		}
		var slot *node
		if c := byKey[keyOf(vn.Kind, vn.Tag, vn.Type, vn.Key, idx)]; c != nil && !used[c] {
			slot = c
			used[c] = true
		}
		r.render(vn, &slot, commits)
		if slot != nil {
			next = append(next, slot)
			used[slot] = true
		}
	}

	for _, c := range current {
		if !used[c] {
			r.unmount(&c)
		}
	}
	return next
}

// unmount tears down *slot: the component first, then its subtree.
func (r *Root) unmount(slot **node) {
	n := *slot
	if n == nil {
		return
	}
	if n.comp != nil {
		n.comp.ComponentWillUnmount()
	}
	r.unmount(&n.rendered)
	for i := range n.children {
		r.unmount(&n.children[i])
	}
	n.unmounted = true
	r.clean(n)
	*slot = nil
}
