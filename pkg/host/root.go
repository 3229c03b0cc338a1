package host

import (
	"context"
	"log/slog"

	"github.com/vango-dev/vbridge/internal/errors"
	"github.com/vango-dev/vbridge/pkg/bridge"
	"github.com/vango-dev/vbridge/pkg/render"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Option configures a Root.
type Option func(*Root)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Root) {
		r.log = logger
	}
}

// WithContext sets the context components are created with.
func WithContext(ctx context.Context) Option {
	return func(r *Root) {
		r.ctx = ctx
	}
}

// WithRenderer sets the HTML renderer configuration used by HTML.
func WithRenderer(config render.RendererConfig) Option {
	return func(r *Root) {
		r.renderConfig = config
	}
}

// Root hosts one mounted component tree.
type Root struct {
	ctx          context.Context
	log          *slog.Logger
	renderConfig render.RendererConfig

	class *bridge.Class
	top   *node

	dirty    []*node
	dirtySet map[*node]bool
}

// New creates an empty root.
func New(opts ...Option) *Root {
	r := &Root{
		ctx:      context.Background(),
		dirtySet: make(map[*node]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

// Mount renders class with props and commits the result. A previously
// mounted tree is unmounted first.
func (r *Root) Mount(class *bridge.Class, props vdom.Props) error {
	if class == nil {
		return errors.New("E106").WithDetail("Mount called with a nil class")
	}
	if r.top != nil {
		r.unmount(&r.top)
	}
	r.class = class
	r.log.Debug("mounting root", "tag", class.Tag())
	r.pass(vdom.Component(class, props))
	return nil
}

// Update re-renders the root component with new props.
func (r *Root) Update(props vdom.Props) error {
	if r.top == nil {
		return errors.New("E102").WithDetail("Update called before Mount")
	}
	r.pass(vdom.Component(r.class, props))
	return nil
}

// Flush re-renders every component invalidated since it was last rendered
// and returns how many were rendered. Components invalidated again while
// their own commit runs wait for the next Flush.
func (r *Root) Flush() (int, error) {
	if r.top == nil {
		return 0, errors.New("E102").WithDetail("Flush called before Mount")
	}

	batch := r.dirty
	r.dirty = nil

	rendered := 0
	done := make(map[*node]bool, len(batch))
	for _, n := range batch {
		// Skips nodes an ancestor already re-rendered during this flush.
		if n.unmounted || done[n] || !r.dirtySet[n] {
			continue
		}
		done[n] = true
		var commits []func()
		c := n.comp
		c.ComponentWillUpdate(c.Props())
		r.clean(n)
		r.render(c.Render(), &n.rendered, &commits)
		commits = append(commits, c.ComponentDidUpdate)
		r.commit(commits)
		rendered++
	}
	if rendered > 0 {
		r.log.Debug("flushed", "components", rendered)
	}
	return rendered, nil
}

// Pending returns the number of components waiting for Flush.
func (r *Root) Pending() int { return len(r.dirtySet) }

// Unmount tears the tree down.
func (r *Root) Unmount() error {
	if r.top == nil {
		return errors.New("E102").WithDetail("Unmount called before Mount")
	}
	r.unmount(&r.top)
	r.dirty = nil
	r.dirtySet = make(map[*node]bool)
	return nil
}

// Mounted reports whether a tree is mounted.
func (r *Root) Mounted() bool { return r.top != nil }

// Component returns the root component, or nil.
func (r *Root) Component() *bridge.Component {
	if r.top == nil {
		return nil
	}
	return r.top.comp
}

// Components returns every mounted component in tree order, parents first.
func (r *Root) Components() []*bridge.Component {
	var out []*bridge.Component
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if n.comp != nil {
			out = append(out, n.comp)
		}
		walk(n.rendered)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(r.top)
	return out
}

// Find returns the mounted components whose class tag is tag.
func (r *Root) Find(tag string) []*bridge.Component {
	var out []*bridge.Component
	for _, c := range r.Components() {
		if c.Class().Tag() == tag {
			out = append(out, c)
		}
	}
	return out
}

// Tree returns the committed tree with every component replaced by its
// rendered output.
func (r *Root) Tree() *vdom.VNode {
	return expand(r.top)
}

// HTML renders the committed tree.
func (r *Root) HTML() (string, error) {
	if r.top == nil {
		return "", errors.New("E102").WithDetail("HTML called before Mount")
	}
	return render.NewRenderer(r.renderConfig).RenderToString(r.Tree())
}

func (r *Root) pass(vn *vdom.VNode) {
	var commits []func()
	r.render(vn, &r.top, &commits)
	r.commit(commits)
}

func (r *Root) commit(commits []func()) {
	for _, fn := range commits {
		fn()
	}
}

func (r *Root) invalidate(n *node) {
	if n.unmounted || r.dirtySet[n] {
		return
	}
	r.dirtySet[n] = true
	r.dirty = append(r.dirty, n)
}

// clean clears n's dirty mark ahead of a render. Changes made after this
// point, including those made by its commit, mark it dirty again.
func (r *Root) clean(n *node) {
	delete(r.dirtySet, n)
}

func expand(n *node) *vdom.VNode {
	if n == nil {
		return nil
	}
	switch n.kind {
	case vdom.KindComponent:
		return expand(n.rendered)
	case vdom.KindText:
		return n.vnode
	}

	out := n.vnode.ShallowCopy()
	out.Ref = nil
	out.Children = make([]*vdom.VNode, 0, len(n.children))
	for _, c := range n.children {
		if e := expand(c); e != nil {
			out.Children = append(out.Children, e)
		}
	}
	return out
}
