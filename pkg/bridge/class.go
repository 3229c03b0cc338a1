package bridge

import (
	"context"
	"sync"

	"github.com/vango-dev/vbridge/internal/casing"
	"github.com/vango-dev/vbridge/pkg/component"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Class is a generated host component class.
type Class struct {
	tag      string
	source   *component.Definition
	def      *component.Resolved
	defaults vdom.Props
	opts     options

	warnOnce sync.Once
}

var _ vdom.ComponentType = (*Class)(nil)

// Generate resolves def with the mixin and args from opts into a new class.
// def is not modified; generating twice from one definition yields two
// independent classes.
func Generate(def *component.Definition, opts ...Option) *Class {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()

	resolved := component.Resolve(def, o.mixin, o.args)

	tag := o.tag
	if tag == "" {
		tag = casing.Kebab(def.Name)
	}

	c := &Class{
		tag:      tag,
		source:   def,
		def:      resolved,
		defaults: resolved.DefaultProps(),
		opts:     o,
	}
	o.logger.Debug("class generated",
		"tag", tag,
		"methods", len(resolved.Methods),
		"computed", len(resolved.Computed),
		"watchers", len(resolved.Watch))
	return c
}

// LogicalTag implements vdom.ComponentType.
func (c *Class) LogicalTag() string { return c.tag }

// Tag returns the logical tag the class stamps onto its roots.
func (c *Class) Tag() string { return c.tag }

// Definition returns the resolved snapshot the class was generated from.
func (c *Class) Definition() *component.Resolved { return c.def }

// Source returns the definition passed to Generate.
func (c *Class) Source() *component.Definition { return c.source }

// DefaultProps returns a copy of the class's default props, or nil when no
// prop declares a default.
func (c *Class) DefaultProps() vdom.Props {
	if c.defaults == nil {
		return nil
	}
	return c.defaults.Clone()
}

// WithDefaults returns props with the class defaults filled in for absent
// keys. props itself is not modified.
func (c *Class) WithDefaults(props vdom.Props) vdom.Props {
	out := make(vdom.Props, len(props)+len(c.defaults))
	for k, v := range c.defaults {
		out[k] = v
	}
	for k, v := range props {
		out[k] = v
	}
	return out
}

// New creates a component for one mount.
func (c *Class) New(props vdom.Props) *Component {
	return c.NewContext(context.Background(), props)
}

// NewContext creates a component whose spans are children of ctx.
func (c *Class) NewContext(ctx context.Context, props vdom.Props) *Component {
	return newComponent(ctx, c, props)
}
