package bridge

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vbridge/internal/errors"
	"github.com/vango-dev/vbridge/pkg/component"
	"github.com/vango-dev/vbridge/pkg/facade"
	"github.com/vango-dev/vbridge/pkg/postprocess"
	"github.com/vango-dev/vbridge/pkg/slots"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Component is one mounted instance of a Class. It is driven by a single
// host goroutine and is not safe for concurrent use.
type Component struct {
	class *Class
	ctx   context.Context
	log   *slog.Logger

	vm      *component.Instance
	builder *facade.Builder
	props   vdom.Props
	state   State

	queue        component.Queue
	el           any
	pending      bool
	onInvalidate func()
}

var (
	_ component.Carrier   = (*Component)(nil)
	_ postprocess.Carrier = (*Component)(nil)
)

func newComponent(ctx context.Context, class *Class, props vdom.Props) *Component {
	c := &Component{
		class: class,
		ctx:   ctx,
		props: class.WithDefaults(props),
		state: StateInitializing,
	}

	_, span := c.span("vbridge.init")
	defer span.End()

	c.vm = component.Assemble(class.def, c.props, c)
	c.log = class.opts.logger.With("tag", class.tag, "instance", c.vm.UID())
	c.builder = facade.New(c.vm, class.opts.factory, class.opts.registry)

	component.CopyProps(c.vm, c.props)
	c.vm.SetSlots(slots.Project(c.props, class.opts.slots))

	span.SetAttributes(attribute.String("vbridge.instance", c.vm.UID()))
	c.log.Debug("component initializing")
	class.opts.metrics.recordMount(class.tag)

	if h := class.def.Hooks.Created; h != nil {
		h(c.vm)
	}
	return c
}

func (c *Component) span(name string) (context.Context, trace.Span) {
	ctx, span := c.class.opts.tracer.Start(c.ctx, name,
		trace.WithAttributes(attribute.String("vbridge.tag", c.class.tag)))
	if c.vm != nil {
		span.SetAttributes(attribute.String("vbridge.instance", c.vm.UID()))
	}
	return ctx, span
}

// Class returns the class the component was created from.
func (c *Component) Class() *Class { return c.class }

// Instance returns the component's instance record.
func (c *Component) Instance() *component.Instance { return c.vm }

// Props returns the props last committed by the host, defaults included.
func (c *Component) Props() vdom.Props { return c.props }

// State returns the lifecycle state.
func (c *Component) State() State { return c.state }

// HasPendingChanges reports whether instance fields changed since the last
// commit.
func (c *Component) HasPendingChanges() bool { return c.pending }

// OnInvalidate registers fn to be called whenever instance state changes
// outside a render. Hosts use it to schedule a re-render.
func (c *Component) OnInvalidate(fn func()) { c.onInvalidate = fn }

// ComponentWillReceiveProps dispatches watchers for the incoming props.
func (c *Component) ComponentWillReceiveProps(next vdom.Props) {
	_, span := c.span("vbridge.receive_props")
	defer span.End()

	fired := component.DispatchWatchers(c.vm, c.props, c.class.WithDefaults(next))
	span.SetAttributes(attribute.Int("vbridge.watchers_fired", fired))
	c.class.opts.metrics.recordWatchers(c.class.tag, fired)
	c.log.Debug("props received", "watchers_fired", fired)
}

// ComponentWillUpdate calls the updated hook ahead of the next render.
func (c *Component) ComponentWillUpdate(next vdom.Props) {
	c.state = StateUpdating
	if h := c.class.def.Hooks.Updated; h != nil {
		h(c.vm)
	}
}

// SetProps commits the props the next Render reads.
func (c *Component) SetProps(next vdom.Props) {
	c.props = c.class.WithDefaults(next)
}

// Render produces the component's tree for the current props.
//
// The instance is refreshed (props, slots, computed properties) before the
// render function runs. The returned root carries the class tag, a commit
// ref and the merged additionalClassName/additionalStyles/id overrides.
// Those ephemeral props are removed from the whole tree before returning.
// The result is a fresh tree; the render function's output is not modified.
func (c *Component) Render() *vdom.VNode {
	_, span := c.span("vbridge.render")
	defer span.End()
	start := time.Now()

	component.CopyProps(c.vm, c.props)
	c.vm.SetSlots(slots.Project(c.props, c.class.opts.slots))
	component.RecomputeComputed(c.vm)

	render := c.class.def.Render
	if render == nil {
		c.class.warnOnce.Do(func() {
			c.log.Warn("component has no render function")
		})
		return nil
	}

	root := c.forwardEphemeral(render(c.builder))
	out := postprocess.ApplyOverrides(root, c.class.tag, c)
	out = postprocess.StripEphemeral(out)

	c.class.opts.metrics.recordRender(c.class.tag, time.Since(start))
	c.log.Debug("rendered", "pending", c.queue.Len())
	return out
}

// forwardEphemeral copies the additionalClassName, additionalStyles and
// refTemp props the component received onto its root, unless the root
// already sets them.
func (c *Component) forwardEphemeral(root *vdom.VNode) *vdom.VNode {
	if root == nil || root.IsText() {
		return root
	}
	var out *vdom.VNode
	for _, name := range postprocess.Ephemeral {
		v, ok := c.props[name]
		if !ok || v == nil || root.Props.Has(name) {
			continue
		}
		if out == nil {
			out = root.ShallowCopy()
			if out.Props == nil {
				out.Props = vdom.Props{}
			}
		}
		out.Props[name] = v
	}
	if out == nil {
		return root
	}
	return out
}

// ComponentDidMount runs the NextTick callbacks the commit ref has not
// drained, which happens when the render produced nothing, then calls the
// mounted hook.
func (c *Component) ComponentDidMount() {
	c.state = StateMounted
	c.FlushPending()
	c.log.Debug("component mounted")
	if h := c.class.def.Hooks.Mounted; h != nil {
		h(c.vm)
	}
}

// ComponentDidUpdate runs the NextTick callbacks queued during the update.
func (c *Component) ComponentDidUpdate() {
	c.state = StateMounted
	c.FlushPending()
}

// ComponentWillUnmount calls the beforeDestroy hook, then drops or runs the
// pending NextTick callbacks according to the class's unmount policy.
func (c *Component) ComponentWillUnmount() {
	_, span := c.span("vbridge.unmount")
	defer span.End()

	c.state = StateUnmounting
	if h := c.class.def.Hooks.BeforeDestroy; h != nil {
		h(c.vm)
	}

	switch c.class.opts.policy {
	case UnmountFlush:
		c.FlushPending()
	default:
		if n := c.queue.Drop(); n > 0 {
			c.class.opts.metrics.recordDropped(c.class.tag, n)
			c.log.Debug("dropped pending callbacks", "count", n)
		}
	}

	c.state = StateUnmounted
	c.onInvalidate = nil
	c.class.opts.metrics.recordUnmount(c.class.tag)
	c.log.Debug("component unmounted")
}

// CallMethod invokes a component method by name on behalf of host code.
func (c *Component) CallMethod(name string, args ...any) (any, error) {
	_, span := c.span("vbridge.call")
	defer span.End()
	span.SetAttributes(attribute.String("vbridge.method", name))

	result, ok := c.vm.Call(name, args...)
	c.class.opts.metrics.recordCall(c.class.tag, ok)
	if !ok {
		err := errors.New("E101").
			WithDetailf("no method %q on component %q", name, c.class.tag).
			WithSuggestion("Check the Methods map of the definition, its mixin and constructor args")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Message)
		return nil, err
	}
	return result, nil
}

// Defer implements component.Carrier.
func (c *Component) Defer(fn func()) { c.queue.Push(fn) }

// Element returns the last committed handle of the component's root.
func (c *Component) Element() any { return c.el }

// Invalidate implements component.Carrier.
func (c *Component) Invalidate() {
	c.pending = true
	if c.onInvalidate != nil && c.state != StateUnmounted {
		c.onInvalidate()
	}
}

// SetElement implements postprocess.Carrier.
func (c *Component) SetElement(handle any) { c.el = handle }

// FlushPending runs the queued NextTick callbacks.
func (c *Component) FlushPending() {
	if n := c.queue.Drain(); n > 0 {
		c.class.opts.metrics.recordDrained(c.class.tag, n)
		c.log.Debug("ran pending callbacks", "count", n)
	}
}

// ClearPendingState implements postprocess.Carrier.
func (c *Component) ClearPendingState() { c.pending = false }

// InstanceID implements postprocess.Carrier.
func (c *Component) InstanceID() (string, bool) { return c.vm.ID() }
