package bridge

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vbridge/pkg/component"
	"github.com/vango-dev/vbridge/pkg/elements"
	"github.com/vango-dev/vbridge/pkg/slots"
)

// Default tracer name.
const defaultTracerName = "vbridge"

// Option configures Generate.
type Option func(*options)

type options struct {
	tag      string
	registry *elements.Registry
	slots    slots.Mapping
	mixin    component.Mixin
	args     map[string]any
	factory  elements.Factory
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	policy   UnmountPolicy
}

func defaultOptions() options {
	return options{
		factory: elements.Default,
		policy:  UnmountDrop,
	}
}

// WithTag sets the logical tag stamped on every root the class renders.
// Defaults to the kebab-case definition name.
func WithTag(tag string) Option {
	return func(o *options) {
		o.tag = tag
	}
}

// WithRegistry sets the registry string component types are resolved against.
func WithRegistry(reg *elements.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithSlots maps named slots to the props that supply them.
func WithSlots(mapping slots.Mapping) Option {
	return func(o *options) {
		o.slots = mapping
	}
}

// WithMixin merges mixin onto the definition.
func WithMixin(mixin component.Mixin) Option {
	return func(o *options) {
		o.mixin = mixin
	}
}

// WithArgs sets constructor args. They take precedence over the definition
// and the mixin.
func WithArgs(args map[string]any) Option {
	return func(o *options) {
		o.args = args
	}
}

// WithFactory replaces the element-creation collaborator.
func WithFactory(f elements.Factory) Option {
	return func(o *options) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records lifecycle metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracer sets the tracer. Defaults to the global provider's "vbridge"
// tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithUnmountPolicy sets what happens to pending NextTick callbacks on
// unmount.
func WithUnmountPolicy(p UnmountPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

func (o *options) resolve() {
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(defaultTracerName)
	}
	if o.policy == "" {
		o.policy = UnmountDrop
	}
}
