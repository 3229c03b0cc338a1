package bridge

import (
	"context"
	"reflect"
	"testing"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/vbridge/pkg/component"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

type recordingTracer struct {
	noop.Tracer
	spans []*recordingSpan
}

type recordingSpan struct {
	noop.Span
	name   string
	parent trace.Span
	status codes.Code
	errs   int
}

func (t *recordingTracer) Start(ctx context.Context, name string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	s := &recordingSpan{name: name, parent: trace.SpanFromContext(ctx)}
	t.spans = append(t.spans, s)
	return trace.ContextWithSpan(ctx, s), s
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordingSpan) RecordError(error, ...trace.EventOption) { s.errs++ }

func (t *recordingTracer) names() []string {
	out := make([]string, len(t.spans))
	for i, s := range t.spans {
		out[i] = s.name
	}
	return out
}

func TestLifecycleSpans(t *testing.T) {
	tracer := &recordingTracer{}
	class := Generate(&component.Definition{
		Name:    "Traced",
		Methods: map[string]component.Method{"ping": func(*component.Instance, ...any) any { return "pong" }},
		Render: func(h component.Hyperscript) *vdom.VNode {
			return h.H("div")
		},
	}, WithLogger(quietLogger()), WithTracer(tracer))

	parent := &recordingSpan{name: "request"}
	c := class.NewContext(trace.ContextWithSpan(context.Background(), parent), nil)
	c.Render()
	c.ComponentDidMount()
	c.ComponentWillReceiveProps(vdom.Props{"x": 1})
	if _, err := c.CallMethod("ping"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.CallMethod("missing"); err == nil {
		t.Fatal("expected error for missing method")
	}
	c.ComponentWillUnmount()

	want := []string{
		"vbridge.init",
		"vbridge.render",
		"vbridge.receive_props",
		"vbridge.call",
		"vbridge.call",
		"vbridge.unmount",
	}
	if got := tracer.names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("spans = %v, want %v", got, want)
	}

	for _, s := range tracer.spans {
		if s.parent != trace.Span(parent) {
			t.Errorf("%s parent = %v, want the context span", s.name, s.parent)
		}
	}

	ok, failed := tracer.spans[3], tracer.spans[4]
	if ok.status == codes.Error || ok.errs != 0 {
		t.Error("successful call span marked as error")
	}
	if failed.status != codes.Error || failed.errs != 1 {
		t.Errorf("failed call span status = %v, errors = %d", failed.status, failed.errs)
	}
}
