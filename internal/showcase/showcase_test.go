package showcase

import (
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/vbridge/internal/errors"
	"github.com/vango-dev/vbridge/pkg/bridge"
	"github.com/vango-dev/vbridge/pkg/host"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func renderEntry(t *testing.T, c *Catalog, name string, props vdom.Props) (*host.Root, string) {
	t.Helper()
	e, err := c.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	root := host.New(host.WithLogger(quietLogger()))
	if err := root.Mount(e.Class, props); err != nil {
		t.Fatalf("Mount(%s) error = %v", name, err)
	}
	html, err := root.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	return root, html
}

func TestCatalogNames(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))
	want := []string{"card", "counter", "label", "page", "todo-item", "todo-list"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for _, name := range want {
		if _, ok := c.Registry().Lookup(name); !ok {
			t.Errorf("registry missing %q", name)
		}
	}
}

func TestCatalogGetUnknown(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))
	_, err := c.Get("nope")
	if !errors.HasCode(err, "E103") {
		t.Fatalf("Get(nope) error = %v, want E103", err)
	}
}

func TestExamplesRender(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))
	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			e, _ := c.Get(name)
			_, html := renderEntry(t, c, name, e.Example)
			if html == "" {
				t.Error("empty render")
			}
		})
	}
}

func TestLabelDefault(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))

	tests := []struct {
		props vdom.Props
		want  string
	}{
		{nil, `<span class="label">hi</span>`},
		{vdom.Props{"text": "Hello"}, `<span class="label">Hello</span>`},
	}
	for _, tt := range tests {
		if _, got := renderEntry(t, c, "label", tt.props); got != tt.want {
			t.Errorf("label(%v) = %q, want %q", tt.props, got, tt.want)
		}
	}
}

func TestCounterIncrement(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))
	root, html := renderEntry(t, c, "counter", vdom.Props{"start": 5})
	if !strings.Contains(html, `class="counter odd"`) || !strings.Contains(html, "<output>5</output>") {
		t.Fatalf("initial render = %q", html)
	}

	if _, err := root.Component().CallMethod("increment"); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Flush(); err != nil {
		t.Fatal(err)
	}
	html, _ = root.HTML()
	if !strings.Contains(html, `class="counter even"`) || !strings.Contains(html, "<output>6</output>") {
		t.Errorf("after increment = %q", html)
	}

	root.Update(vdom.Props{"start": 10})
	html, _ = root.HTML()
	if !strings.Contains(html, "<output>10</output>") {
		t.Errorf("after start change = %q", html)
	}
	if got := root.Component().Instance().Int("changes"); got != 1 {
		t.Errorf("changes = %d, want 1", got)
	}
}

func TestCardSlots(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))

	_, html := renderEntry(t, c, "card", nil)
	if !strings.Contains(html, "<header>Untitled</header>") {
		t.Errorf("fallback header missing: %q", html)
	}
	if strings.Contains(html, "<footer>") {
		t.Errorf("empty footer rendered: %q", html)
	}

	_, html = renderEntry(t, c, "card", vdom.Props{
		"headerContent": vdom.Element("h2", nil, "T"),
		"footerContent": "F",
		"children":      "body",
	})
	for _, want := range []string{"<header><h2>T</h2></header>", "<footer>F</footer>", `<div class="card-body">body</div>`} {
		if !strings.Contains(html, want) {
			t.Errorf("card missing %q in %q", want, html)
		}
	}
}

func TestTodoList(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))
	e, _ := c.Get("todo-list")
	root, html := renderEntry(t, c, "todo-list", e.Example)

	if n := strings.Count(html, "<li"); n != 2 {
		t.Errorf("rendered %d items, want 2: %q", n, html)
	}
	if !strings.Contains(html, "1 remaining") {
		t.Errorf("summary missing: %q", html)
	}
	if got := len(root.Find("todo-item")); got != 2 {
		t.Errorf("Find(todo-item) = %d, want 2", got)
	}

	_, html = renderEntry(t, c, "todo-list", nil)
	if !strings.Contains(html, "Nothing to do") || !strings.Contains(html, "0 remaining") {
		t.Errorf("empty list = %q", html)
	}
}

func TestTodoItemEmitsToggle(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))
	e, _ := c.Get("todo-item")

	var got []any
	root := host.New(host.WithLogger(quietLogger()))
	err := root.Mount(e.Class, vdom.Props{
		"title":    "x",
		"itemId":   "7",
		"onToggle": func(args ...any) { got = args },
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := root.Component().CallMethod("toggle"); err != nil {
		t.Fatal(err)
	}
	if want := []any{"7", true}; !reflect.DeepEqual(got, want) {
		t.Errorf("toggle emitted %v, want %v", got, want)
	}
}

func TestPageComposesByName(t *testing.T) {
	c := New(bridge.WithLogger(quietLogger()))
	root, html := renderEntry(t, c, "page", vdom.Props{"heading": "Hello World"})

	for _, want := range []string{
		`data-page="hello-world"`,
		"<h1>Hello World</h1>",
		`class="label lead"`,
		"font-weight",
		"Composed from the registry",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q in %q", want, html)
		}
	}
	if len(root.Find("card")) != 1 || len(root.Find("label")) != 1 {
		t.Error("page did not mount card and label as components")
	}
	if strings.Contains(html, "additionalClassName") || strings.Contains(html, "additionalStyles") {
		t.Errorf("ephemeral props leaked: %q", html)
	}
}
