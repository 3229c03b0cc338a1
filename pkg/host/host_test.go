package host

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/vango-dev/vbridge/internal/errors"
	"github.com/vango-dev/vbridge/pkg/bridge"
	"github.com/vango-dev/vbridge/pkg/component"
	"github.com/vango-dev/vbridge/pkg/slots"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func generate(def *component.Definition, opts ...bridge.Option) *bridge.Class {
	return bridge.Generate(def, append(opts, bridge.WithLogger(quietLogger()))...)
}

func mustHTML(t *testing.T, r *Root) string {
	t.Helper()
	html, err := r.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	return html
}

func TestDefaultPropRendered(t *testing.T) {
	label := generate(&component.Definition{
		Name:  "Label",
		Props: map[string]component.Prop{"text": {Default: "hi"}},
		Render: func(h component.Hyperscript) *vdom.VNode {
			return h.H("span", vdom.Props{"class": "label"}, h.Text(h.VM().Get("text")))
		},
	})

	root := New(WithLogger(quietLogger()))
	if err := root.Mount(label, nil); err != nil {
		t.Fatal(err)
	}
	if got := mustHTML(t, root); got != `<span class="label">hi</span>` {
		t.Errorf("HTML() = %q", got)
	}

	root.Update(vdom.Props{"text": "bye"})
	if got := mustHTML(t, root); got != `<span class="label">bye</span>` {
		t.Errorf("HTML() after update = %q", got)
	}
}

func counterDefinition(fired *[]any) *component.Definition {
	return &component.Definition{
		Name:  "Counter",
		Props: map[string]component.Prop{"start": {Default: 0}},
		Data:  func() map[string]any { return map[string]any{"count": 0} },
		Created: func(vm *component.Instance) {
			vm.Set("count", vm.Int("start"))
		},
		Watch: []component.Watcher{{
			Prop: "start",
			Handler: func(vm *component.Instance, v any) {
				*fired = append(*fired, v)
				vm.Set("count", v)
			},
		}},
		Methods: map[string]component.Method{
			"increment": func(vm *component.Instance, args ...any) any {
				vm.Set("count", vm.Int("count")+1)
				return vm.Int("count")
			},
		},
		Render: func(h component.Hyperscript) *vdom.VNode {
			vm := h.VM()
			return h.H("button", vdom.Props{
				"on": map[string]any{"click": func() { vm.Call("increment") }},
			}, h.Text(vm.Get("count")))
		},
	}
}

func TestWatcherEndToEnd(t *testing.T) {
	var fired []any
	root := New(WithLogger(quietLogger()))
	root.Mount(generate(counterDefinition(&fired)), vdom.Props{"start": 3})

	if got := mustHTML(t, root); got != "<button>3</button>" {
		t.Fatalf("HTML() = %q", got)
	}

	root.Update(vdom.Props{"start": 3})
	if len(fired) != 0 {
		t.Errorf("watcher fired for an unchanged prop: %v", fired)
	}

	root.Update(vdom.Props{"start": 7})
	if !reflect.DeepEqual(fired, []any{7}) {
		t.Errorf("fired = %v, want [7]", fired)
	}
	if got := mustHTML(t, root); got != "<button>7</button>" {
		t.Errorf("HTML() = %q", got)
	}
}

func TestFlushAfterMethodCall(t *testing.T) {
	var fired []any
	root := New(WithLogger(quietLogger()))
	root.Mount(generate(counterDefinition(&fired)), nil)

	got, err := root.Component().CallMethod("increment")
	if err != nil || got != 1 {
		t.Fatalf("CallMethod() = %v, %v", got, err)
	}
	if root.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", root.Pending())
	}

	n, err := root.Flush()
	if err != nil || n != 1 {
		t.Errorf("Flush() = %d, %v; want 1", n, err)
	}
	if html := mustHTML(t, root); html != "<button>1</button>" {
		t.Errorf("HTML() = %q", html)
	}
	if n, _ := root.Flush(); n != 0 {
		t.Errorf("second Flush() = %d, want 0", n)
	}
}

func TestClickHandlerReachesInstance(t *testing.T) {
	var fired []any
	root := New(WithLogger(quietLogger()))
	root.Mount(generate(counterDefinition(&fired)), nil)

	click, ok := root.Tree().Props["onClick"].(func())
	if !ok {
		t.Fatalf("onClick = %T", root.Tree().Props["onClick"])
	}
	click()
	root.Flush()
	if html := mustHTML(t, root); html != "<button>1</button>" {
		t.Errorf("HTML() = %q", html)
	}
}

func TestElAndNextTick(t *testing.T) {
	var mountedEl, tickEl any
	def := &component.Definition{
		Name: "Box",
		Created: func(vm *component.Instance) {
			vm.NextTick(func() { tickEl = vm.El() })
		},
		Mounted: func(vm *component.Instance) { mountedEl = vm.El() },
		Render: func(h component.Hyperscript) *vdom.VNode {
			return h.H("section")
		},
	}

	root := New(WithLogger(quietLogger()))
	root.Mount(generate(def), nil)

	el, ok := mountedEl.(*Element)
	if !ok || el.Tag != "section" || el.ID == "" {
		t.Fatalf("$el in mounted = %#v", mountedEl)
	}
	if tickEl != mountedEl {
		t.Errorf("NextTick saw %v, want the committed element", tickEl)
	}

	root.Update(nil)
	if root.Component().Element() != el {
		t.Error("element handle changed across updates")
	}
}

func TestChildReconciliation(t *testing.T) {
	created, destroyed := 0, 0
	item := generate(&component.Definition{
		Name:          "Item",
		Created:       func(*component.Instance) { created++ },
		BeforeDestroy: func(*component.Instance) { destroyed++ },
		Render: func(h component.Hyperscript) *vdom.VNode {
			return h.H("li", h.Text(h.VM().Get("label")))
		},
	})
	list := generate(&component.Definition{
		Name: "List",
		Render: func(h component.Hyperscript) *vdom.VNode {
			items, _ := h.VM().Get("items").([]string)
			children := make([]any, 0, len(items))
			for _, it := range items {
				children = append(children, h.H(item, vdom.Props{
					"key":   it,
					"props": map[string]any{"label": it},
				}))
			}
			return h.H("ul", children)
		},
	})

	root := New(WithLogger(quietLogger()))
	root.Mount(list, vdom.Props{"items": []string{"a", "b", "c"}})
	if got := mustHTML(t, root); got != "<ul><li>a</li><li>b</li><li>c</li></ul>" {
		t.Fatalf("HTML() = %q", got)
	}
	before := root.Find("item")

	root.Update(vdom.Props{"items": []string{"c", "a"}})
	if got := mustHTML(t, root); got != "<ul><li>c</li><li>a</li></ul>" {
		t.Errorf("HTML() = %q", got)
	}
	after := root.Find("item")

	if created != 3 || destroyed != 1 {
		t.Errorf("created = %d, destroyed = %d; want 3, 1", created, destroyed)
	}
	if len(after) != 2 || after[0] != before[2] || after[1] != before[0] {
		t.Error("keyed children were not reused")
	}
	if before[1].State() != bridge.StateUnmounted {
		t.Errorf("removed child state = %v", before[1].State())
	}
}

func TestParentChildOrder(t *testing.T) {
	var events []string
	rec := func(s string) component.Hook {
		return func(*component.Instance) { events = append(events, s) }
	}
	child := generate(&component.Definition{
		Name:          "Child",
		Created:       rec("child created"),
		Mounted:       rec("child mounted"),
		BeforeDestroy: rec("child destroy"),
		Render:        func(h component.Hyperscript) *vdom.VNode { return h.H("i") },
	})
	parent := generate(&component.Definition{
		Name:          "Parent",
		Created:       rec("parent created"),
		Mounted:       rec("parent mounted"),
		BeforeDestroy: rec("parent destroy"),
		Render: func(h component.Hyperscript) *vdom.VNode {
			return h.H("div", h.H(child))
		},
	})

	root := New(WithLogger(quietLogger()))
	root.Mount(parent, nil)
	root.Unmount()

	want := []string{
		"parent created", "child created",
		"child mounted", "parent mounted",
		"parent destroy", "child destroy",
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v\nwant     %v", events, want)
	}
	if root.Mounted() {
		t.Error("root still mounted")
	}
}

func TestSlotsParentAndRefs(t *testing.T) {
	var seenParent *component.Instance
	card := generate(&component.Definition{
		Name:    "Card",
		Created: func(vm *component.Instance) { seenParent = vm.Parent() },
		Render: func(h component.Hyperscript) *vdom.VNode {
			return h.H("div", vdom.Props{"class": "card"},
				h.H("header", h.Slot("header", vdom.Text("untitled"))),
				h.H("main", h.Slot(slots.Default)),
			)
		},
	}, bridge.WithSlots(slots.Mapping{"header": "title"}))

	page := generate(&component.Definition{
		Name: "Page",
		Render: func(h component.Hyperscript) *vdom.VNode {
			props := map[string]any{}
			if title, ok := h.VM().Get("title").(string); ok {
				props["title"] = h.H("h1", title)
			}
			return h.H("article",
				h.H("input", vdom.Props{"ref": "field"}),
				h.H(card, vdom.Props{"props": props, "ref": "card"}, h.H("p", "body")),
			)
		},
	})

	root := New(WithLogger(quietLogger()))
	root.Mount(page, vdom.Props{"title": "T"})

	want := `<article><input><div class="card"><header><h1>T</h1></header><main><p>body</p></main></div></article>`
	if got := mustHTML(t, root); got != want {
		t.Errorf("HTML() = %q\nwant      %q", got, want)
	}

	vm := root.Component().Instance()
	if seenParent != vm {
		t.Error("child did not receive the parent instance")
	}
	if el, ok := vm.Ref("field").(*Element); !ok || el.Tag != "input" {
		t.Errorf("Ref(field) = %#v", vm.Ref("field"))
	}
	if el, ok := vm.Ref("card").(*Element); !ok || el.Tag != "div" {
		t.Errorf("Ref(card) = %#v", vm.Ref("card"))
	}

	root.Update(nil)
	want = `<article><input><div class="card"><header>untitled</header><main><p>body</p></main></div></article>`
	if got := mustHTML(t, root); got != want {
		t.Errorf("HTML() with fallback = %q", got)
	}
}

func TestNotMounted(t *testing.T) {
	root := New(WithLogger(quietLogger()))

	checks := map[string]error{
		"Update":  root.Update(nil),
		"Unmount": root.Unmount(),
	}
	_, checks["Flush"] = root.Flush()
	_, checks["HTML"] = root.HTML()

	for name, err := range checks {
		if !errors.HasCode(err, "E102") {
			t.Errorf("%s error = %v, want E102", name, err)
		}
	}
	if root.Component() != nil || root.Tree() != nil {
		t.Error("empty root should have no component or tree")
	}
}

func TestRemountReplacesTree(t *testing.T) {
	destroyed := 0
	def := &component.Definition{
		Name:          "One",
		BeforeDestroy: func(*component.Instance) { destroyed++ },
		Render:        func(h component.Hyperscript) *vdom.VNode { return h.H("b") },
	}
	root := New(WithLogger(quietLogger()))
	root.Mount(generate(def), nil)
	root.Mount(generate(def), nil)

	if destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", destroyed)
	}
	if len(root.Components()) != 1 {
		t.Errorf("Components() = %d, want 1", len(root.Components()))
	}
}

func TestNextTickStateChangeFlushed(t *testing.T) {
	def := &component.Definition{
		Name: "Status",
		Data: func() map[string]any { return map[string]any{"status": "loading"} },
		Mounted: func(vm *component.Instance) {
			vm.NextTick(func() { vm.Set("status", "ready") })
		},
		Render: func(h component.Hyperscript) *vdom.VNode {
			return h.H("p", h.Text(h.VM().Get("status")))
		},
	}

	root := New(WithLogger(quietLogger()))
	if err := root.Mount(generate(def), nil); err != nil {
		t.Fatal(err)
	}
	if root.Pending() != 0 {
		t.Fatalf("Pending() after mount = %d, want 0", root.Pending())
	}

	// The update commit runs the callback, which changes state again.
	root.Update(nil)
	if got := mustHTML(t, root); got != "<p>loading</p>" {
		t.Fatalf("HTML() after update = %q", got)
	}
	if root.Pending() != 1 {
		t.Fatalf("Pending() after update = %d, want 1", root.Pending())
	}

	n, err := root.Flush()
	if err != nil || n != 1 {
		t.Fatalf("Flush() = %d, %v; want 1", n, err)
	}
	if got := mustHTML(t, root); got != "<p>ready</p>" {
		t.Errorf("HTML() after flush = %q", got)
	}
	if n, _ := root.Flush(); n != 0 {
		t.Errorf("second Flush() = %d, want 0", n)
	}
}

func TestUpdateClearsPendingFlush(t *testing.T) {
	var fired []any
	root := New(WithLogger(quietLogger()))
	root.Mount(generate(counterDefinition(&fired)), nil)

	root.Component().CallMethod("increment")
	root.Update(nil)
	if root.Pending() != 0 {
		t.Errorf("Pending() = %d after a re-render, want 0", root.Pending())
	}
	if n, _ := root.Flush(); n != 0 {
		t.Errorf("Flush() = %d, want 0", n)
	}
	if got := mustHTML(t, root); got != "<button>1</button>" {
		t.Errorf("HTML() = %q", got)
	}
}

func TestRootShapesCommit(t *testing.T) {
	tests := []struct {
		name    string
		render  func(h component.Hyperscript) *vdom.VNode
		wantTag string
		html    string
	}{
		{
			name: "fragment",
			render: func(h component.Hyperscript) *vdom.VNode {
				return vdom.Fragment(h.H("b", "x"), h.H("i", "y"))
			},
			wantTag: "b",
			html:    "<b>x</b><i>y</i>",
		},
		{
			name: "text",
			render: func(h component.Hyperscript) *vdom.VNode {
				return vdom.Text("plain")
			},
			html: "plain",
		},
		{
			name: "empty",
			render: func(h component.Hyperscript) *vdom.VNode {
				return h.Empty()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran := 0
			def := &component.Definition{
				Name: "Shape",
				Created: func(vm *component.Instance) {
					vm.NextTick(func() { ran++ })
				},
				Render: tt.render,
			}

			root := New(WithLogger(quietLogger()))
			root.Mount(generate(def), nil)

			if ran != 1 {
				t.Errorf("NextTick ran %d times after mount, want 1", ran)
			}
			el := root.Component().Element()
			if tt.wantTag == "" {
				if el != nil {
					t.Errorf("Element() = %#v, want nil", el)
				}
			} else if h, ok := el.(*Element); !ok || h.Tag != tt.wantTag {
				t.Errorf("Element() = %#v, want <%s>", el, tt.wantTag)
			}
			if tt.html != "" {
				if got := mustHTML(t, root); got != tt.html {
					t.Errorf("HTML() = %q, want %q", got, tt.html)
				}
			}

			root.Update(nil)
			if ran != 1 {
				t.Errorf("NextTick ran %d times after update, want 1", ran)
			}
		})
	}
}

func TestMountNilClass(t *testing.T) {
	root := New(WithLogger(quietLogger()))
	if err := root.Mount(nil, nil); !errors.HasCode(err, "E106") {
		t.Errorf("Mount(nil) error = %v, want E106", err)
	}
	if root.Mounted() {
		t.Error("root mounted without a class")
	}
}

func TestUnmountedChildLeavesPending(t *testing.T) {
	var childVM *component.Instance
	child := generate(&component.Definition{
		Name:    "Child",
		Data:    func() map[string]any { return map[string]any{"n": 0} },
		Created: func(vm *component.Instance) { childVM = vm },
		Render:  func(h component.Hyperscript) *vdom.VNode { return h.H("i") },
	})
	parent := generate(&component.Definition{
		Name: "Parent",
		Render: func(h component.Hyperscript) *vdom.VNode {
			if show, _ := h.VM().Get("show").(bool); show {
				return h.H("div", h.H(child))
			}
			return h.H("div")
		},
	})

	root := New(WithLogger(quietLogger()))
	root.Mount(parent, vdom.Props{"show": true})
	childVM.Set("n", 1)
	if root.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", root.Pending())
	}

	root.Update(vdom.Props{"show": false})
	if root.Pending() != 0 {
		t.Errorf("Pending() = %d after the child unmounted, want 0", root.Pending())
	}
	if n, _ := root.Flush(); n != 0 {
		t.Errorf("Flush() = %d, want 0", n)
	}
}
