package showcase

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vbridge/pkg/bridge"
	"github.com/vango-dev/vbridge/pkg/component"
	"github.com/vango-dev/vbridge/pkg/slots"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

func newLabel(opts []bridge.Option) *bridge.Class {
	return bridge.Generate(&component.Definition{
		Name:  "Label",
		Props: map[string]component.Prop{"text": {Default: "hi"}},
		Render: func(h component.Hyperscript) *vdom.VNode {
			return h.H("span", vdom.Props{"staticClass": "label"}, h.Text(h.VM().Get("text")))
		},
	}, opts...)
}

func newCounter(opts []bridge.Option) *bridge.Class {
	return bridge.Generate(&component.Definition{
		Name: "Counter",
		Props: map[string]component.Prop{
			"start": {Default: 0},
			"step":  {Default: 1},
		},
		Data: func() map[string]any {
			return map[string]any{"count": 0, "changes": 0}
		},
		Computed: []component.Computed{{
			Name: "parity",
			Get: func(vm *component.Instance) any {
				if vm.Int("count")%2 == 0 {
					return "even"
				}
				return "odd"
			},
		}},
		Watch: []component.Watcher{{
			Prop: "start",
			Handler: func(vm *component.Instance, v any) {
				vm.Set("count", vm.Int("start"))
				vm.Set("changes", vm.Int("changes")+1)
			},
		}},
		Methods: map[string]component.Method{
			"increment": func(vm *component.Instance, args ...any) any {
				vm.Set("count", vm.Int("count")+vm.Int("step"))
				vm.Emit("change", vm.Int("count"))
				return vm.Int("count")
			},
			"reset": func(vm *component.Instance, args ...any) any {
				vm.Set("count", vm.Int("start"))
				return nil
			},
		},
		Created: func(vm *component.Instance) {
			vm.Set("count", vm.Int("start"))
		},
		Render: func(h component.Hyperscript) *vdom.VNode {
			vm := h.VM()
			return h.H("div", vdom.Props{"class": []string{"counter", vm.String("parity")}},
				h.H("output", h.Text(vm.Get("count"))),
				h.H("button", vdom.Props{
					"attrs": map[string]any{"type": "button"},
					"on":    map[string]any{"click": func() { vm.Call("increment") }},
				}, "+"),
			)
		},
	}, opts...)
}

func newCard(opts []bridge.Option) *bridge.Class {
	return bridge.Generate(&component.Definition{
		Name: "Card",
		Render: func(h component.Hyperscript) *vdom.VNode {
			footer := h.Slot("footer")
			var foot *vdom.VNode
			if len(footer) > 0 {
				foot = h.H("footer", footer)
			}
			return h.H("section", vdom.Props{"class": "card"},
				h.H("header", h.Slot("header", vdom.Text("Untitled"))),
				h.H("div", vdom.Props{"class": "card-body"}, h.Slot(slots.Default)),
				foot,
			)
		},
	}, append([]bridge.Option{bridge.WithSlots(slots.Mapping{
		"header": "headerContent",
		"footer": "footerContent",
	})}, opts...)...)
}

func newTodoItem(opts []bridge.Option) *bridge.Class {
	return bridge.Generate(&component.Definition{
		Name: "TodoItem",
		Props: map[string]component.Prop{
			"title": {},
			"done":  {Default: false},
		},
		Methods: map[string]component.Method{
			"toggle": func(vm *component.Instance, args ...any) any {
				return vm.Emit("toggle", vm.Get("itemId"), !vm.Bool("done"))
			},
		},
		Render: func(h component.Hyperscript) *vdom.VNode {
			vm := h.VM()
			return h.H("li", vdom.Props{
				"class": map[string]bool{"todo": true, "done": vm.Bool("done")},
				"on":    map[string]any{"click": func() { vm.Call("toggle") }},
			},
				h.H("input", vdom.Props{"attrs": map[string]any{"type": "checkbox", "checked": vm.Bool("done")}}),
				h.Text(vm.Get("title")),
			)
		},
	}, opts...)
}

func newTodoList(opts []bridge.Option) *bridge.Class {
	return bridge.Generate(&component.Definition{
		Name:  "TodoList",
		Props: map[string]component.Prop{"items": {}},
		Computed: []component.Computed{{
			Name: "remaining",
			Get: func(vm *component.Instance) any {
				n := 0
				for _, it := range todoItems(vm.Get("items")) {
					if !it.Done {
						n++
					}
				}
				return n
			},
		}},
		Render: func(h component.Hyperscript) *vdom.VNode {
			vm := h.VM()
			items := todoItems(vm.Get("items"))
			rows := make([]any, 0, len(items))
			for _, it := range items {
				rows = append(rows, h.H("todo-item", vdom.Props{
					"key":   it.ID,
					"props": map[string]any{"title": it.Title, "done": it.Done, "itemId": it.ID},
				}))
			}
			if len(rows) == 0 {
				rows = append(rows, h.H("li", vdom.Props{"class": "empty"}, "Nothing to do"))
			}
			return h.H("div", vdom.Props{"class": "todo-list"},
				h.H("ul", rows),
				h.H("p", vdom.Props{"class": "summary"}, fmt.Sprintf("%d remaining", vm.Int("remaining"))),
			)
		},
	}, opts...)
}

// todoItem is one entry of the todo-list items prop.
type todoItem struct {
	ID    string `prop:"id"`
	Title string `prop:"title"`
	Done  bool   `prop:"done"`
}

func todoItems(v any) []todoItem {
	raw, _ := v.([]any)
	out := make([]todoItem, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		var it todoItem
		if err := component.DecodeProps(m, &it); err != nil {
			continue
		}
		out = append(out, it)
	}
	return out
}

func newPage(opts []bridge.Option) *bridge.Class {
	return bridge.Generate(&component.Definition{
		Name:  "Page",
		Props: map[string]component.Prop{"heading": {Default: "vbridge"}},
		Computed: []component.Computed{{
			Name: "slug",
			Get: func(vm *component.Instance) any {
				return strings.ToLower(strings.ReplaceAll(vm.String("heading"), " ", "-"))
			},
		}},
		Render: func(h component.Hyperscript) *vdom.VNode {
			vm := h.VM()
			return h.H("main", vdom.Props{"attrs": map[string]any{"data-page": vm.String("slug")}},
				h.H("card", vdom.Props{
					"props": map[string]any{"headerContent": h.H("h1", h.Text(vm.Get("heading")))},
				},
					h.H("label", vdom.Props{"props": map[string]any{
						"text":                "Composed from the registry",
						"additionalClassName": "lead",
						"additionalStyles":    "font-weight: bold",
					}}),
				),
			)
		},
	}, opts...)
}
