package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)
	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
}

func TestElementKey(t *testing.T) {
	node := Element("li", Props{"key": 7})
	if node.Key != "7" {
		t.Errorf("Key = %q, want 7", node.Key)
	}
	if node.Props == nil {
		t.Error("Props should never be nil")
	}
}

func TestToChildren(t *testing.T) {
	a := Element("a", nil)
	b := Element("b", nil)

	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"nil", nil, 0},
		{"single node", a, 1},
		{"nil node", (*VNode)(nil), 0},
		{"node slice", []*VNode{a, nil, b}, 2},
		{"string", "hi", 1},
		{"strings", []string{"x", "y"}, 2},
		{"nested any", []any{a, []any{b, "t"}, nil}, 3},
		{"bool dropped", false, 0},
		{"number", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToChildren(tt.input)
			if got == nil {
				t.Fatal("ToChildren returned nil slice")
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}

	t.Run("order preserved", func(t *testing.T) {
		got := ToChildren([]any{a, b})
		if got[0] != a || got[1] != b {
			t.Error("order not preserved")
		}
	})
}

func TestWalk(t *testing.T) {
	tree := Element("div", nil,
		Element("span", nil, "one"),
		Element("p", nil, Element("em", nil)),
	)

	var tags []string
	Walk(tree, func(n *VNode) bool {
		if n.Kind == KindElement {
			tags = append(tags, n.Tag)
		}
		return n.Tag != "p"
	})

	want := []string{"div", "span", "p"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %s, want %s", i, tags[i], want[i])
		}
	}
}
