package casing

import "testing"

func TestLowerCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"label", "label"},
		{"max-length", "maxLength"},
		{"maxLength", "maxLength"},
		{"max_length", "maxLength"},
		{"Max Length", "maxLength"},
		{"on-click", "onClick"},
		{"HTMLParser", "htmlParser"},
		{"item2-value", "item2Value"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := LowerCamel(tt.in); got != tt.want {
				t.Errorf("LowerCamel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEventProp(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{"click", "onClick"},
		{"item-selected", "onItemSelected"},
		{"update:value", "onUpdateValue"},
		{"update:modelValue", "onUpdateModelValue"},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			if got := EventProp(tt.event); got != tt.want {
				t.Errorf("EventProp(%q) = %q, want %q", tt.event, got, tt.want)
			}
		})
	}
}

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"backgroundColor": "background-color",
		"color":           "color",
		"fontSize":        "font-size",
		"":                "",
	}
	for in, want := range tests {
		if got := Kebab(in); got != want {
			t.Errorf("Kebab(%q) = %q, want %q", in, got, want)
		}
	}
}
