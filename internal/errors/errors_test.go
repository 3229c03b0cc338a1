package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"unknown method", "E101", "Unknown method", CategoryRuntime},
		{"not mounted", "E102", "Component not mounted", CategoryHost},
		{"missing class", "E106", "Missing component class", CategoryHost},
		{"config", "E201", "Invalid configuration value", CategoryConfig},
		{"unknown code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "props.yaml")
	if err.Message != `file "props.yaml" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
}

func TestBridgeError_Error(t *testing.T) {
	if got := New("E101").Error(); got != "E101: Unknown method" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&BridgeError{Message: "plain"}).Error(); got != "plain" {
		t.Errorf("Error() = %q", got)
	}
	wrapped := New("E202").Wrap(fmt.Errorf("unexpected EOF"))
	if got := wrapped.Error(); got != "E202: Configuration unreadable: unexpected EOF" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapAndIs(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := fmt.Errorf("loading: %w", New("E202").Wrap(cause))

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if !stderrors.Is(err, New("E202")) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, New("E201")) {
		t.Error("different codes must not match")
	}
	if !HasCode(err, "E202") || HasCode(cause, "E202") {
		t.Error("HasCode mismatch")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E101") != nil {
		t.Error("FromError(nil) should be nil")
	}
	orig := New("E103")
	if FromError(fmt.Errorf("x: %w", orig), "E104") != orig {
		t.Error("existing BridgeError should be returned as-is")
	}
	got := FromError(fmt.Errorf("plain"), "E104")
	if got.Code != "E104" || got.Wrapped == nil {
		t.Errorf("FromError = %+v", got)
	}
}

func TestWithLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "props.yaml")
	content := "title: ok\ncount: [\nother: 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	err := New("E104").WithLocation(path, 2, 0)
	if err.Location.String() != path+":2" {
		t.Errorf("Location = %q", err.Location.String())
	}
	if len(err.Context) != 3 {
		t.Errorf("Context = %v, want 3 lines", err.Context)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E101").
		WithDetailf("no method %q on %q", "reset", "counter").
		WithSuggestion("Check the Methods map")
	out := err.Format()

	for _, want := range []string{
		"ERROR E101: Unknown method",
		`no method "reset" on "counter"`,
		"Hint: Check the Methods map",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("colors should be disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E102").WithDetail("root")
	if got := err.FormatCompact(); got != "E102: Component not mounted (root)" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E201").WithDetail("unmountPolicy").Wrap(fmt.Errorf("bad"))

	var decoded map[string]any
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != "E201" || decoded["category"] != "config" || decoded["cause"] != "bad" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestPrintError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	PrintError(&buf, New("E103"))
	if !strings.Contains(buf.String(), "E103") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	PrintError(&buf, fmt.Errorf("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 30), 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line too long: %q", l)
		}
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should wrap to nil")
	}
}

func TestGetAllCodesSorted(t *testing.T) {
	codes := GetAllCodes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	if _, ok := GetTemplate("E104"); !ok {
		t.Error("E104 should be registered")
	}
}
