package postprocess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vango-dev/vbridge/internal/casing"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Carrier is the lifecycle owner the commit ref reports to.
type Carrier interface {
	// SetElement records the committed handle.
	SetElement(handle any)

	// FlushPending drains the pending-callback queue.
	FlushPending()

	// ClearPendingState resets the unrendered-changes flag.
	ClearPendingState()

	// InstanceID returns the instance's id field, if set.
	InstanceID() (string, bool)
}

// ApplyOverrides returns a shallow copy of node with the logical tag stamped,
// a commit ref installed, additionalClassName and additionalStyles merged and
// the instance id applied. The ephemeral props themselves are left in place;
// StripEphemeral removes them.
//
// The commit ref first calls any ref the node already had (a refTemp prop,
// then node.Ref), then records the handle, drains the pending callbacks and
// clears the pending-state flag.
func ApplyOverrides(node *vdom.VNode, tag string, carrier Carrier) *vdom.VNode {
	if node == nil {
		return nil
	}

	out := node.ShallowCopy()
	if out.Props == nil {
		out.Props = vdom.Props{}
	}
	out.LogicalTag = tag

	tempRef, _ := node.Props[vdom.RefTempProp].(func(any))
	nodeRef := node.Ref
	out.Ref = func(handle any) {
		if tempRef != nil {
			tempRef(handle)
		}
		if nodeRef != nil {
			nodeRef(handle)
		}
		carrier.SetElement(handle)
		carrier.FlushPending()
		carrier.ClearPendingState()
	}

	if extra, ok := out.Props[vdom.AdditionalClassNameProp]; ok && extra != nil {
		out.Props[vdom.ClassNameProp] = MergeClassNames(out.Props.String(vdom.ClassNameProp), toString(extra))
	}

	if extra, ok := out.Props[vdom.AdditionalStylesProp]; ok && extra != nil {
		out.Props[vdom.StyleProp] = MergeStyles(out.Props[vdom.StyleProp], extra)
	}

	if id, ok := carrier.InstanceID(); ok {
		out.Props[vdom.IDProp] = id
	}

	return out
}

// MergeClassNames joins the non-empty class lists with single spaces.
func MergeClassNames(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// MergeStyles shallow-merges style values; later entries win. Maps and
// "prop: value" strings are accepted. The result is always a fresh map.
func MergeStyles(styles ...any) map[string]any {
	out := make(map[string]any)
	for _, s := range styles {
		for k, v := range styleMap(s) {
			out[k] = v
		}
	}
	return out
}

func styleMap(s any) map[string]any {
	switch v := s.(type) {
	case nil:
		return nil
	case map[string]any:
		return v
	case vdom.Props:
		return v
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case string:
		return parseStyle(v)
	}
	return nil
}

// parseStyle turns "font-size: 12px; color: red" into {fontSize: 12px, color: red}.
func parseStyle(css string) map[string]any {
	out := make(map[string]any)
	for _, decl := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out[casing.LowerCamel(name)] = strings.TrimSpace(value)
	}
	return out
}

// StyleString renders a style value as CSS declarations in sorted order.
func StyleString(style any) string {
	m := styleMap(style)
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(casing.Kebab(k))
		b.WriteString(": ")
		b.WriteString(toString(m[k]))
		b.WriteString(";")
	}
	return b.String()
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case []string:
		return strings.Join(s, " ")
	}
	return fmt.Sprint(v)
}
