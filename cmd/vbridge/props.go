package main

import (
	stderrors "errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vbridge/internal/errors"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// parseValue decodes a command-line or query value as a YAML scalar, so
// "3" is an int, "true" a bool and "[a, b]" a list. Anything that does not
// decode stays a string.
func parseValue(raw string) any {
	if raw == "" {
		return ""
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	return v
}

// parseAssignments turns name=value pairs into props.
func parseAssignments(sets []string) (vdom.Props, error) {
	props := vdom.Props{}
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.New("E105").
				WithDetailf("%q is not of the form name=value", s).
				WithSuggestion("Quote values with spaces: --set 'title=Hello world'")
		}
		props[name] = parseValue(raw)
	}
	return props, nil
}

// loadPropsFile reads a YAML (or JSON) mapping of props.
func loadPropsFile(path string) (vdom.Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E104").Wrap(err).WithDetailf("cannot read %s", path)
	}

	var props map[string]any
	if err := yaml.Unmarshal(data, &props); err != nil {
		be := errors.New("E104").Wrap(err)
		var te *yaml.TypeError
		if stderrors.As(err, &te) {
			return nil, be.WithDetailf("%s is not a mapping of prop names to values", path)
		}
		return nil, be.WithDetailf("%s is not valid YAML", path)
	}
	return vdom.Props(props), nil
}

// mergeProps overlays later sources onto earlier ones.
func mergeProps(sources ...vdom.Props) vdom.Props {
	out := vdom.Props{}
	for _, src := range sources {
		for k, v := range src {
			out[k] = v
		}
	}
	return out
}
