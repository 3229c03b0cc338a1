package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime (E101-E119)

	"E101": {
		Category: CategoryRuntime,
		Message:  "Unknown method",
		Detail:   "The component has no method with this name after mixins and constructor args were applied.",
	},
	"E102": {
		Category: CategoryHost,
		Message:  "Component not mounted",
		Detail:   "The operation needs a mounted root. Call Mount first, and do not reuse a root after Unmount.",
	},
	"E103": {
		Category: CategoryCLI,
		Message:  "Unknown component",
		Detail:   "No showcase component is registered under this name.",
	},
	"E104": {
		Category: CategoryCLI,
		Message:  "Invalid props file",
		Detail:   "The props file must be a YAML or JSON mapping of prop names to values.",
	},
	"E105": {
		Category: CategoryCLI,
		Message:  "Invalid prop assignment",
		Detail:   "Props set on the command line use the form name=value.",
	},
	"E106": {
		Category: CategoryHost,
		Message:  "Missing component class",
		Detail:   "Mount needs a class produced by bridge.Generate.",
	},

	// Configuration (E201-E219)

	"E201": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A value in vbridge.json is out of range or not one of the accepted options.",
	},
	"E202": {
		Category: CategoryConfig,
		Message:  "Configuration unreadable",
		Detail:   "vbridge.json exists but could not be read or parsed as JSON.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
