// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/apidoc/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/apidoc") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateDir returns hints for an override path that is not a directory.
func ForTemplateDir() string {
	return format("--template-dir expects a directory holding files named like the built-in templates (see: apidoc themes)")
}

// ForUnknownTheme lists the built-in themes.
func ForUnknownTheme(available []string) string {
	return listing("available themes", available)
}

// ForModuleNotFound lists the registered modules, preferring those that
// share the first segment of module.
func ForModuleNotFound(module string, modules []string) string {
	root, _, _ := strings.Cut(module, ".")
	var close []string
	for _, m := range modules {
		if m == root || strings.HasPrefix(m, root+".") {
			close = append(close, m)
		}
	}
	if len(close) == 0 {
		close = modules
	}
	hint := "register custom classes with apidoc.Register in an init function"
	if len(close) > 0 {
		hint = "registered modules: " + strings.Join(close, ", ") + "; " + hint
	}
	return format(hint)
}

// ForAttributeNotFound lists the names registered in module.
func ForAttributeNotFound(module string, names []string) string {
	return listing("names registered in "+module, names)
}

// ForNotAClass explains what can be loaded by dotted name.
func ForNotAClass() string {
	return format("register an apidoc.Class with a New constructor under this name")
}

// ForWrongBaseType names the interface the constructed value must implement.
func ForWrongBaseType(iface string) string {
	return format("the constructor must return a value implementing " + iface)
}

// listing formats "label: a, b, c", or nothing when the list is empty.
func listing(label string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format(label + ": " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
