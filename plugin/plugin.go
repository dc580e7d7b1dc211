// Package plugin implements dependency-ordered plugin installation: resolving
// an unordered set of plugin descriptors into a load order, running each
// plugin's setup against a shared registration surface, and collecting the
// context extensions plugins contribute to command execution.
package plugin

import "github.com/footprint-tools/clif/dispatch"

// Dependency names another plugin that must install first. Optional
// dependencies are skipped silently when absent; required ones are fatal.
type Dependency struct {
	ID       string
	Optional bool
}

// ExtensionFactory produces the value merged into the command context under
// the owning plugin's id. It runs once per command execution, after argument
// values are resolved and before the command's run function.
type ExtensionFactory func(ctx *dispatch.Context) (any, error)

// Plugin describes an installable plugin. Descriptors are constructed once by
// the caller and treated as immutable by the resolver and installer.
type Plugin struct {
	// ID uniquely identifies the plugin among the candidates of one
	// invocation.
	ID string

	Dependencies []Dependency

	// Setup registers the plugin's global options, sub-commands, and
	// decorators. A returned error is logged and skips only this plugin,
	// except *ConfigError which aborts the whole installation.
	Setup func(s *Surface) error

	// Extension, when non-nil, contributes a named context extension.
	Extension ExtensionFactory

	// OnExtension, when non-nil, runs after all extensions are merged into
	// the context.
	OnExtension func(ctx *dispatch.Context) error
}
