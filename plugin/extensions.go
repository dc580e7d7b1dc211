package plugin

import "github.com/footprint-tools/clif/dispatch"

type extensionEntry struct {
	id      string
	factory ExtensionFactory
	onExt   func(ctx *dispatch.Context) error
}

// Extensions maps plugin ids to their context-extension factories, in
// registration order. Duplicate registration is non-fatal: the first
// registration wins and the duplicate is reported to the caller.
type Extensions struct {
	entries []extensionEntry
	index   map[string]bool
}

// NewExtensions creates an empty registry.
func NewExtensions() *Extensions {
	return &Extensions{index: make(map[string]bool)}
}

// Register records a plugin's extension factory. It returns false when the
// id is already registered, in which case the existing entry is kept.
func (e *Extensions) Register(id string, factory ExtensionFactory, onExt func(ctx *dispatch.Context) error) bool {
	if e.index[id] {
		return false
	}
	e.index[id] = true
	e.entries = append(e.entries, extensionEntry{id: id, factory: factory, onExt: onExt})
	return true
}

// Len returns the number of registered extensions.
func (e *Extensions) Len() int { return len(e.entries) }

// Apply invokes each factory in registration order, merges the produced
// values into the context, and then runs the post-extension hooks. A factory
// or hook error aborts and is returned to the caller.
func (e *Extensions) Apply(ctx *dispatch.Context) error {
	for _, entry := range e.entries {
		if entry.factory == nil {
			continue
		}
		value, err := entry.factory(ctx)
		if err != nil {
			return err
		}
		ctx.AddExtension(entry.id, value)
	}
	for _, entry := range e.entries {
		if entry.onExt == nil {
			continue
		}
		if err := entry.onExt(ctx); err != nil {
			return err
		}
	}
	return nil
}
