// Package dispatch resolves positional tokens against a tree of command
// definitions. It decides which command receives which arguments and reports
// the outcome as data; it never prints, never exits, and never mutates the
// caller's command definitions.
package dispatch

// Runner executes a command against its assembled context. The returned
// string is content the caller should display; empty means nothing to print.
type Runner func(ctx *Context) (string, error)

// Loader produces the full definition of a lazily declared command.
// It is called at most once per resolution, when the command body or its
// nested sub-commands are actually needed.
type Loader func() (*Command, error)

// ArgSpec describes one positional argument of a command.
type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

// OptionSpec describes a global option registered by a plugin. The framework
// only tracks the registration; parsing option values is the tokenizer's
// concern.
type OptionSpec struct {
	Name        string
	ValueHint   string
	Description string
}

// Command is a node in the command tree. A command with a non-nil Load is
// lazy: its metadata fields may be partially filled upfront and Load yields
// the complete definition on demand.
type Command struct {
	Name        string
	Description string
	Usage       string
	Args        []ArgSpec
	Run         Runner
	SubCommands *SubCommands
	Load        Loader

	// Entry marks the command executed when no sub-command name is present.
	Entry bool
}

// Lazy reports whether the command body must be loaded before running.
func (c *Command) Lazy() bool {
	return c != nil && c.Load != nil
}

// Resolved pairs a matched command with its resolved identity. The name comes
// from the command's own metadata when present, otherwise from the map key
// that selected it; once assigned it is never overwritten. The caller's
// Command is never mutated.
type Resolved struct {
	Name    string
	Command *Command

	loaded *Command
}

func newResolved(key string, cmd *Command) *Resolved {
	name := cmd.Name
	if name == "" {
		name = key
	}
	return &Resolved{Name: name, Command: cmd}
}

// Definition returns the concrete command definition, invoking the loader on
// first use for lazy commands. The result is memoized.
func (r *Resolved) Definition() (*Command, error) {
	if !r.Command.Lazy() {
		return r.Command, nil
	}
	if r.loaded == nil {
		loaded, err := r.Command.Load()
		if err != nil {
			return nil, err
		}
		r.loaded = loaded
	}
	return r.loaded, nil
}

// Runner returns the command's run function, loading the body if lazy.
// A nil return means the command has no body of its own.
func (r *Resolved) Runner() (Runner, error) {
	def, err := r.Definition()
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, nil
	}
	return def.Run, nil
}

// knownSubs returns the command's nested sub-commands without forcing a load:
// the declared metadata, or the loaded definition's map when the loader has
// already run.
func (r *Resolved) knownSubs() *SubCommands {
	if r.Command.SubCommands != nil {
		return r.Command.SubCommands
	}
	if r.loaded != nil {
		return r.loaded.SubCommands
	}
	return nil
}

// subsForDescent returns the nested sub-command map, loading a lazy command's
// definition when its metadata does not declare one.
func (r *Resolved) subsForDescent() (*SubCommands, error) {
	if r.Command.SubCommands != nil {
		return r.Command.SubCommands, nil
	}
	if r.Command.Lazy() {
		def, err := r.Definition()
		if err != nil {
			return nil, err
		}
		return def.SubCommands, nil
	}
	return nil, nil
}

// entryAlias returns a shallow copy of the resolved command marked as an
// entry, so the command can be listed alongside its own children.
func (r *Resolved) entryAlias() *Command {
	def := r.Command
	if r.loaded != nil {
		def = r.loaded
	}
	alias := *def
	alias.Name = r.Name
	alias.Entry = true
	return &alias
}
