package dispatch

// CallMode classifies how a command was reached.
type CallMode int

const (
	// CallEntry means the entry command runs because no sub-command was named.
	CallEntry CallMode = iota
	// CallSubCommand means a registered sub-command matched.
	CallSubCommand
	// CallUnexpected means the first positional token matched nothing.
	CallUnexpected
)

func (m CallMode) String() string {
	switch m {
	case CallEntry:
		return "entry"
	case CallSubCommand:
		return "subCommand"
	case CallUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of matching positional tokens against the
// command tree. It is produced fresh per invocation and owns no state.
type Resolution struct {
	// CommandName is the resolved name, or the unmatched token when the
	// mode is CallUnexpected.
	CommandName string

	// Command is the resolved node; nil when the mode is CallUnexpected.
	Command *Resolved

	Mode CallMode

	// Path lists the matched names from root to the resolved node.
	Path []string

	// Depth counts the positional tokens consumed as command-path segments.
	// The caller strips that many leading positionals before argument parsing.
	Depth int

	// Omitted is true when the resolved command exposes sub-commands but no
	// token selected one.
	Omitted bool

	// Level holds the commands selectable at the resolved depth: the
	// resolved command's children plus an entry alias of itself when
	// Omitted, otherwise its siblings. Used for "available commands" output.
	Level *SubCommands
}

type resolveConfig struct {
	entryFallback bool
}

// Option configures resolution behavior.
type Option func(*resolveConfig)

// WithEntryFallback makes an unmatched top-level token resolve to the entry
// command instead of reporting CallUnexpected.
func WithEntryFallback() Option {
	return func(c *resolveConfig) { c.entryFallback = true }
}

// Resolve walks positional tokens left to right against the sub-command tree
// rooted at root and returns the most specific match. Lazy commands are
// loaded only when their nested sub-commands must be inspected; a loader
// failure aborts resolution.
//
// "Command not found" is not an error here: it comes back as a Resolution
// with Mode CallUnexpected, and the caller decides how to surface it.
func Resolve(positionals []string, entry *Command, root *SubCommands, opts ...Option) (Resolution, error) {
	var cfg resolveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(positionals) == 0 || root.Len() == 0 {
		return entryResolution(entry, root), nil
	}

	var (
		node  *Resolved
		level = root
		path  []string
	)

	for i, tok := range positionals {
		child, ok := level.Get(tok)
		if !ok {
			if node == nil {
				// Nothing matched at the top level.
				if cfg.entryFallback {
					return entryResolution(entry, root), nil
				}
				return Resolution{
					CommandName: tok,
					Mode:        CallUnexpected,
					Level:       root.Copy(),
				}, nil
			}
			// Deeper levels: the remaining tokens are the resolved
			// command's own arguments, not path segments.
			break
		}

		node = newResolved(tok, child)
		path = append(path, node.Name)

		if i == len(positionals)-1 {
			break
		}

		// Another token follows; inspect nested sub-commands, loading a
		// lazy command's metadata if that is the only way to see them.
		subs, err := node.subsForDescent()
		if err != nil {
			return Resolution{}, err
		}
		if subs.Len() == 0 {
			// Leaf reached; the rest are the command's own arguments.
			break
		}
		level = subs
	}

	res := Resolution{
		CommandName: node.Name,
		Command:     node,
		Mode:        CallSubCommand,
		Path:        path,
		Depth:       len(path),
	}

	if nested := node.knownSubs(); nested.Len() > 0 {
		res.Omitted = true
		res.Level = withEntryAlias(nested, node)
	} else {
		res.Level = level.Copy()
	}
	return res, nil
}

// entryResolution resolves directly to the entry command. Omitted is true
// only when sub-commands exist but none was named.
func entryResolution(entry *Command, root *SubCommands) Resolution {
	node := newResolved(entry.Name, entry)
	res := Resolution{
		CommandName: node.Name,
		Command:     node,
		Mode:        CallEntry,
		Level:       root.Copy(),
	}
	if root.Len() > 0 {
		res.Omitted = true
		res.Level = withEntryAlias(root, node)
	}
	return res
}

// withEntryAlias copies the level map and appends an entry copy of the
// resolved command so it can be both executed directly and listed as a
// selectable child.
func withEntryAlias(level *SubCommands, node *Resolved) *SubCommands {
	out := level.Copy()
	if node.Name != "" {
		out.Add(node.Name, node.entryAlias())
	}
	return out
}
