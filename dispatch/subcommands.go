package dispatch

// SubCommands is an insertion-ordered mapping from command name to command.
// Insertion order defines help-listing order; it has no effect on resolution.
// The zero value is not usable; call NewSubCommands.
type SubCommands struct {
	names []string
	nodes map[string]*Command
}

// NewSubCommands creates an empty ordered sub-command map.
func NewSubCommands() *SubCommands {
	return &SubCommands{nodes: make(map[string]*Command)}
}

// Add registers cmd under name. Re-adding an existing name replaces the
// command but keeps its original position in the listing order.
func (s *SubCommands) Add(name string, cmd *Command) {
	if _, ok := s.nodes[name]; !ok {
		s.names = append(s.names, name)
	}
	s.nodes[name] = cmd
}

// Get returns the command registered under name.
func (s *SubCommands) Get(name string) (*Command, bool) {
	if s == nil {
		return nil, false
	}
	cmd, ok := s.nodes[name]
	return cmd, ok
}

// Has reports whether name is registered.
func (s *SubCommands) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Len returns the number of registered commands.
func (s *SubCommands) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the registered names in insertion order.
func (s *SubCommands) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
func (s *SubCommands) Range(fn func(name string, cmd *Command) bool) {
	if s == nil {
		return
	}
	for _, name := range s.names {
		if !fn(name, s.nodes[name]) {
			return
		}
	}
}

// Copy returns a new map with the same entries in the same order.
func (s *SubCommands) Copy() *SubCommands {
	out := NewSubCommands()
	if s == nil {
		return out
	}
	for _, name := range s.names {
		out.Add(name, s.nodes[name])
	}
	return out
}
