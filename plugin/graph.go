package plugin

// visit states for the depth-first sort.
const (
	stateUnvisited = iota
	stateInProgress
	stateDone
)

// Resolve orders plugins so that each loads after all of its required
// dependencies. The sort is depth-first and stable: plugins with no
// unresolved dependencies keep their input order, so the result is
// deterministic across runs.
//
// A required dependency missing from the candidate set yields
// *MissingDependencyError; a dependency cycle yields *CycleError naming the
// full cycle path. Both are returned before any plugin's setup executes.
func Resolve(plugins []*Plugin) ([]*Plugin, error) {
	byID := make(map[string]*Plugin, len(plugins))
	for _, p := range plugins {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}

	var (
		order []*Plugin
		state = make(map[string]int, len(plugins))
		stack []string
	)

	var visit func(p *Plugin) error
	visit = func(p *Plugin) error {
		switch state[p.ID] {
		case stateDone:
			return nil
		case stateInProgress:
			return &CycleError{Cycle: cyclePath(stack, p.ID)}
		}

		state[p.ID] = stateInProgress
		stack = append(stack, p.ID)

		for _, dep := range p.Dependencies {
			target, ok := byID[dep.ID]
			if !ok {
				if dep.Optional {
					continue
				}
				return &MissingDependencyError{Plugin: p.ID, Dependency: dep.ID}
			}
			if err := visit(target); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		state[p.ID] = stateDone
		order = append(order, p)
		return nil
	}

	for _, p := range plugins {
		if err := visit(p); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// cyclePath extracts the cycle from the DFS stack, starting at the repeated
// id and closing the loop with it, e.g. [a b a].
func cyclePath(stack []string, repeated string) []string {
	start := 0
	for i, id := range stack {
		if id == repeated {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(stack)-start+1)
	cycle = append(cycle, stack[start:]...)
	cycle = append(cycle, repeated)
	return cycle
}
