package plugin

import (
	"fmt"
	"strings"
)

// CycleError indicates the dependency graph contains a cycle. The Cycle
// slice holds the full path, first node repeated at the end, so the message
// reads "a -> b -> a".
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular plugin dependency detected: %s", strings.Join(e.Cycle, " -> "))
}

// MissingDependencyError indicates a required dependency is absent from the
// candidate plugin set.
type MissingDependencyError struct {
	Plugin     string
	Dependency string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("plugin %q requires plugin %q, which is not installed", e.Plugin, e.Dependency)
}

// ConfigError is a fatal misconfiguration surfaced during installation, such
// as a duplicate global option. Unlike ordinary setup failures it aborts the
// whole invocation: continuing would leave the registries inconsistent.
type ConfigError struct {
	Plugin string
	Msg    string
}

func (e *ConfigError) Error() string {
	if e.Plugin != "" {
		return fmt.Sprintf("plugin %q: %s", e.Plugin, e.Msg)
	}
	return e.Msg
}
