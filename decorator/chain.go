// Package decorator maintains the four ordered decorator registries of a CLI
// invocation (header rendering, usage rendering, validation-error rendering,
// command execution) and composes each into a single function.
//
// All four chains share the same observable contract: the first-registered
// decorator is the outermost wrapper, and an empty chain returns the base
// unchanged. Renderer composition and command composition are still kept as
// separate, type-distinct functions; unifying them behind one generic helper
// would make it too easy to flip one chain's ordering without noticing.
package decorator

import "github.com/footprint-tools/clif/dispatch"

// HeaderRenderer produces the header block shown above usage output.
type HeaderRenderer func(ctx *dispatch.Context) string

// UsageRenderer produces the usage/help body.
type UsageRenderer func(ctx *dispatch.Context) string

// ValidationErrorsRenderer produces the user-facing text for a validation
// failure.
type ValidationErrorsRenderer func(ctx *dispatch.Context, err error) string

// HeaderDecorator wraps a header renderer. It may call next zero, one, or
// many times, rewrite its result, or ignore it entirely.
type HeaderDecorator func(next HeaderRenderer) HeaderRenderer

// UsageDecorator wraps a usage renderer.
type UsageDecorator func(next UsageRenderer) UsageRenderer

// ValidationErrorsDecorator wraps a validation-errors renderer.
type ValidationErrorsDecorator func(next ValidationErrorsRenderer) ValidationErrorsRenderer

// CommandDecorator wraps a command runner, typically to short-circuit before
// the real command runs.
type CommandDecorator func(next dispatch.Runner) dispatch.Runner

// Chains holds the four registries. Registration appends; order is
// significant and preserved.
type Chains struct {
	header     []HeaderDecorator
	usage      []UsageDecorator
	validation []ValidationErrorsDecorator
	command    []CommandDecorator
}

// NewChains creates empty registries.
func NewChains() *Chains {
	return &Chains{}
}

// Header appends a header-renderer decorator.
func (c *Chains) Header(d HeaderDecorator) { c.header = append(c.header, d) }

// Usage appends a usage-renderer decorator.
func (c *Chains) Usage(d UsageDecorator) { c.usage = append(c.usage, d) }

// ValidationErrors appends a validation-errors-renderer decorator.
func (c *Chains) ValidationErrors(d ValidationErrorsDecorator) {
	c.validation = append(c.validation, d)
}

// Command appends a command decorator.
func (c *Chains) Command(d CommandDecorator) { c.command = append(c.command, d) }

// Clone returns an independent copy of the registries. Used to hand execution
// a snapshot that later registrations cannot affect.
func (c *Chains) Clone() *Chains {
	out := &Chains{
		header:     make([]HeaderDecorator, len(c.header)),
		usage:      make([]UsageDecorator, len(c.usage)),
		validation: make([]ValidationErrorsDecorator, len(c.validation)),
		command:    make([]CommandDecorator, len(c.command)),
	}
	copy(out.header, c.header)
	copy(out.usage, c.usage)
	copy(out.validation, c.validation)
	copy(out.command, c.command)
	return out
}

// ComposeHeader builds the composed header renderer around base. For
// decorators [d1, d2, d3] the result is d1(d2(d3(base))).
func (c *Chains) ComposeHeader(base HeaderRenderer) HeaderRenderer {
	composed := base
	for i := len(c.header) - 1; i >= 0; i-- {
		composed = c.header[i](composed)
	}
	return composed
}

// ComposeUsage builds the composed usage renderer around base.
func (c *Chains) ComposeUsage(base UsageRenderer) UsageRenderer {
	composed := base
	for i := len(c.usage) - 1; i >= 0; i-- {
		composed = c.usage[i](composed)
	}
	return composed
}

// ComposeValidationErrors builds the composed validation-errors renderer
// around base.
func (c *Chains) ComposeValidationErrors(base ValidationErrorsRenderer) ValidationErrorsRenderer {
	composed := base
	for i := len(c.validation) - 1; i >= 0; i-- {
		composed = c.validation[i](composed)
	}
	return composed
}

// ComposeCommand builds the decorated runner around base as a right fold:
// the last-registered decorator wraps base first and ends up innermost, so
// the first-registered decorator sees the call before any other.
// A decorator that returns an error without calling next short-circuits the
// whole pipeline.
func (c *Chains) ComposeCommand(base dispatch.Runner) dispatch.Runner {
	return foldCommand(c.command, base)
}

func foldCommand(decorators []CommandDecorator, base dispatch.Runner) dispatch.Runner {
	if len(decorators) == 0 {
		return base
	}
	return decorators[0](foldCommand(decorators[1:], base))
}
