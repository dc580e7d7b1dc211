// Package app ties the framework together: it installs plugins in dependency
// order, resolves the command tree, assembles the execution context, and runs
// the resolved command through the composed decorator chains.
package app

import (
	"errors"

	"github.com/footprint-tools/clif/decorator"
	"github.com/footprint-tools/clif/dispatch"
	"github.com/footprint-tools/clif/plugin"
	"github.com/footprint-tools/clif/render"
)

// Hooks are the caller-supplied lifecycle callbacks around command execution.
// Each is optional.
type Hooks struct {
	// OnBeforeCommand runs after context assembly, before the decorated
	// runner. An error aborts execution.
	OnBeforeCommand func(ctx *dispatch.Context) error

	// OnAfterCommand runs after a successful execution with the runner's
	// output.
	OnAfterCommand func(ctx *dispatch.Context, result string) error

	// OnErrorCommand runs when the decorated runner fails. Its own error is
	// logged and swallowed so it never masks the original failure.
	OnErrorCommand func(ctx *dispatch.Context, err error) error
}

// Options configures an App.
type Options struct {
	// Name is the binary name used in usage output and error messages.
	Name string

	Description string

	// Entry is the command executed when no sub-command is named. When nil,
	// a bodiless entry is synthesized so the app falls back to usage output.
	Entry *dispatch.Command

	// Commands seeds the root sub-command map before plugins install theirs.
	Commands *dispatch.SubCommands

	Plugins []*plugin.Plugin

	// EntryFallback makes an unrecognized top-level token resolve to the
	// entry command instead of failing with "command not found".
	EntryFallback bool

	Hooks Hooks

	// Base renderers. Zero values get the render package defaults.
	Header           decorator.HeaderRenderer
	Usage            decorator.UsageRenderer
	ValidationErrors decorator.ValidationErrorsRenderer
}

// App is a configured CLI application. It holds only immutable configuration;
// every Run constructs its own registries and decorator chains from scratch,
// so concurrent invocations do not share state.
type App struct {
	opts Options
}

// New validates opts and creates an App.
func New(opts Options) (*App, error) {
	if opts.Name == "" {
		return nil, errors.New("app: Name is required")
	}
	if opts.Entry == nil {
		opts.Entry = &dispatch.Command{Name: opts.Name, Entry: true}
	}
	if opts.Header == nil {
		opts.Header = render.Header(opts.Name, opts.Description)
	}
	if opts.Usage == nil {
		opts.Usage = render.Usage(opts.Name)
	}
	if opts.ValidationErrors == nil {
		opts.ValidationErrors = render.ValidationErrors(opts.Name)
	}
	return &App{opts: opts}, nil
}

// Name returns the configured application name.
func (a *App) Name() string { return a.opts.Name }
