package app

import (
	"github.com/footprint-tools/clif/dispatch"
	"github.com/footprint-tools/clif/plugin"
	"github.com/footprint-tools/clif/token"
	"github.com/footprint-tools/clif/usage"
)

const suggestionCount = 3

// Run tokenizes args with the reference tokenizer and executes the resolved
// command. See RunTokens.
func (a *App) Run(args []string) (string, error) {
	return a.RunTokens(token.Split(args))
}

// RunTokens executes one CLI invocation from pre-tokenized input. The
// returned string is content the caller should display; empty means nothing
// to print. RunTokens never exits the process — mapping errors to exit codes
// is the entry point's job.
//
// Pipeline: resolve plugin order, install plugins, resolve the command tree,
// assemble the context, validate arguments, apply extensions, execute through
// the composed command-decorator chain.
func (a *App) RunTokens(tokens []token.Token) (string, error) {
	order, err := plugin.Resolve(a.opts.Plugins)
	if err != nil {
		return "", err
	}

	surface := plugin.NewSurface(a.opts.Commands)
	if _, err := plugin.Install(order, surface); err != nil {
		return "", err
	}

	root := surface.Commands()
	chains := surface.Chains()

	var resolveOpts []dispatch.Option
	if a.opts.EntryFallback {
		resolveOpts = append(resolveOpts, dispatch.WithEntryFallback())
	}

	positionals := token.Positionals(tokens)
	res, err := dispatch.Resolve(positionals, a.opts.Entry, root, resolveOpts...)
	if err != nil {
		return "", err
	}

	if res.Mode == dispatch.CallUnexpected {
		suggestions := dispatch.SimilarCommands(res.CommandName, res.Level, suggestionCount)
		return "", usage.UnknownCommand(a.opts.Name, res.CommandName, suggestions...)
	}

	rest := positionals[res.Depth:]
	ctx := dispatch.NewContext(a.opts.Name, res, rest, tokens, surface.GlobalOptions())

	def, err := res.Command.Definition()
	if err != nil {
		return "", err
	}

	if verr := dispatch.ValidateArgs(a.opts.Name, def.Args, rest); verr != nil {
		renderer := chains.ComposeValidationErrors(a.opts.ValidationErrors)
		return renderer(ctx, verr), verr
	}

	if err := surface.Extensions().Apply(ctx); err != nil {
		return "", err
	}

	base := def.Run
	if base == nil {
		if res.Omitted {
			// A command group with nothing selected shows its own usage.
			header := chains.ComposeHeader(a.opts.Header)
			usageRenderer := chains.ComposeUsage(a.opts.Usage)
			base = func(ctx *dispatch.Context) (string, error) {
				return header(ctx) + "\n\n" + usageRenderer(ctx), nil
			}
		} else {
			base = func(ctx *dispatch.Context) (string, error) { return "", nil }
		}
	}

	return execute(ctx, chains.ComposeCommand(base), a.opts.Hooks)
}
