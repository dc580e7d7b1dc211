package app

import (
	"github.com/footprint-tools/clif/dispatch"
	"github.com/footprint-tools/clif/internal/log"
)

// execute drives the lifecycle of one command invocation:
// before hook, decorated runner, then the after hook on success or the error
// hook on failure. The original runner error is always returned unchanged;
// an error-hook failure is logged, never substituted. Retries are a command
// decorator's business, not the orchestrator's.
func execute(ctx *dispatch.Context, run dispatch.Runner, hooks Hooks) (string, error) {
	if hooks.OnBeforeCommand != nil {
		if err := hooks.OnBeforeCommand(ctx); err != nil {
			return "", err
		}
	}

	out, err := run(ctx)
	if err != nil {
		if hooks.OnErrorCommand != nil {
			if hookErr := hooks.OnErrorCommand(ctx, err); hookErr != nil {
				log.Error("app: error hook failed for invocation %s: %v", ctx.ID, hookErr)
			}
		}
		return "", err
	}

	if hooks.OnAfterCommand != nil {
		if err := hooks.OnAfterCommand(ctx, out); err != nil {
			return out, err
		}
	}

	return out, nil
}
