// Package picker is a built-in plugin that replaces the static "available
// commands" listing with an interactive chooser when a command group is
// invoked without selecting a child and the session is a terminal.
package picker

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/clif/dispatch"
	"github.com/footprint-tools/clif/plugin"
)

// ID is the plugin id.
const ID = "picker"

// New creates the picker plugin.
func New() *plugin.Plugin {
	return &plugin.Plugin{
		ID: ID,
		Setup: func(s *plugin.Surface) error {
			return s.DecorateCommand(func(next dispatch.Runner) dispatch.Runner {
				return func(ctx *dispatch.Context) (string, error) {
					if !shouldPick(ctx) {
						return next(ctx)
					}

					choice, err := pick(ctx)
					if err != nil {
						// Fall back to the regular listing rather than
						// failing the invocation.
						return next(ctx)
					}
					if choice == "" {
						return next(ctx)
					}

					path := append(append([]string{ctx.App}, ctx.Resolution.Path...), choice)
					return fmt.Sprintf("Run '%s' to execute this command.", strings.Join(path, " ")), nil
				}
			})
		},
	}
}

func shouldPick(ctx *dispatch.Context) bool {
	if !ctx.Resolution.Omitted || ctx.Resolution.Level.Len() == 0 {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
