// Package history is a built-in plugin that records every command invocation
// to a local SQLite database. It demonstrates the two extension points a
// plugin typically combines: a command decorator (observing execution without
// touching the original runner) and a context extension (handing the open
// store to commands that want to query it).
package history

import (
	"strings"
	"time"

	"github.com/footprint-tools/clif/dispatch"
	"github.com/footprint-tools/clif/internal/log"
	"github.com/footprint-tools/clif/plugin"
)

// ID is the plugin id the extension is registered under.
const ID = "history"

// New creates the history plugin writing to the database at path.
func New(path string) *plugin.Plugin {
	var store *Store

	return &plugin.Plugin{
		ID: ID,
		Setup: func(s *plugin.Surface) error {
			st, err := Open(path)
			if err != nil {
				return err
			}
			store = st

			return s.DecorateCommand(func(next dispatch.Runner) dispatch.Runner {
				return func(ctx *dispatch.Context) (string, error) {
					started := time.Now()
					out, err := next(ctx)
					record(store, ctx, err, started)
					return out, err
				}
			})
		},
		Extension: func(ctx *dispatch.Context) (any, error) {
			return store, nil
		},
	}
}

// FromContext returns the history store a command can query, when the plugin
// is installed.
func FromContext(ctx *dispatch.Context) (*Store, bool) {
	v, ok := ctx.Extension(ID)
	if !ok {
		return nil, false
	}
	store, ok := v.(*Store)
	return store, ok
}

func record(store *Store, ctx *dispatch.Context, runErr error, started time.Time) {
	outcome := "ok"
	if runErr != nil {
		outcome = "error: " + runErr.Error()
	}
	inv := Invocation{
		ID:        ctx.ID,
		Path:      strings.Join(ctx.Resolution.Path, " "),
		Args:      strings.Join(ctx.Args, " "),
		Outcome:   outcome,
		Duration:  time.Since(started),
		StartedAt: started,
	}
	if err := store.Insert(inv); err != nil {
		// History is best-effort; a write failure must not affect the
		// command outcome.
		log.Warn("history: %v", err)
	}
}
