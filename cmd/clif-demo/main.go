// clif-demo is a small CLI built on the clif framework. It exists to show the
// wiring: caller-supplied commands, plugin-registered commands, the built-in
// history and picker plugins, and exit-code mapping at the edge.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/clif/app"
	"github.com/footprint-tools/clif/config"
	"github.com/footprint-tools/clif/dispatch"
	"github.com/footprint-tools/clif/internal/log"
	"github.com/footprint-tools/clif/plugin"
	"github.com/footprint-tools/clif/plugins/history"
	"github.com/footprint-tools/clif/plugins/picker"
	"github.com/footprint-tools/clif/render"
	"github.com/footprint-tools/clif/render/style"
	"github.com/footprint-tools/clif/token"
	"github.com/footprint-tools/clif/usage"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Init(os.Stderr, log.ParseLevel(cfg.Log))

	tokens := token.Split(os.Args[1:])

	enableColor := render.IsTerminal(os.Stdout)
	if cfg.Color != nil {
		enableColor = *cfg.Color
	}
	style.Init(enableColor)

	a, err := app.New(app.Options{
		Name:        "clif-demo",
		Description: "Demonstration CLI for the clif framework",
		Commands:    demoCommands(),
		Plugins: cfg.FilterPlugins([]*plugin.Plugin{
			history.New(historyPath()),
			picker.New(),
		}),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, err := a.RunTokens(tokens)
	if err != nil {
		var ue *usage.Error
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, ue.Error())
			os.Exit(ue.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if out != "" {
		fmt.Println(out)
	}
}

func demoCommands() *dispatch.SubCommands {
	commands := dispatch.NewSubCommands()

	commands.Add("greet", &dispatch.Command{
		Name:        "greet",
		Description: "Print a greeting",
		Args: []dispatch.ArgSpec{
			{Name: "who", Description: "Whom to greet", Required: true},
		},
		Run: func(ctx *dispatch.Context) (string, error) {
			return "Hello, " + ctx.Args[0] + "!", nil
		},
	})

	commands.Add("recent", &dispatch.Command{
		Name:        "recent",
		Description: "Show recently executed commands",
		Run: func(ctx *dispatch.Context) (string, error) {
			store, ok := history.FromContext(ctx)
			if !ok {
				return "", errors.New("history plugin is not installed")
			}
			invocations, err := store.Recent(10)
			if err != nil {
				return "", err
			}
			var lines []string
			for _, inv := range invocations {
				lines = append(lines, fmt.Sprintf("%s  %-20s %s", inv.StartedAt.Format("2006-01-02 15:04"), inv.Path, inv.Outcome))
			}
			if len(lines) == 0 {
				return "No history yet.", nil
			}
			return strings.Join(lines, "\n"), nil
		},
	})

	return commands
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".clif-demo.yaml"
	}
	return filepath.Join(dir, "clif-demo", "config.yaml")
}

func historyPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".clif-demo-history.db"
	}
	if err := os.MkdirAll(filepath.Join(dir, "clif-demo"), 0o700); err != nil {
		return ".clif-demo-history.db"
	}
	return filepath.Join(dir, "clif-demo", "history.db")
}
