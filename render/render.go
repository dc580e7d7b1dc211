// Package render supplies the default renderers the decorator chains wrap:
// header, usage listing, and validation errors. Plugins alter presentation by
// decorating these, not by replacing them.
package render

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/clif/decorator"
	"github.com/footprint-tools/clif/dispatch"
	"github.com/footprint-tools/clif/render/style"
)

// Header returns the default header renderer: "name - description".
func Header(name, description string) decorator.HeaderRenderer {
	return func(ctx *dispatch.Context) string {
		if description == "" {
			return style.Header(name)
		}
		return fmt.Sprintf("%s - %s", style.Header(name), description)
	}
}

// Usage returns the default usage renderer. It prints the usage line for the
// resolved command followed by the commands selectable at the resolved depth,
// in registration order, with aligned summaries.
func Usage(appName string) decorator.UsageRenderer {
	return func(ctx *dispatch.Context) string {
		var out bytes.Buffer

		res := ctx.Resolution

		out.WriteString("USAGE\n   ")
		out.WriteString(style.Info(usageLine(appName, res)))
		out.WriteString("\n")

		if res.Level.Len() > 0 {
			out.WriteString("\nCOMMANDS\n")
			width := nameWidth(res.Level)
			res.Level.Range(func(name string, cmd *dispatch.Command) bool {
				display := name
				if cmd.Entry {
					display += " (default)"
				}
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(pad(display, width)), cmd.Description)
				return true
			})
		}

		if len(ctx.GlobalOptions) > 0 {
			out.WriteString("\nGLOBAL OPTIONS\n")
			width := 0
			for _, opt := range ctx.GlobalOptions {
				if n := len(optionLabel(opt)); n > width {
					width = n
				}
			}
			for _, opt := range ctx.GlobalOptions {
				fmt.Fprintf(&out, "   %s  %s\n", style.Muted(pad(optionLabel(opt), width)), opt.Description)
			}
		}

		fmt.Fprintf(&out, "\nSee '%s <command> --help' for detailed help on a specific command.\n", appName)
		return out.String()
	}
}

// ValidationErrors returns the default validation-errors renderer.
func ValidationErrors(appName string) decorator.ValidationErrorsRenderer {
	return func(ctx *dispatch.Context, err error) string {
		var out bytes.Buffer
		out.WriteString(style.Error(err.Error()))
		path := strings.Join(ctx.Resolution.Path, " ")
		if path == "" {
			path = "<command>"
		}
		fmt.Fprintf(&out, "\nSee '%s help %s' for usage.\n", appName, path)
		return out.String()
	}
}

func usageLine(appName string, res dispatch.Resolution) string {
	parts := []string{appName}
	parts = append(parts, res.Path...)
	if res.Omitted {
		parts = append(parts, "<command>")
	}
	parts = append(parts, "[flags]")
	return strings.Join(parts, " ")
}

func optionLabel(opt dispatch.OptionSpec) string {
	if opt.ValueHint != "" {
		return opt.Name + " " + opt.ValueHint
	}
	return opt.Name
}

func nameWidth(level *dispatch.SubCommands) int {
	width := 0
	level.Range(func(name string, cmd *dispatch.Command) bool {
		display := name
		if cmd.Entry {
			display += " (default)"
		}
		if len(display) > width {
			width = len(display)
		}
		return true
	})
	return width
}

// pad right-pads s with spaces to the given width. Padding is applied before
// styling so ANSI codes do not skew the alignment.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
