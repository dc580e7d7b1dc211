// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place render imports lipgloss. All styling is
// semantic (Success, Warning, Error, etc.) rather than visual. When disabled,
// every helper returns the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init initializes the package with the given enabled state. It respects the
// NO_COLOR convention: if the variable is set to any non-empty value, styling
// is disabled regardless of the parameter. Call once from the entry point
// before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		initStyles()
	}
}

// initStyles creates the lipgloss styles. The ANSI256 profile is forced so
// output does not depend on lipgloss's own TTY detection.
func initStyles() {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational highlights such as command names.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Muted styles secondary text.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Header styles section headers.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}
