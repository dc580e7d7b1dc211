package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when no command matches the given name.
// Suggestions, when present, are rendered one per line below the message.
func UnknownCommand(app, command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("%s: '%s' is not a %s command. See '%s --help'.", app, command, app, app)
	if len(suggestions) > 0 {
		var b strings.Builder
		b.WriteString(msg)
		b.WriteString("\n\nThe most similar commands are:\n")
		for _, s := range suggestions {
			b.WriteString("\t")
			b.WriteString(s)
			b.WriteString("\n")
		}
		msg = strings.TrimRight(b.String(), "\n")
	}
	return &Error{Kind: ErrUnknownCommand, Message: msg, Suggestions: suggestions}
}
