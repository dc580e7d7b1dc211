package usage

import "fmt"

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(app, arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("%s: missing required argument '%s'", app, arg),
	}
}
