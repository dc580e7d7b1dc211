// Package usage defines the user-facing errors a CLI built on clif reports
// when resolution or validation fails. Each error carries a semantic kind and
// an exit code so the thin entry point can map outcomes without string
// matching.
package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrInvalidFlag
	ErrMissingArgument
)

// Exit codes:
//
//	Exit 1: resolution/environment errors (unknown command, unknown)
//	Exit 2: user input errors (invalid flag, missing argument)
var exitCodes = map[ErrorKind]int{
	ErrUnknown:         1,
	ErrUnknownCommand:  1,
	ErrInvalidFlag:     2,
	ErrMissingArgument: 2,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string

	// Suggestions holds "did you mean" candidates for unknown commands.
	Suggestions []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
