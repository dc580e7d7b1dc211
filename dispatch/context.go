package dispatch

import (
	"github.com/google/uuid"

	"github.com/footprint-tools/clif/token"
)

// Context is the execution context handed to runners, decorators, and
// renderers. One is assembled fresh per invocation; the resolution and
// registries it carries are snapshots, so a runner cannot retroactively
// alter the resolved tree.
type Context struct {
	// ID uniquely identifies this invocation, for logging and auditing.
	ID string

	// App is the application name, used in user-facing messages.
	App string

	Resolution Resolution

	// Args are the positional tokens left after stripping the command path.
	Args []string

	// Tokens is the full tokenizer output, option tokens included.
	Tokens []token.Token

	// GlobalOptions is the read-only registry assembled during plugin
	// installation.
	GlobalOptions []OptionSpec

	extensions map[string]any
}

// NewContext assembles a context for one invocation.
func NewContext(app string, res Resolution, args []string, tokens []token.Token, globals []OptionSpec) *Context {
	return &Context{
		ID:            uuid.NewString(),
		App:           app,
		Resolution:    res,
		Args:          args,
		Tokens:        tokens,
		GlobalOptions: globals,
		extensions:    make(map[string]any),
	}
}

// AddExtension records a plugin's context extension under its plugin id.
// The first registration wins; a duplicate is rejected and the method
// returns false.
func (c *Context) AddExtension(pluginID string, value any) bool {
	if _, ok := c.extensions[pluginID]; ok {
		return false
	}
	c.extensions[pluginID] = value
	return true
}

// Extension returns the context extension registered by the given plugin.
func (c *Context) Extension(pluginID string) (any, bool) {
	v, ok := c.extensions[pluginID]
	return v, ok
}

// OptionValues returns the raw option tokens of this invocation.
func (c *Context) OptionValues() []string {
	return token.Options(c.Tokens)
}
