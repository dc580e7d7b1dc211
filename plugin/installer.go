package plugin

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/clif/decorator"
	"github.com/footprint-tools/clif/dispatch"
	"github.com/footprint-tools/clif/internal/log"
)

// Surface is the mutable registration surface handed to each plugin's setup.
// It exists for the single installation pass of one invocation; afterwards it
// is sealed and further registration fails.
type Surface struct {
	chains      *decorator.Chains
	globals     []dispatch.OptionSpec
	globalIndex map[string]bool
	commands    *dispatch.SubCommands
	extensions  *Extensions
	warnings    []string
	sealed      bool

	// current is the id of the plugin whose setup is running, for error
	// attribution.
	current string
}

// NewSurface creates a registration surface. Commands already known to the
// caller are seeded so plugins can probe them with HasCommand.
func NewSurface(seed *dispatch.SubCommands) *Surface {
	commands := dispatch.NewSubCommands()
	if seed != nil {
		seed.Range(func(name string, cmd *dispatch.Command) bool {
			commands.Add(name, cmd)
			return true
		})
	}
	return &Surface{
		chains:      decorator.NewChains(),
		globalIndex: make(map[string]bool),
		commands:    commands,
		extensions:  NewExtensions(),
	}
}

// AddGlobalOption registers a global option. An empty name or a name already
// registered is a programmer error and comes back as *ConfigError, which
// aborts the installation pass.
func (s *Surface) AddGlobalOption(name string, opt dispatch.OptionSpec) error {
	if err := s.writable(); err != nil {
		return err
	}
	if name == "" {
		return &ConfigError{Plugin: s.current, Msg: "global option name must not be empty"}
	}
	if s.globalIndex[name] {
		return &ConfigError{Plugin: s.current, Msg: fmt.Sprintf("global option %q is already registered", name)}
	}
	opt.Name = name
	s.globalIndex[name] = true
	s.globals = append(s.globals, opt)
	return nil
}

// AddCommand registers a sub-command at the root level. Re-registering a name
// replaces the command.
func (s *Surface) AddCommand(name string, cmd *dispatch.Command) error {
	if err := s.writable(); err != nil {
		return err
	}
	if name == "" {
		return &ConfigError{Plugin: s.current, Msg: "command name must not be empty"}
	}
	s.commands.Add(name, cmd)
	return nil
}

// HasCommand reports whether a root-level command name is registered.
func (s *Surface) HasCommand(name string) bool {
	return s.commands.Has(name)
}

// DecorateHeaderRenderer appends a header-renderer decorator.
func (s *Surface) DecorateHeaderRenderer(d decorator.HeaderDecorator) error {
	if err := s.writable(); err != nil {
		return err
	}
	s.chains.Header(d)
	return nil
}

// DecorateUsageRenderer appends a usage-renderer decorator.
func (s *Surface) DecorateUsageRenderer(d decorator.UsageDecorator) error {
	if err := s.writable(); err != nil {
		return err
	}
	s.chains.Usage(d)
	return nil
}

// DecorateValidationErrorsRenderer appends a validation-errors-renderer
// decorator.
func (s *Surface) DecorateValidationErrorsRenderer(d decorator.ValidationErrorsDecorator) error {
	if err := s.writable(); err != nil {
		return err
	}
	s.chains.ValidationErrors(d)
	return nil
}

// DecorateCommand appends a command decorator.
func (s *Surface) DecorateCommand(d decorator.CommandDecorator) error {
	if err := s.writable(); err != nil {
		return err
	}
	s.chains.Command(d)
	return nil
}

func (s *Surface) writable() error {
	if s.sealed {
		return errors.New("installer surface is sealed: registration is only valid during plugin setup")
	}
	return nil
}

func (s *Surface) seal() { s.sealed = true }

// Chains returns a snapshot of the decorator registries.
func (s *Surface) Chains() *decorator.Chains { return s.chains.Clone() }

// Commands returns a snapshot of the root sub-command map.
func (s *Surface) Commands() *dispatch.SubCommands { return s.commands.Copy() }

// GlobalOptions returns a snapshot of the registered global options.
func (s *Surface) GlobalOptions() []dispatch.OptionSpec {
	out := make([]dispatch.OptionSpec, len(s.globals))
	copy(out, s.globals)
	return out
}

// Extensions returns the registry of plugin context extensions.
func (s *Surface) Extensions() *Extensions { return s.extensions }

// Warnings returns the non-fatal problems observed during installation.
func (s *Surface) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

func (s *Surface) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.warnings = append(s.warnings, msg)
	log.Warn("plugin: %s", msg)
}

// Install runs each plugin's setup against the surface, in resolved order,
// and returns the successfully processed subset. A failing setup is logged
// and skipped so one broken plugin cannot take down the rest of the CLI; the
// exception is *ConfigError, which aborts immediately. The surface is sealed
// before Install returns, on success and on abort alike.
func Install(order []*Plugin, s *Surface) ([]*Plugin, error) {
	defer s.seal()

	var installed []*Plugin
	for _, p := range order {
		if p.Setup != nil {
			s.current = p.ID
			err := p.Setup(s)
			s.current = ""
			if err != nil {
				var cfg *ConfigError
				if errors.As(err, &cfg) {
					return installed, cfg
				}
				s.warnf("setup of plugin %q failed, skipping: %v", p.ID, err)
				continue
			}
		}

		if p.Extension != nil {
			if !s.extensions.Register(p.ID, p.Extension, p.OnExtension) {
				s.warnf("plugin %q registered a duplicate extension; keeping the first", p.ID)
			}
		}
		installed = append(installed, p)
	}

	return installed, nil
}
