package dispatch

import "github.com/footprint-tools/clif/usage"

// ValidateArgs checks the resolved command's positional arguments against its
// declared schema. Only arity is checked here; value typing belongs to the
// external tokenizer.
func ValidateArgs(app string, spec []ArgSpec, args []string) error {
	requiredCount := 0
	for _, a := range spec {
		if a.Required {
			requiredCount++
		}
	}

	if len(args) < requiredCount {
		if len(args) >= len(spec) {
			return usage.MissingArgument(app, "argument")
		}
		return usage.MissingArgument(app, spec[len(args)].Name)
	}

	return nil
}
