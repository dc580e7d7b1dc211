package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/clif/dispatch"
)

func groupContext() *dispatch.Context {
	level := dispatch.NewSubCommands()
	level.Add("serve", &dispatch.Command{Name: "serve", Description: "Start the server"})
	level.Add("status", &dispatch.Command{Name: "status", Description: "Show status", Entry: true})

	res := dispatch.Resolution{
		CommandName: "demo",
		Mode:        dispatch.CallEntry,
		Omitted:     true,
		Level:       level,
	}
	globals := []dispatch.OptionSpec{
		{Name: "--verbose", Description: "Verbose output"},
		{Name: "--config", ValueHint: "<path>", Description: "Config file"},
	}
	return dispatch.NewContext("demo", res, nil, nil, globals)
}

func TestHeader(t *testing.T) {
	require.Equal(t, "demo - A demo CLI", Header("demo", "A demo CLI")(groupContext()))
	require.Equal(t, "demo", Header("demo", "")(groupContext()))
}

func TestUsage_GroupListing(t *testing.T) {
	out := Usage("demo")(groupContext())

	require.Contains(t, out, "USAGE\n   demo <command> [flags]")
	require.Contains(t, out, "COMMANDS\n")
	require.Contains(t, out, "serve")
	require.Contains(t, out, "status (default)")
	require.Contains(t, out, "Start the server")

	require.Contains(t, out, "GLOBAL OPTIONS\n")
	require.Contains(t, out, "--verbose")
	require.Contains(t, out, "--config <path>")

	require.Contains(t, out, "See 'demo <command> --help'")
}

func TestUsage_RegistrationOrder(t *testing.T) {
	out := Usage("demo")(groupContext())
	require.Less(t, strings.Index(out, "serve"), strings.Index(out, "status"))
}

func TestUsage_ResolvedPathInUsageLine(t *testing.T) {
	res := dispatch.Resolution{
		CommandName: "serve",
		Mode:        dispatch.CallSubCommand,
		Path:        []string{"serve"},
		Depth:       1,
	}
	ctx := dispatch.NewContext("demo", res, nil, nil, nil)

	out := Usage("demo")(ctx)
	require.Contains(t, out, "USAGE\n   demo serve [flags]")
	require.NotContains(t, out, "COMMANDS")
}

func TestValidationErrors(t *testing.T) {
	res := dispatch.Resolution{
		CommandName: "greet",
		Mode:        dispatch.CallSubCommand,
		Path:        []string{"greet"},
		Depth:       1,
	}
	ctx := dispatch.NewContext("demo", res, nil, nil, nil)

	out := ValidationErrors("demo")(ctx, errors.New("missing required argument 'who'"))
	require.Contains(t, out, "missing required argument 'who'")
	require.Contains(t, out, "See 'demo help greet' for usage.")
}

func TestValidationErrors_NoPath(t *testing.T) {
	ctx := dispatch.NewContext("demo", dispatch.Resolution{}, nil, nil, nil)

	out := ValidationErrors("demo")(ctx, errors.New("boom"))
	require.Contains(t, out, "See 'demo help <command>' for usage.")
}
