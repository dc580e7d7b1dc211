package decorator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/clif/dispatch"
)

func TestComposeHeader_OrderPreserving(t *testing.T) {
	chains := NewChains()

	base := func(ctx *dispatch.Context) string { return "X" }
	addSuffix := func(next HeaderRenderer) HeaderRenderer {
		return func(ctx *dispatch.Context) string { return next(ctx) + "!" }
	}
	addPrefix := func(next HeaderRenderer) HeaderRenderer {
		return func(ctx *dispatch.Context) string { return ">" + next(ctx) }
	}

	chains.Header(addPrefix)
	chains.Header(addSuffix)

	// First registered is outermost: addPrefix(addSuffix("X")).
	require.Equal(t, ">X!", chains.ComposeHeader(base)(nil))
}

func TestComposeUsage_EmptyChainReturnsBase(t *testing.T) {
	chains := NewChains()
	base := func(ctx *dispatch.Context) string { return "usage" }
	require.Equal(t, "usage", chains.ComposeUsage(base)(nil))
}

func TestComposeValidationErrors_DecoratorMaySubstitute(t *testing.T) {
	chains := NewChains()
	base := func(ctx *dispatch.Context, err error) string { return "base: " + err.Error() }
	chains.ValidationErrors(func(next ValidationErrorsRenderer) ValidationErrorsRenderer {
		return func(ctx *dispatch.Context, err error) string { return "replaced" }
	})

	got := chains.ComposeValidationErrors(base)(nil, errors.New("boom"))
	require.Equal(t, "replaced", got)
}

func TestComposeCommand_CallOrder(t *testing.T) {
	chains := NewChains()

	var calls []string
	base := func(ctx *dispatch.Context) (string, error) {
		calls = append(calls, "R")
		return "result", nil
	}
	c1 := func(next dispatch.Runner) dispatch.Runner {
		return func(ctx *dispatch.Context) (string, error) {
			calls = append(calls, "c1")
			return next(ctx)
		}
	}
	c2 := func(next dispatch.Runner) dispatch.Runner {
		return func(ctx *dispatch.Context) (string, error) {
			calls = append(calls, "c2")
			return next(ctx)
		}
	}

	chains.Command(c1)
	chains.Command(c2)

	out, err := chains.ComposeCommand(base)(nil)
	require.NoError(t, err)
	require.Equal(t, "result", out)
	require.Equal(t, []string{"c1", "c2", "R"}, calls)
}

func TestComposeCommand_ShortCircuit(t *testing.T) {
	chains := NewChains()

	ran := false
	base := func(ctx *dispatch.Context) (string, error) {
		ran = true
		return "real", nil
	}
	chains.Command(func(next dispatch.Runner) dispatch.Runner {
		return func(ctx *dispatch.Context) (string, error) {
			return "intercepted", nil
		}
	})

	out, err := chains.ComposeCommand(base)(nil)
	require.NoError(t, err)
	require.Equal(t, "intercepted", out)
	require.False(t, ran)
}

func TestComposeCommand_ErrorPropagates(t *testing.T) {
	chains := NewChains()
	boom := errors.New("boom")
	chains.Command(func(next dispatch.Runner) dispatch.Runner {
		return func(ctx *dispatch.Context) (string, error) { return "", boom }
	})

	_, err := chains.ComposeCommand(func(ctx *dispatch.Context) (string, error) { return "", nil })(nil)
	require.ErrorIs(t, err, boom)
}

func TestClone_IsIndependent(t *testing.T) {
	chains := NewChains()
	chains.Header(func(next HeaderRenderer) HeaderRenderer {
		return func(ctx *dispatch.Context) string { return "a" + next(ctx) }
	})

	snapshot := chains.Clone()

	// Registrations after the clone do not reach the snapshot.
	chains.Header(func(next HeaderRenderer) HeaderRenderer {
		return func(ctx *dispatch.Context) string { return "b" + next(ctx) }
	})

	base := func(ctx *dispatch.Context) string { return "X" }
	require.Equal(t, "aX", snapshot.ComposeHeader(base)(nil))
	require.Equal(t, "abX", chains.ComposeHeader(base)(nil))
}
