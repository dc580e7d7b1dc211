package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/clif/token"
)

func TestContext_ExtensionFirstRegistrationWins(t *testing.T) {
	ctx := NewContext("demo", Resolution{}, nil, nil, nil)

	require.True(t, ctx.AddExtension("auth", "first"))
	require.False(t, ctx.AddExtension("auth", "second"))

	v, ok := ctx.Extension("auth")
	require.True(t, ok)
	require.Equal(t, "first", v)
}

func TestContext_UniqueInvocationIDs(t *testing.T) {
	a := NewContext("demo", Resolution{}, nil, nil, nil)
	b := NewContext("demo", Resolution{}, nil, nil, nil)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestContext_OptionValues(t *testing.T) {
	tokens := token.Split([]string{"greet", "--loud", "world", "-v"})
	ctx := NewContext("demo", Resolution{}, []string{"world"}, tokens, nil)
	require.Equal(t, []string{"--loud", "-v"}, ctx.OptionValues())
}

func TestValidateArgs(t *testing.T) {
	spec := []ArgSpec{
		{Name: "key", Required: true},
		{Name: "value", Required: true},
		{Name: "note", Required: false},
	}

	require.NoError(t, ValidateArgs("demo", spec, []string{"k", "v"}))
	require.NoError(t, ValidateArgs("demo", spec, []string{"k", "v", "n"}))

	err := ValidateArgs("demo", spec, []string{"k"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "value")

	require.NoError(t, ValidateArgs("demo", nil, nil))
}
