package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubCommands_InsertionOrder(t *testing.T) {
	s := NewSubCommands()
	s.Add("zeta", &Command{Name: "zeta"})
	s.Add("alpha", &Command{Name: "alpha"})
	s.Add("mid", &Command{Name: "mid"})

	require.Equal(t, []string{"zeta", "alpha", "mid"}, s.Names())
	require.Equal(t, 3, s.Len())
}

func TestSubCommands_ReplaceKeepsPosition(t *testing.T) {
	s := NewSubCommands()
	s.Add("one", &Command{Description: "first"})
	s.Add("two", &Command{Description: "second"})
	s.Add("one", &Command{Description: "replaced"})

	require.Equal(t, []string{"one", "two"}, s.Names())
	cmd, ok := s.Get("one")
	require.True(t, ok)
	require.Equal(t, "replaced", cmd.Description)
}

func TestSubCommands_NilSafe(t *testing.T) {
	var s *SubCommands
	require.Zero(t, s.Len())
	require.False(t, s.Has("x"))
	require.Nil(t, s.Names())
	require.NotNil(t, s.Copy())
}

func TestSubCommands_RangeStopsEarly(t *testing.T) {
	s := NewSubCommands()
	s.Add("a", &Command{})
	s.Add("b", &Command{})
	s.Add("c", &Command{})

	var seen []string
	s.Range(func(name string, cmd *Command) bool {
		seen = append(seen, name)
		return len(seen) < 2
	})
	require.Equal(t, []string{"a", "b"}, seen)
}

func TestSubCommands_CopyIsIndependent(t *testing.T) {
	s := NewSubCommands()
	s.Add("a", &Command{})

	c := s.Copy()
	c.Add("b", &Command{})

	require.Equal(t, []string{"a"}, s.Names())
	require.Equal(t, []string{"a", "b"}, c.Names())
}
