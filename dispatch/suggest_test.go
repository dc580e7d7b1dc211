package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func suggestLevel(names ...string) *SubCommands {
	s := NewSubCommands()
	for _, n := range names {
		s.Add(n, &Command{Name: n})
	}
	return s
}

func TestSimilarCommands_FindsCloseMatches(t *testing.T) {
	level := suggestLevel("track", "untrack", "status", "version")

	got := SimilarCommands("trak", level, 3)
	require.Equal(t, []string{"track", "untrack"}, got)
}

func TestSimilarCommands_ExactMatchExcluded(t *testing.T) {
	level := suggestLevel("track")
	require.Empty(t, SimilarCommands("track", level, 3))
}

func TestSimilarCommands_DistanceCap(t *testing.T) {
	level := suggestLevel("version")
	require.Empty(t, SimilarCommands("xyz", level, 3))
}

func TestSimilarCommands_LimitAndStableOrder(t *testing.T) {
	level := suggestLevel("aab", "aac", "aad", "aae")

	got := SimilarCommands("aaa", level, 2)
	require.Len(t, got, 2)
	// Equal distances tie-break alphabetically.
	require.Equal(t, []string{"aab", "aac"}, got)
}

func TestSimilarCommands_EmptyLevel(t *testing.T) {
	require.Nil(t, SimilarCommands("x", nil, 3))
	require.Nil(t, SimilarCommands("x", NewSubCommands(), 3))
}
