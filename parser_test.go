package uniset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParser_SimpleRange(t *testing.T) {
	lx := newLexer("[a-z]", nil, stubResolver{}, Options{})
	rf := newRebuildFrame()
	set, err := parseUnicodeSet(lx, 0, rf)
	require.NoError(t, err)
	require.True(t, set.Contains('m'))
	require.False(t, set.Contains('A'))
}

func TestParser_Negation(t *testing.T) {
	lx := newLexer("[^a-z]", nil, stubResolver{}, Options{})
	set, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.NoError(t, err)
	require.False(t, set.Contains('m'))
	require.True(t, set.Contains('A'))
}

func TestParser_Union(t *testing.T) {
	lx := newLexer("[a-cx-z]", nil, stubResolver{}, Options{})
	set, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.NoError(t, err)
	require.True(t, set.Contains('b'))
	require.True(t, set.Contains('y'))
	require.False(t, set.Contains('m'))
}

func TestParser_Intersection(t *testing.T) {
	lx := newLexer("[[a-z]&[m-q]]", nil, stubResolver{}, Options{})
	set, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.NoError(t, err)
	require.True(t, set.Contains('m'))
	require.False(t, set.Contains('a'))
}

func TestParser_Difference(t *testing.T) {
	lx := newLexer("[[a-z]-[aeiou]]", nil, stubResolver{}, Options{})
	set, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.NoError(t, err)
	require.True(t, set.Contains('b'))
	require.False(t, set.Contains('a'))
}

func TestParser_StringLiteral(t *testing.T) {
	lx := newLexer("[{foo}a]", nil, stubResolver{}, Options{})
	set, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.NoError(t, err)
	require.True(t, set.Contains('a'))
	_, ok := set.Strings()["foo"]
	require.True(t, ok)
}

func TestParser_LeadingTrailingHyphenLiteral(t *testing.T) {
	lx := newLexer("[-a-c-]", nil, stubResolver{}, Options{})
	set, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.NoError(t, err)
	require.True(t, set.Contains('-'))
	require.True(t, set.Contains('a'))
	require.True(t, set.Contains('c'))
}

func TestParser_BadRangeOrder(t *testing.T) {
	lx := newLexer("[x-a]", nil, stubResolver{}, Options{})
	_, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.Error(t, err)
}

func TestParser_UnterminatedSet(t *testing.T) {
	lx := newLexer("[a-z", nil, stubResolver{}, Options{})
	_, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.Error(t, err)
}

func TestParser_AnchorAddsEther(t *testing.T) {
	lx := newLexer("[a$]", nil, stubResolver{}, Options{})
	set, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.NoError(t, err)
	require.True(t, set.HasEther())
}

func TestParser_NestedUnion(t *testing.T) {
	lx := newLexer("[[a-c][x-z]]", nil, stubResolver{}, Options{})
	set, err := parseUnicodeSet(lx, 0, newRebuildFrame())
	require.NoError(t, err)
	require.True(t, set.Contains('b'))
	require.True(t, set.Contains('y'))
}
