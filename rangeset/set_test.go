package rangeset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSet_AddRangeAndContains(t *testing.T) {
	s := New()
	require.NoError(t, s.AddRange('a', 'z'))
	require.True(t, s.Contains('m'))
	require.False(t, s.Contains('A'))
	require.Equal(t, 26, s.Count())
}

func TestSet_AddRangeMerging(t *testing.T) {
	s := New()
	require.NoError(t, s.AddRange('a', 'c'))
	require.NoError(t, s.AddRange('d', 'f'))
	require.Equal(t, []Range{{'a', 'f'}}, s.Ranges())
}

func TestSet_ComplementCodePoints(t *testing.T) {
	s := New()
	require.NoError(t, s.AddRange('a', 'c'))
	require.NoError(t, s.AddString("foo"))
	require.NoError(t, s.ComplementCodePoints())
	require.False(t, s.Contains('a'))
	require.True(t, s.Contains('d'))
	require.Nil(t, s.Strings())
}

func TestSet_IntersectAndSubtract(t *testing.T) {
	a := New()
	require.NoError(t, a.AddRange('a', 'z'))
	b := New()
	require.NoError(t, b.AddRange('m', 'q'))

	diff := a.Clone()
	require.NoError(t, diff.Subtract(b))
	require.False(t, diff.Contains('m'))
	require.True(t, diff.Contains('z'))

	inter := a.Clone()
	require.NoError(t, inter.IntersectWith(b))
	require.True(t, inter.Contains('m'))
	require.False(t, inter.Contains('z'))
}

func TestSet_FrozenRejectsMutation(t *testing.T) {
	s := New()
	s.Freeze()
	require.ErrorIs(t, s.AddRange('a', 'z'), ErrFrozen)
	require.ErrorIs(t, s.Add('a'), ErrFrozen)
	require.ErrorIs(t, s.ComplementCodePoints(), ErrFrozen)
}

func TestSet_ToPattern(t *testing.T) {
	s := New()
	require.NoError(t, s.AddRange('a', 'z'))
	require.Equal(t, "[a-z]", s.ToPattern(false))

	s2 := New()
	require.NoError(t, s2.AddRange('-', '-'))
	require.NoError(t, s2.AddRange('a', 'c'))
	require.Equal(t, `[\-a-c]`, s2.ToPattern(false))
}

func TestSet_UnionWithProducesCanonicalRanges(t *testing.T) {
	a := New()
	require.NoError(t, a.AddRange('a', 'd'))
	require.NoError(t, a.AddRange('x', 'z'))
	b := New()
	require.NoError(t, b.AddRange('c', 'f'))
	require.NoError(t, b.AddRange('y', 'y'))

	require.NoError(t, a.UnionWith(b))

	want := []Range{{'a', 'f'}, {'x', 'z'}}
	if diff := cmp.Diff(want, a.Ranges()); diff != "" {
		t.Errorf("Ranges() mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_EtherAnchor(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(EtherCodePoint))
	require.True(t, s.HasEther())

	require.NoError(t, s.AddRange('a', 'b'))
	require.NoError(t, s.ComplementCodePoints())
	require.False(t, s.HasEther())
}
