package rangeset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyCaseClosure_None(t *testing.T) {
	s := New()
	require.NoError(t, s.AddRange('A', 'A'))
	require.NoError(t, ApplyCaseClosure(s, CaseNone))
	require.False(t, s.Contains('a'))
}

func TestApplyCaseClosure_AddsFoldedSiblings(t *testing.T) {
	s := New()
	require.NoError(t, s.AddRange('A', 'Z'))
	require.NoError(t, ApplyCaseClosure(s, CaseInsensitive))
	require.True(t, s.Contains('a'))
	require.True(t, s.Contains('z'))
	require.True(t, s.Contains('A'))
}

func TestApplyCaseClosure_KelvinSign(t *testing.T) {
	// U+212A KELVIN SIGN simple-folds to 'k'/'K'.
	s := New()
	require.NoError(t, s.Add('k'))
	require.NoError(t, ApplyCaseClosure(s, CaseInsensitive))
	require.True(t, s.Contains('K'))
	require.True(t, s.Contains(0x212A))
}
