package uniset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemanta212/uniset/rangeset"
)

type stubResolver struct{}

func (stubResolver) ApplyProperty(target *rangeset.Set, prop, value string) error {
	return ErrIllegalArgument
}

func TestApplyPattern_BasicRange(t *testing.T) {
	set, rebuilt, err := ApplyPattern("[a-z]", nil, stubResolver{}, Options{})
	require.NoError(t, err)
	require.Equal(t, "[a-z]", rebuilt)
	require.True(t, set.Contains('m'))
	require.False(t, set.Contains('A'))
}

func TestApplyPattern_TrailingCharsFail(t *testing.T) {
	_, _, err := ApplyPattern("[a-z]extra", nil, stubResolver{}, Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIllegalArgument))
}

func TestApplyPattern_BadRangeOrder(t *testing.T) {
	_, _, err := ApplyPattern("[x-a]", nil, stubResolver{}, Options{})
	require.True(t, errors.Is(err, ErrIllegalArgument))
}

func TestApplyPattern_UnterminatedString(t *testing.T) {
	_, _, err := ApplyPattern("[{abc", nil, stubResolver{}, Options{})
	require.True(t, errors.Is(err, ErrMalformedSet))
}

func TestResemblesPattern(t *testing.T) {
	require.True(t, ResemblesPattern("[a-z]", 0))
	require.True(t, ResemblesPattern(`\p{L}`, 0))
	require.True(t, ResemblesPattern(`\P{L}`, 0))
	require.True(t, ResemblesPattern(`\N{FOO}`, 0))
	require.False(t, ResemblesPattern("abc", 0))
	require.False(t, ResemblesPattern("[", 0))
}

func TestApplyPatternIgnoreSpace_AdvancesPos(t *testing.T) {
	pattern := "[a-c] trailing text"
	pos := 0
	set, rebuilt, err := ApplyPatternIgnoreSpace(pattern, &pos, nil, stubResolver{}, Options{})
	require.NoError(t, err)
	require.Equal(t, "[a-c]", rebuilt)
	require.True(t, set.Contains('b'))
	require.Equal(t, []rune(pattern)[:pos], []rune("[a-c]"))
}

func TestApplyPatternIgnoreSpace_PosOutOfRange(t *testing.T) {
	pattern := "[a-c]"
	pos := 99
	_, _, err := ApplyPatternIgnoreSpace(pattern, &pos, nil, stubResolver{}, Options{})
	require.True(t, errors.Is(err, ErrIllegalArgument))
}

func TestApplyPropertyAlias(t *testing.T) {
	r := &capturingResolver{}
	_, err := ApplyPropertyAlias("gc", "L", r)
	require.NoError(t, err)
	require.Equal(t, "gc", r.prop)
	require.Equal(t, "L", r.value)
}

type capturingResolver struct {
	prop, value string
}

func (c *capturingResolver) ApplyProperty(target *rangeset.Set, prop, value string) error {
	c.prop, c.value = prop, value
	return target.AddRange('a', 'z')
}
