package uniset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuleSet_ForwardChaining(t *testing.T) {
	rs := NewRuleSet(stubResolver{}, Options{})

	require.NoError(t, rs.Define("vowels", "[aeiou]"))
	require.NoError(t, rs.Define("consonants", "[[a-z]-$vowels]"))

	set, ok := rs.LookupSet("consonants")
	require.True(t, ok)
	require.True(t, set.Contains('b'))
	require.False(t, set.Contains('a'))
}

func TestRuleSet_RejectsRedefinition(t *testing.T) {
	rs := NewRuleSet(stubResolver{}, Options{})
	require.NoError(t, rs.Define("x", "[a-z]"))

	err := rs.Define("x", "[0-9]")
	require.Error(t, err)
}

func TestRuleSet_ForwardReferenceFails(t *testing.T) {
	rs := NewRuleSet(stubResolver{}, Options{})
	err := rs.Define("a", "[$b]")
	require.Error(t, err)
}

func TestParseRulesetFile(t *testing.T) {
	src := `
# comment
vowels = [aeiou]
consonants = [[a-z]-$vowels]
`
	rs, err := ParseRulesetFile(strings.NewReader(src), stubResolver{}, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"vowels", "consonants"}, rs.Names())

	set, ok := rs.LookupSet("vowels")
	require.True(t, ok)
	require.True(t, set.Contains('e'))
}

func TestParseRulesetFile_BadLine(t *testing.T) {
	_, err := ParseRulesetFile(strings.NewReader("not-a-valid-line"), stubResolver{}, Options{})
	require.Error(t, err)
}

func TestWriteRulesetFile(t *testing.T) {
	rs := NewRuleSet(stubResolver{}, Options{})
	require.NoError(t, rs.Define("digits", "[0-9]"))

	var buf strings.Builder
	require.NoError(t, WriteRulesetFile(&buf, rs))
	require.Contains(t, buf.String(), "digits = [0-9]")
}

func TestMapSymbolTable(t *testing.T) {
	m := MapSymbolTable{"x": "[a-c]"}
	text, ok := m.Lookup("x")
	require.True(t, ok)
	require.Equal(t, "[a-c]", text)

	_, ok = m.LookupSet("x")
	require.False(t, ok)
}
