package uniset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexer_PropertyQueryWithOperator(t *testing.T) {
	lx := newLexer(`\p{gc=Lu}`, nil, &capturingResolver{}, Options{})
	tok := lx.advance()
	require.Equal(t, kindPropertyQuery, tok.kind)
	require.NotNil(t, tok.set)
}

func TestLexer_PropertyQueryNegated(t *testing.T) {
	r := &capturingResolver{}
	lx := newLexer(`\P{gc=Lu}`, nil, r, Options{})
	tok := lx.advance()
	require.False(t, tok.failed())
	require.Equal(t, "gc", r.prop)
}

func TestLexer_PropertyQueryPosix(t *testing.T) {
	r := &capturingResolver{}
	lx := newLexer(`[:gc=Lu:]`, nil, r, Options{})
	tok := lx.advance()
	require.Equal(t, kindPropertyQuery, tok.kind)
	require.Equal(t, "gc", r.prop)
}

func TestLexer_PropertyQueryDoubleNegationFails(t *testing.T) {
	lx := newLexer(`[:^gc≠Lu:]`, nil, &capturingResolver{}, Options{})
	tok := lx.advance()
	require.True(t, tok.failed())
}

func TestLexer_PropertyQueryBareAliasAny(t *testing.T) {
	lx := newLexer(`\p{ANY}`, nil, stubResolver{}, Options{})
	tok := lx.advance()
	require.False(t, tok.failed())
	require.True(t, tok.set.Contains('a'))
}

func TestLexer_PropertyQueryMissingBraceFails(t *testing.T) {
	lx := newLexer(`\pgc=Lu}`, nil, stubResolver{}, Options{})
	tok := lx.advance()
	require.True(t, tok.failed())
}

func TestLexer_PropertyQueryUnterminatedFails(t *testing.T) {
	lx := newLexer(`\p{gc=Lu`, nil, stubResolver{}, Options{})
	tok := lx.advance()
	require.True(t, tok.failed())
}

func TestLexer_NamedCharacter_RejectsMultiMemberResolution(t *testing.T) {
	// capturingResolver.ApplyProperty always yields the a-z range, which
	// scanNamedCharacter rejects since a name must resolve to exactly
	// one code point.
	lx := newLexer(`\N{FOO}`, nil, &capturingResolver{}, Options{})
	tok := lx.advance()
	require.True(t, tok.failed())
}
