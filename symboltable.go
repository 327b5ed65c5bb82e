package uniset

import (
	"unicode"

	"github.com/hemanta212/uniset/rangeset"
)

// SymbolTable is the external variable-binding contract the lexer
// consults when it encounters a `$name` reference. Implementations own
// the bindings; the parser never mutates one.
type SymbolTable interface {
	// ParseReference scans an identifier starting at text[pos:limit]
	// (the position just after the leading '$') and returns it, along
	// with the position just past it. It returns an empty name if
	// text[pos] is not a valid identifier start.
	ParseReference(text []rune, pos, limit int) (name string, newPos int)

	// Lookup returns the source text of name's right-hand side, for
	// variables bound to an expression rather than a pre-parsed set.
	Lookup(name string) (text string, ok bool)

	// LookupSet returns a pre-parsed set value for name, when the
	// binding's right-hand side was already resolved to a set.
	LookupSet(name string) (set *rangeset.Set, ok bool)
}

// PropertyResolver is the external Unicode-property-database contract
// used by the property query scanner. ApplyProperty adds (or sets,
// depending on the implementation's convention — this package always
// applies to an initially-empty builder) the members of prop=value to
// target.
type PropertyResolver interface {
	ApplyProperty(target *rangeset.Set, prop, value string) error
}

// isIdentStart/isIdentContinue follow the SymbolTable contract's
// identifier rule: ID_Start then ID_Continue. A simplified ASCII-plus-
// letter approximation is used rather than full Unicode UAX #31
// classes, since this module does not vendor Unicode identifier tables
// beyond what `unicode.IsLetter`/`unicode.IsDigit` already provide.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
