package uniset

import (
	"github.com/hemanta212/uniset/rangeset"
)

// ResemblesPattern reports whether pattern[pos:] looks like the start
// of a set expression: a '[' with at least one more character, or a
// \p, \P, or \N escape.
func ResemblesPattern(pattern string, pos int) bool {
	runes := []rune(pattern)
	if pos < 0 || pos >= len(runes) {
		return false
	}
	if runes[pos] == '[' && pos+1 < len(runes) {
		return true
	}
	if runes[pos] == '\\' && pos+1 < len(runes) {
		switch runes[pos+1] {
		case 'p', 'P', 'N':
			return true
		}
	}
	return false
}

// ApplyPattern parses pattern from the beginning and requires that
// the entire input be consumed; only trailing whitespace after the
// set expression is skipped. It returns the
// resulting set and its rebuilt canonical pattern.
func ApplyPattern(pattern string, symbols SymbolTable, resolver PropertyResolver, opts Options) (*rangeset.Set, string, error) {
	lx := newLexer(pattern, symbols, resolver, opts)
	rf := newRebuildFrame()
	set, err := parseUnicodeSet(lx, 0, rf)
	if err != nil {
		return nil, "", err
	}
	lx.stream.skipIgnored(charstreamOpts{skipWhitespace: true})
	if !lx.stream.atEnd() {
		return nil, "", newParseError(ErrIllegalArgument, lx.stream.getPos(), pattern, "trailing characters after set expression")
	}
	return set, buildRebuiltPattern(set, rf), nil
}

// ApplyPatternIgnoreSpace is the incremental form: it parses a set
// starting at *pos (pattern-whitespace always ignored around tokens,
// regardless of opts.IgnoreSpace), advances *pos to the first
// character after the parsed set, and returns the set and its rebuilt
// pattern. It does not require the rest of the pattern to be consumed.
func ApplyPatternIgnoreSpace(pattern string, pos *int, symbols SymbolTable, resolver PropertyResolver, opts Options) (*rangeset.Set, string, error) {
	runes := []rune(pattern)
	if *pos < 0 || *pos > len(runes) {
		return nil, "", newParseError(ErrIllegalArgument, *pos, pattern, "position out of range")
	}
	opts.IgnoreSpace = true
	lx := newLexer(string(runes[*pos:]), symbols, resolver, opts)
	rf := newRebuildFrame()
	set, err := parseUnicodeSet(lx, 0, rf)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Pos += *pos
			pe.Position.Offset += *pos
			pe.Position.Column += *pos
		}
		return nil, "", err
	}
	if lx.stream.inVariable() {
		return nil, "", newParseError(ErrMalformedSet, *pos+lx.stream.getPos(), pattern, "set ends inside a partially consumed variable expansion")
	}
	*pos += lx.stream.getPos()
	return set, buildRebuiltPattern(set, rf), nil
}

// ApplyPropertyAlias bypasses the parser entirely and builds a set
// directly from a property name/value pair, for callers that already
// have the two strings in hand (e.g. a completion provider resolving
// a chosen candidate).
func ApplyPropertyAlias(prop, value string, resolver PropertyResolver) (*rangeset.Set, error) {
	if resolver == nil {
		return nil, newParseError(ErrIllegalArgument, 0, "", "no property resolver configured")
	}
	set := rangeset.New()
	hasOp := value != ""
	if err := applyPropertyOrAlias(resolver, set, prop, value, hasOp); err != nil {
		return nil, newParseError(ErrIllegalArgument, 0, prop+"="+value, err.Error())
	}
	return set, nil
}
