package uniset

// etherCodePoint is the U_ETHER sentinel: a non-code-point marker used
// to encode the anchor introduced by a trailing `$` inside a set.
const etherCodePoint rune = -1

// maxCodePoint is the upper bound of the Unicode code point range.
const maxCodePoint rune = 0x10FFFF

// maxDepth bounds the recursive descent, matching the historical ICU
// constant of the same name.
const maxDepth = 100

// Bare \p{...} aliases recognised without a property name.
const (
	bareAliasAny      = "ANY"
	bareAliasASCII    = "ASCII"
	bareAliasAssigned = "Assigned"
)

// patternWhitespace reports whether r is Unicode Pattern_White_Space,
// the set CharStream skips when SKIP_WHITESPACE is requested.
func patternWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x85, 0x200E, 0x200F, 0x2028, 0x2029:
		return true
	}
	return false
}

// setOperatorChars are the single code points the lexer treats as
// SetOperator elements outside of escapes and queries.
const setOperatorChars = "[]^&-$"

func isSetOperator(r rune) bool {
	for _, c := range setOperatorChars {
		if c == r {
			return true
		}
	}
	return false
}
