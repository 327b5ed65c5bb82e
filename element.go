package uniset

import "github.com/hemanta212/uniset/rangeset"

// elementKind categorises a lexicalElement by token shape.
type elementKind int

const (
	kindSetOperator elementKind = iota
	kindLiteral
	kindEscaped
	kindNamed
	kindBracketed
	kindStringLiteral
	kindPropertyQuery
	kindVariable
	kindEndOfText
)

// lexicalElement is a single token produced by the lexer. Only the
// fields relevant to its kind are populated; set carries either a
// freshly materialised set (owned by this element) or a pointer into a
// SymbolTable-owned set (borrowed, must not outlive the parse — Go's
// GC makes the borrow-vs-own distinction moot: a plain pointer is safe
// either way, so there is no separate ownership flag).
type lexicalElement struct {
	kind elementKind

	op    rune // kindSetOperator
	cp    rune // kindLiteral/kindEscaped/kindNamed/kindBracketed
	str   string
	set   *rangeset.Set // kindPropertyQuery, kindVariable when pre-parsed

	pos        int // cursor position after this token was produced
	sourceText string
	err        error
}

func (e *lexicalElement) isSetOperator(op rune) bool {
	return e.kind == kindSetOperator && e.op == op
}

func (e *lexicalElement) failed() bool { return e.err != nil }
