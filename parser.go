package uniset

import "github.com/hemanta212/uniset/rangeset"

// This file implements the recursive-descent grammar behind a
// UnicodeSet expression:
//
//	UnicodeSet     ::= property-query | named-element
//	                 | set-valued-variable | '[' ('^')? Union ']'
//	Union          ::= ('-')?  Terms  ('-')?
//	Terms          ::= ε | Terms Term
//	Term           ::= Elements | Restriction
//	Restriction    ::= UnicodeSet RightHandSides
//	RightHandSides ::= ε | '&' UnicodeSet RightHandSides
//	                 | '-' UnicodeSet RightHandSides
//	Elements       ::= Element | RangeElement '-' RangeElement
//	Element        ::= RangeElement | string-literal
//	RangeElement   ::= literal-element | escaped-element
//	                 | named-element | bracketed-element
//
// Term and Restriction are implemented as a single parseTerm/
// chainRestriction pair rather than separate non-terminals: a
// Restriction is exactly a Term that happened to start with a
// UnicodeSet-introducing token, so a flat "parse one operand, then
// greedily chain &/- continuations" loop avoids the right-recursive
// expression tree the naive grammar reading would produce (& and -
// must be left-associative).
//
// rf accumulates the structural rebuilt-pattern text for the entire
// parse (shared across all nesting levels, not per-frame): the
// "purely built from ranges" test for choosing between a regenerated
// pattern and a structure-preserving one only applies at the very
// outermost call, so a single shared "has this parse touched anything
// other than plain ranges" flag is sufficient.

// parseUnicodeSet parses one UnicodeSet: a property query, a named
// element, a set-valued variable, or a bracketed '[' ('^')? Union ']'.
// It is also the entry point used by Boundary's ApplyPattern.
func parseUnicodeSet(lx *lexer, depth int, rf *rebuildFrame) (*rangeset.Set, error) {
	if depth > maxDepth {
		return nil, newParseError(ErrMalformedSet, lx.lookahead().pos, lx.pattern, "pattern nesting exceeds depth limit")
	}
	tok := lx.lookahead()

	switch {
	case tok.kind == kindPropertyQuery:
		lx.advance()
		rf.appendRaw(tok.sourceText)
		rf.markImpure()
		return tok.set.Clone(), nil

	case tok.kind == kindNamed:
		lx.advance()
		rf.appendRaw(tok.sourceText)
		rf.markImpure()
		s := rangeset.New()
		_ = s.Add(tok.cp)
		return s, nil

	case tok.kind == kindVariable:
		if tok.failed() {
			lx.advance()
			return nil, tok.err
		}
		lx.advance()
		rf.appendRaw(tok.sourceText)
		rf.markImpure()
		return tok.set.Clone(), nil

	case tok.isSetOperator('['):
		lx.advance()
		rf.appendRaw("[")
		negated := false
		if lx.acceptSetOperator('^') {
			negated = true
			rf.appendRaw("^")
		}
		body, anchor, err := parseUnionBody(lx, depth+1, rf)
		if err != nil {
			return nil, err
		}
		if !lx.acceptSetOperator(']') {
			return nil, newParseError(ErrMalformedSet, lx.lookahead().pos, lx.pattern, "expected ']'")
		}
		rf.appendRaw("]")
		if anchor {
			if err := body.Add(rangeset.EtherCodePoint); err != nil {
				return nil, err
			}
			rf.markImpure()
		}
		applyCaseClosure(body, lx.opts)
		if negated {
			if rf.pure {
				rf.markNegated(body)
			}
			if err := body.ComplementCodePoints(); err != nil {
				return nil, err
			}
		}
		return body, nil

	default:
		if tok.failed() {
			lx.advance()
			return nil, tok.err
		}
		return nil, newParseError(ErrMalformedSet, tok.pos, lx.pattern, "expected a set expression")
	}
}

// parseUnionBody parses the Union production: zero or more Terms,
// optionally wrapped by a literal leading or trailing hyphen, with a
// trailing lone "$" before "]" recognised as the anchor.
func parseUnionBody(lx *lexer, depth int, rf *rebuildFrame) (set *rangeset.Set, anchor bool, err error) {
	result := rangeset.New()
	for {
		tok := lx.lookahead()
		if tok.kind == kindEndOfText {
			if tok.failed() {
				return nil, false, tok.err
			}
			return nil, false, newParseError(ErrMalformedSet, tok.pos, lx.pattern, "unterminated set")
		}
		if tok.isSetOperator(']') {
			break
		}
		if tok.isSetOperator('$') && lx.lookahead2().isSetOperator(']') {
			lx.advance()
			rf.appendRaw("$")
			anchor = true
			continue
		}
		if tok.isSetOperator('-') {
			// A '-' reaching the top of the Union loop is always a
			// literal hyphen: Elements' own range check (in parseTerm)
			// already consumes any '-' that introduces a RangeElement-
			// RangeElement range, and Restriction's '&'/'-' chaining (in
			// chainRestriction) already consumes any '-' that continues
			// a UnicodeSet-valued Term. What's left is exactly the
			// grammar's optional leading/trailing hyphen, plus any
			// hyphen left isolated between two Terms.
			if lx.lookahead2().isSetOperator(']') {
				// Trailing: position alone disambiguates it as literal,
				// so it's rebuilt bare.
				lx.advance()
				rf.appendRaw("-")
				if err := result.Add('-'); err != nil {
					return nil, false, err
				}
				continue
			}
			// Leading, or isolated between two Terms: neither position
			// is self-disambiguating, so it's rebuilt escaped, and the
			// frame can no longer be regenerated purely from ranges.
			lx.advance()
			rf.appendRaw(`\-`)
			rf.markImpure()
			if err := result.Add('-'); err != nil {
				return nil, false, err
			}
			continue
		}
		termSet, err := parseTerm(lx, depth, rf)
		if err != nil {
			return nil, false, err
		}
		if err := result.UnionWith(termSet); err != nil {
			return nil, false, err
		}
	}
	return result, anchor, nil
}

// parseTerm parses one Term: either an Elements production (a single
// RangeElement, a range, or a string literal) or a Restriction (a
// UnicodeSet followed by a left-associative chain of & and -).
func parseTerm(lx *lexer, depth int, rf *rebuildFrame) (*rangeset.Set, error) {
	tok := lx.lookahead()
	if tok.failed() {
		lx.advance()
		return nil, tok.err
	}

	if tok.kind == kindStringLiteral {
		lx.advance()
		rf.appendRaw(tok.sourceText)
		s := rangeset.New()
		_ = s.AddString(tok.str)
		return s, nil
	}

	if isRangeElementKind(tok.kind) {
		cp1 := tok.cp
		lx.advance()
		rf.appendRaw(tok.sourceText)

		if lx.lookahead().isSetOperator('-') && !lx.lookahead2().isSetOperator(']') {
			nxt := lx.lookahead2()
			if isRangeElementKind(nxt.kind) {
				lx.advance() // consume '-'
				rf.appendRaw("-")
				end := lx.lookahead()
				if end.failed() {
					lx.advance()
					return nil, end.err
				}
				cp2 := end.cp
				lx.advance()
				rf.appendRaw(end.sourceText)
				if cp1 >= cp2 {
					return nil, newParseError(ErrIllegalArgument, end.pos, lx.pattern, "range start is not less than range end")
				}
				s := rangeset.New()
				_ = s.AddRange(cp1, cp2)
				return s, nil
			}
			if tok.kind == kindNamed && isUnicodeSetStart(nxt) {
				s := rangeset.New()
				_ = s.Add(cp1)
				return chainRestriction(lx, depth, rf, s)
			}
		}

		s := rangeset.New()
		_ = s.Add(cp1)
		return s, nil
	}

	var set *rangeset.Set
	var err error
	switch {
	case tok.kind == kindPropertyQuery:
		lx.advance()
		rf.appendRaw(tok.sourceText)
		rf.markImpure()
		set = tok.set.Clone()
	case tok.kind == kindVariable:
		lx.advance()
		rf.appendRaw(tok.sourceText)
		rf.markImpure()
		set = tok.set.Clone()
	case tok.isSetOperator('['):
		set, err = parseUnicodeSet(lx, depth+1, rf)
		if err != nil {
			return nil, err
		}
		rf.markImpure()
	default:
		return nil, newParseError(ErrMalformedSet, tok.pos, lx.pattern, "unexpected token")
	}
	return chainRestriction(lx, depth, rf, set)
}

// chainRestriction greedily consumes a left-associative chain of '&'
// (intersection) and '-' (difference) continuations against set,
// implementing RightHandSides as a flat loop rather than recursion.
func chainRestriction(lx *lexer, depth int, rf *rebuildFrame, set *rangeset.Set) (*rangeset.Set, error) {
	for {
		if lx.lookahead().isSetOperator('&') {
			lx.advance()
			rf.appendRaw("&")
			rhs, err := parseUnicodeSet(lx, depth+1, rf)
			if err != nil {
				return nil, err
			}
			rf.markImpure()
			if err := set.IntersectWith(rhs); err != nil {
				return nil, err
			}
			continue
		}
		if lx.lookahead().isSetOperator('-') && !lx.lookahead2().isSetOperator(']') {
			lx.advance()
			rf.appendRaw("-")
			rhs, err := parseUnicodeSet(lx, depth+1, rf)
			if err != nil {
				return nil, err
			}
			rf.markImpure()
			if err := set.Subtract(rhs); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return set, nil
}

func isRangeElementKind(k elementKind) bool {
	switch k {
	case kindLiteral, kindEscaped, kindNamed, kindBracketed:
		return true
	}
	return false
}

func isUnicodeSetStart(tok *lexicalElement) bool {
	return tok.kind == kindPropertyQuery || tok.kind == kindVariable || tok.isSetOperator('[')
}

// applyCaseClosure maps uniset.Options' CaseMode to rangeset's own
// CaseMode (kept distinct so rangeset has no dependency back on this
// package) and applies it, unless the caller supplied an override.
func applyCaseClosure(set *rangeset.Set, opts Options) {
	if opts.CaseClosureFunc != nil {
		opts.CaseClosureFunc(set, opts.CaseMode)
		return
	}
	var mode rangeset.CaseMode
	switch opts.CaseMode {
	case CaseInsensitive:
		mode = rangeset.CaseInsensitive
	case CaseAddMappings:
		mode = rangeset.CaseAddMappings
	case CaseSimpleInsensitive:
		mode = rangeset.CaseSimpleInsensitive
	default:
		mode = rangeset.CaseNone
	}
	_ = rangeset.ApplyCaseClosure(set, mode)
}
