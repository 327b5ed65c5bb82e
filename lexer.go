package uniset

// lexer converts charStream movements into categorised lexicalElements
// with up to two tokens of lookahead, lazily materialised.
type lexer struct {
	stream   *charStream
	symbols  SymbolTable
	resolver PropertyResolver
	opts     Options
	pattern  string

	la1, la2 *lexicalElement
}

func newLexer(pattern string, symbols SymbolTable, resolver PropertyResolver, opts Options) *lexer {
	return &lexer{
		stream:   newCharStream(pattern),
		symbols:  symbols,
		resolver: resolver,
		opts:     opts,
		pattern:  pattern,
	}
}

func (lx *lexer) csOpts() charstreamOpts {
	return charstreamOpts{parseEscapes: true, skipWhitespace: lx.opts.IgnoreSpace}
}

// lookahead returns (and caches) the token that would be produced by
// advancing once; it does not move the cursor.
func (lx *lexer) lookahead() *lexicalElement {
	if lx.la1 == nil {
		lx.la1 = lx.nextToken()
	}
	return lx.la1
}

// lookahead2 returns the token after the current lookahead.
func (lx *lexer) lookahead2() *lexicalElement {
	lx.lookahead()
	if lx.la2 == nil {
		lx.la2 = lx.nextToken()
	}
	return lx.la2
}

// advance commits the lookahead, shifting lookahead2 into lookahead.
func (lx *lexer) advance() *lexicalElement {
	tok := lx.lookahead()
	lx.la1 = lx.la2
	lx.la2 = nil
	return tok
}

// acceptSetOperator advances and returns true if the lookahead is the
// given set-operator rune.
func (lx *lexer) acceptSetOperator(op rune) bool {
	if lx.lookahead().isSetOperator(op) {
		lx.advance()
		return true
	}
	return false
}

func (lx *lexer) atEnd() bool {
	return lx.lookahead().kind == kindEndOfText
}

func (lx *lexer) errElement(err error) *lexicalElement {
	return &lexicalElement{kind: kindEndOfText, pos: lx.stream.getPos(), err: err}
}

// nextToken scans the next lexical element from the current position.
func (lx *lexer) nextToken() *lexicalElement {
	lx.stream.skipIgnored(lx.csOpts())
	startPos := lx.stream.getPos()
	if lx.stream.atEnd() {
		return &lexicalElement{kind: kindEndOfText, pos: startPos}
	}

	c1 := lx.stream.peekRaw(0)

	if c1 == '[' || c1 == '\\' {
		c2 := lx.stream.peekRaw(1)
		if (c1 == '[' && c2 == ':') ||
			(c1 == '\\' && (c2 == 'p' || c2 == 'P' || c2 == 'N')) {
			return lx.scanPropertyQuery(c1, c2, startPos)
		}
	}

	if c1 == '$' && lx.symbols != nil {
		if tok := lx.tryVariable(startPos); tok != nil {
			return tok
		}
	}

	if isSetOperator(c1) {
		lx.stream.jumpahead(1)
		return &lexicalElement{kind: kindSetOperator, op: c1, pos: lx.stream.getPos(), sourceText: string(c1)}
	}

	if c1 == '\\' {
		cp, _, err := lx.stream.next(lx.csOpts())
		if err != nil {
			return lx.errElement(err)
		}
		return &lexicalElement{kind: kindEscaped, cp: cp, pos: lx.stream.getPos(), sourceText: string(lx.sourceSlice(startPos))}
	}

	if c1 == '{' {
		return lx.scanBraced(startPos)
	}

	lx.stream.jumpahead(1)
	return &lexicalElement{kind: kindLiteral, cp: c1, pos: lx.stream.getPos(), sourceText: string(c1)}
}

func (lx *lexer) sourceSlice(start int) []rune {
	end := lx.stream.getPos()
	if start < 0 || end > len(lx.stream.runes) || start > end {
		return nil
	}
	return lx.stream.runes[start:end]
}

// tryVariable implements $name resolution. It returns nil (falling
// through to literal '$' handling) if the '$' is not followed by a
// valid identifier — a lone '$' at end of union is the anchor, handled
// by the parser, not here.
func (lx *lexer) tryVariable(startPos int) *lexicalElement {
	afterDollar := startPos + 1
	name, newPos := lx.symbols.ParseReference(lx.stream.runes, afterDollar, len(lx.stream.runes))
	if name == "" {
		return nil
	}
	sourceText := "$" + name

	if set, ok := lx.symbols.LookupSet(name); ok {
		lx.stream.setPos(newPos)
		return &lexicalElement{kind: kindVariable, set: set, pos: lx.stream.getPos(), sourceText: sourceText}
	}
	if text, ok := lx.symbols.Lookup(name); ok {
		lx.stream.setPos(newPos)
		return lx.evaluateVariable(text, sourceText)
	}
	lx.stream.setPos(newPos)
	return &lexicalElement{kind: kindVariable, pos: lx.stream.getPos(), sourceText: sourceText,
		err: newParseError(ErrUndefinedVariable, startPos, lx.pattern, "undefined variable \""+name+"\"")}
}

// evaluateVariable lexes a variable's expansion text (and, if it
// begins a bracketed set, parses it) with no SymbolTable, preventing
// recursive expansion by construction.
func (lx *lexer) evaluateVariable(text, sourceText string) *lexicalElement {
	inner := newLexer(text, nil, lx.resolver, lx.opts)
	first := inner.lookahead()

	if first.isSetOperator('[') {
		set, err := parseUnicodeSet(inner, 0, newRebuildFrame())
		if err != nil {
			return &lexicalElement{kind: kindVariable, sourceText: sourceText, pos: lx.stream.getPos(),
				err: newParseError(ErrMalformedVariableDefinition, 0, text, err.Error())}
		}
		if !inner.atEnd() {
			return &lexicalElement{kind: kindVariable, sourceText: sourceText, pos: lx.stream.getPos(),
				err: newParseError(ErrMalformedVariableDefinition, 0, text, "trailing text after variable expansion")}
		}
		return &lexicalElement{kind: kindVariable, set: set, pos: lx.stream.getPos(), sourceText: sourceText}
	}

	tok := inner.advance()
	if tok.failed() {
		return &lexicalElement{kind: kindVariable, sourceText: sourceText, pos: lx.stream.getPos(), err: tok.err}
	}
	if !inner.atEnd() {
		return &lexicalElement{kind: kindVariable, sourceText: sourceText, pos: lx.stream.getPos(),
			err: newParseError(ErrMalformedVariableDefinition, 0, text, "variable expansion lexes to more than one token")}
	}

	// Inherit the token's category, code point, set, and string, but
	// override its source text to "$name".
	out := *tok
	out.sourceText = sourceText
	out.pos = lx.stream.getPos()
	return &out
}

func (lx *lexer) scanBraced(startPos int) *lexicalElement {
	lx.stream.jumpahead(1) // consume '{'
	var runes []rune
	for {
		if lx.stream.atEnd() {
			return lx.errElement(newParseError(ErrMalformedSet, startPos, lx.pattern, "unterminated {...}"))
		}
		r := lx.stream.peekRaw(0)
		if r == '}' {
			lx.stream.jumpahead(1)
			break
		}
		if patternWhitespace(r) {
			return lx.errElement(newParseError(ErrMalformedSet, lx.stream.getPos(), lx.pattern, "whitespace inside {...} is not allowed"))
		}
		if r == '\\' && lx.stream.peekRaw(1) == 'N' {
			cp, err := lx.scanNamedEscape()
			if err != nil {
				return lx.errElement(err)
			}
			runes = append(runes, cp)
			continue
		}
		if r == '\\' && (lx.stream.peekRaw(1) == 'p' || lx.stream.peekRaw(1) == 'P') {
			return lx.errElement(newParseError(ErrMalformedSet, lx.stream.getPos(), lx.pattern, "\\p is not allowed inside a string literal"))
		}
		cp, _, err := lx.stream.next(charstreamOpts{parseEscapes: true})
		if err != nil {
			return lx.errElement(err)
		}
		runes = append(runes, cp)
	}
	pos := lx.stream.getPos()
	if len(runes) == 1 {
		return &lexicalElement{kind: kindBracketed, cp: runes[0], pos: pos, sourceText: string(lx.sourceSlice(startPos))}
	}
	return &lexicalElement{kind: kindStringLiteral, str: string(runes), pos: pos, sourceText: string(lx.sourceSlice(startPos))}
}

// scanNamedEscape handles a \N{NAME} (or \N{HEX:LITERAL:NAME}) escape
// found inside a {...} string literal.
func (lx *lexer) scanNamedEscape() (rune, error) {
	start := lx.stream.getPos()
	lx.stream.jumpahead(2) // consume '\N'
	return scanNamedCharacter(lx, start)
}

// scanPropertyQuery dispatches [:...:], \p{...}, \P{...}, and \N{...}
// to the property query scanner.
func (lx *lexer) scanPropertyQuery(c1, c2 rune, startPos int) *lexicalElement {
	if c1 == '\\' && c2 == 'N' {
		lx.stream.jumpahead(2)
		cp, err := scanNamedCharacter(lx, startPos)
		if err != nil {
			return lx.errElement(err)
		}
		return &lexicalElement{kind: kindNamed, cp: cp, pos: lx.stream.getPos(), sourceText: string(lx.sourceSlice(startPos))}
	}

	negated := c1 == '\\' && c2 == 'P'
	lx.stream.jumpahead(2)
	set, err := scanPropertyBody(lx, startPos, c1 == '[', negated)
	if err != nil {
		return lx.errElement(err)
	}
	return &lexicalElement{kind: kindPropertyQuery, set: set, pos: lx.stream.getPos(), sourceText: string(lx.sourceSlice(startPos))}
}
