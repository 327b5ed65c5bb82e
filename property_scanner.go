package uniset

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hemanta212/uniset/rangeset"
)

// scanPropertyBody scans the property-query body for `[:…:]`, `\p{…}`,
// and `\P{…}` queries. The caller has already consumed the two
// introducing raw characters (`[:` or `\p`/`\P`).
func scanPropertyBody(lx *lexer, startPos int, posix, negated bool) (*rangeset.Set, error) {
	exteriorNeg := negated
	if posix {
		if lx.stream.peekRaw(0) == '^' {
			exteriorNeg = true
			lx.stream.jumpahead(1)
		}
	} else {
		if lx.stream.peekRaw(0) != '{' {
			return nil, newParseError(ErrIllegalArgument, lx.stream.getPos(), lx.pattern, "expected '{' after \\p or \\P")
		}
		lx.stream.jumpahead(1)
	}

	prop, value, hasOp, interiorNeg, err := scanPropContent(lx, posix)
	if err != nil {
		return nil, err
	}
	if exteriorNeg && interiorNeg {
		return nil, newParseError(ErrIllegalArgument, startPos, lx.pattern, "doubly negated property query")
	}

	set := rangeset.New()
	if err := applyPropertyOrAlias(lx.resolver, set, prop, value, hasOp); err != nil {
		return nil, newParseError(ErrIllegalArgument, startPos, lx.pattern, err.Error())
	}
	if exteriorNeg || interiorNeg {
		if err := set.ComplementCodePoints(); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// scanPropContent reads until the matching closer (`:]` for POSIX,
// `}` otherwise), splitting on the first interior `=` or `≠` (U+2260)
// found outside of the name part.
func scanPropContent(lx *lexer, posix bool) (prop, value string, hasOp, isNotEqual bool, err error) {
	var name, val strings.Builder
	target := &name
	for {
		if posix {
			if lx.stream.peekRaw(0) == ':' && lx.stream.peekRaw(1) == ']' {
				lx.stream.jumpahead(2)
				break
			}
		} else if lx.stream.peekRaw(0) == '}' {
			lx.stream.jumpahead(1)
			break
		}
		if lx.stream.atEnd() {
			return "", "", false, false, newParseError(ErrMalformedSet, lx.stream.getPos(), lx.pattern, "unterminated property query")
		}
		r := lx.stream.peekRaw(0)
		if target == &name && r == '=' {
			hasOp = true
			target = &val
			lx.stream.jumpahead(1)
			continue
		}
		if target == &name && r == '≠' {
			hasOp = true
			isNotEqual = true
			target = &val
			lx.stream.jumpahead(1)
			continue
		}
		cp, _, e := lx.stream.next(charstreamOpts{parseEscapes: true})
		if e != nil {
			return "", "", false, false, e
		}
		target.WriteRune(cp)
	}
	return strings.TrimSpace(name.String()), strings.TrimSpace(val.String()), hasOp, isNotEqual, nil
}

// applyPropertyOrAlias resolves a property query against the
// PropertyResolver. With hasOp the query is `prop=value`; without it,
// prop is itself the bare form and must be resolved as one of: a
// general-category value, a script value, a binary property (value
// defaults to "1"), or one of the special tokens ANY/ASCII/Assigned.
func applyPropertyOrAlias(resolver PropertyResolver, set *rangeset.Set, prop, value string, hasOp bool) error {
	if resolver == nil {
		return newParseError(ErrIllegalArgument, 0, "", "no property resolver configured")
	}
	if hasOp {
		return resolver.ApplyProperty(set, prop, normalizeCCC(prop, value))
	}
	switch prop {
	case bareAliasAny:
		return set.AddRange(0, rangeset.MaxCodePoint)
	case bareAliasASCII:
		return set.AddRange(0, 0x7F)
	case bareAliasAssigned:
		if err := resolver.ApplyProperty(set, "gc", "Cn"); err != nil {
			return err
		}
		return set.ComplementCodePoints()
	}
	return resolver.ApplyProperty(set, "", prop)
}

// normalizeCCC tolerates decimal-digit canonical combining class
// variants by leaving them untouched (the resolver itself parses the
// numeric value); this function exists as the single place that would
// grow further numeric-property tolerance if more were added.
func normalizeCCC(prop, value string) string {
	return value
}

// scanNamedCharacter implements the \N{NAME} / \N{HEX:LITERAL:NAME}
// form. The caller has already consumed the introducing `\N`.
func scanNamedCharacter(lx *lexer, startPos int) (rune, error) {
	if lx.stream.peekRaw(0) != '{' {
		return 0, newParseError(ErrIllegalArgument, lx.stream.getPos(), lx.pattern, "expected '{' after \\N")
	}
	lx.stream.jumpahead(1)

	var content strings.Builder
	for {
		if lx.stream.atEnd() {
			return 0, newParseError(ErrMalformedSet, lx.stream.getPos(), lx.pattern, "unterminated \\N{...}")
		}
		if lx.stream.peekRaw(0) == '}' {
			lx.stream.jumpahead(1)
			break
		}
		cp, _, err := lx.stream.next(charstreamOpts{parseEscapes: true})
		if err != nil {
			return 0, err
		}
		content.WriteRune(cp)
	}

	parts := strings.Split(content.String(), ":")
	var hexPart, literalPart, namePart string
	switch len(parts) {
	case 1:
		namePart = parts[0]
	case 3:
		hexPart, literalPart, namePart = parts[0], parts[1], parts[2]
	default:
		return 0, newParseError(ErrIllegalArgument, startPos, lx.pattern, "malformed \\N{HEX:LITERAL:NAME} form")
	}

	if lx.resolver == nil {
		return 0, newParseError(ErrIllegalArgument, startPos, lx.pattern, "no property resolver configured")
	}
	set := rangeset.New()
	if err := lx.resolver.ApplyProperty(set, "na", namePart); err != nil {
		return 0, newParseError(ErrIllegalArgument, startPos, lx.pattern, err.Error())
	}
	ranges := set.Ranges()
	if len(ranges) != 1 || ranges[0].Lo != ranges[0].Hi {
		return 0, newParseError(ErrIllegalArgument, startPos, lx.pattern, "unknown character name \""+namePart+"\"")
	}
	resolved := ranges[0].Lo

	if hexPart != "" {
		hexVal, err := strconv.ParseInt(hexPart, 16, 32)
		if err != nil {
			return 0, newParseError(ErrIllegalArgument, startPos, lx.pattern, "invalid hex field in \\N{...}")
		}
		litRune, n := utf8.DecodeRuneInString(literalPart)
		if n != len(literalPart) || litRune == utf8.RuneError {
			return 0, newParseError(ErrIllegalArgument, startPos, lx.pattern, "invalid literal field in \\N{...}")
		}
		if rune(hexVal) != resolved || litRune != resolved {
			return 0, newParseError(ErrIllegalArgument, startPos, lx.pattern, "\\N{HEX:LITERAL:NAME} fields disagree")
		}
	}
	return resolved, nil
}
