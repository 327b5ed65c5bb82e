package uniset

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Sentinel errors. ParseError wraps one of these; callers compare with
// errors.Is rather than switching on ParseError.Code directly.
var (
	ErrIllegalArgument             = errors.New("uniset: illegal argument")
	ErrMalformedSet                = errors.New("uniset: malformed set")
	ErrMalformedVariableDefinition = errors.New("uniset: malformed variable definition")
	ErrUndefinedVariable           = errors.New("uniset: undefined variable")
	ErrNoWritePermission           = errors.New("uniset: set is frozen")
	ErrMemoryAllocation            = errors.New("uniset: allocation failed")
	ErrVariableRedefinition        = errors.New("uniset: variable already defined")
)

// ParseError reports a failure to parse a pattern, with the cursor
// position (in code points from the start of the pattern passed to
// ApplyPattern) at which the failure was detected. Position carries the
// same offset as a participle lexer.Position; patterns never contain a
// newline, so Line is always 1 and Column tracks Pos+1.
type ParseError struct {
	Sentinel error
	Pos      int
	Position lexer.Position
	Pattern  string
	Detail   string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at offset %d: %s", e.Sentinel, e.Pos, e.Detail)
	}
	return fmt.Sprintf("%s at offset %d", e.Sentinel, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Sentinel
}

func newParseError(sentinel error, pos int, pattern, detail string) *ParseError {
	position := lexer.Position{Filename: "", Offset: pos, Line: 1, Column: pos + 1}
	return &ParseError{Sentinel: sentinel, Pos: pos, Position: position, Pattern: pattern, Detail: detail}
}
