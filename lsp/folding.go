package lsp

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
)

// FoldingRanges folds each balanced top-level `[...]` region on a rule
// line's pattern, and any nested bracket group within it — a direct
// structural analogue of source folding, since a set pattern's only
// nesting is its own bracket structure.
func (s *Server) FoldingRanges(_ context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	lines := strings.Split(doc.Content, "\n")
	var ranges []protocol.FoldingRange
	for lineNo, line := range lines {
		ranges = append(ranges, bracketFoldsInLine(lineNo, line)...)
	}
	return ranges, nil
}

// bracketFoldsInLine returns one folding range per matched '[' ... ']'
// pair with at least one character between the brackets (an empty
// "[]" yields none) found on a single line (ruleset patterns are single-line, so
// folding is always within-line, collapsing to a start/end character
// range rather than a multi-line fold).
func bracketFoldsInLine(lineNo int, line string) []protocol.FoldingRange {
	var stack []int
	var out []protocol.FoldingRange
	for i, r := range line {
		switch r {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				continue
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if i > start+1 {
				out = append(out, protocol.FoldingRange{
					StartLine:      uint32(lineNo),
					StartCharacter: uint32(start),
					EndLine:        uint32(lineNo),
					EndCharacter:   uint32(i),
					Kind:           protocol.FoldingRangeKindRegion,
				})
			}
		}
	}
	return out
}
