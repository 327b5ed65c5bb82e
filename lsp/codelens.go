package lsp

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"
)

// CodeLens shows a "N code points" lens above each rule line that
// parsed successfully.
func (s *Server) CodeLens(_ context.Context, params *protocol.CodeLensParams) ([]protocol.CodeLens, error) {
	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok || doc.RuleSet == nil {
		return nil, nil
	}

	lenses := make([]protocol.CodeLens, 0, len(doc.Rules))
	for _, rl := range doc.Rules {
		set, ok := doc.RuleSet.LookupSet(rl.name)
		if !ok {
			continue
		}
		lenses = append(lenses, protocol.CodeLens{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(rl.line), Character: 0},
				End:   protocol.Position{Line: uint32(rl.line), Character: 0},
			},
			Command: &protocol.Command{
				Title: fmt.Sprintf("%d code point(s)", set.Count()),
			},
		})
	}
	return lenses, nil
}
