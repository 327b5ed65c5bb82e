package lsp

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/hemanta212/uniset/rangeset"
)

// Hover shows, for the rule line under the cursor, the rule's canonical
// pattern (regenerated from its set), code-point count, and a short
// sample of its members.
func (s *Server) Hover(_ context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok || doc.RuleSet == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	for _, rl := range doc.Rules {
		if rl.line != line {
			continue
		}
		set, ok := doc.RuleSet.LookupSet(rl.name)
		if !ok {
			return nil, nil
		}
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: describeSet(rl.name, set),
			},
		}, nil
	}
	return nil, nil
}

// describeSet renders a rule's set as a short markdown block: its
// canonical ToPattern form, code-point count, and up to eight sample
// code points.
func describeSet(name string, set *rangeset.Set) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n```\n%s\n```\n\n%d code point(s)", name, set.ToPattern(false), set.Count())

	samples := sampleMembers(set, 8)
	if len(samples) > 0 {
		b.WriteString("\n\nsample: ")
		b.WriteString(strings.Join(samples, " "))
	}
	return b.String()
}

func sampleMembers(set *rangeset.Set, limit int) []string {
	var out []string
	for _, r := range set.Ranges() {
		for cp := r.Lo; cp <= r.Hi; cp++ {
			out = append(out, fmt.Sprintf("U+%04X", cp))
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}
