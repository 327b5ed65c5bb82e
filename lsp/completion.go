package lsp

import (
	"context"
	"sort"
	"strings"

	"go.lsp.dev/protocol"
)

// generalCategories and binaryProperties back completion inside
// \p{...}, \P{...}, and [:...:] queries. A small curated list rather
// than every name unicode.Categories/Properties carries, matching the
// common case an editor's completion popup is actually useful for.
var generalCategories = []string{
	"L", "Lu", "Ll", "Lt", "Lm", "Lo",
	"M", "Mn", "Mc", "Me",
	"N", "Nd", "Nl", "No",
	"P", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"S", "Sm", "Sc", "Sk", "So",
	"Z", "Zs", "Zl", "Zp",
	"C", "Cc", "Cf", "Co", "Cs", "Cn",
}

var binaryProperties = []string{
	"Alphabetic", "Uppercase", "Lowercase", "White_Space",
	"Noncharacter_Code_Point", "Dash", "Hex_Digit", "Diacritic",
}

// Completion offers property-name candidates inside \p{, \P{, and
// [:...:] queries, and rule-name candidates after a bare "$".
func (s *Server) Completion(_ context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	lines := strings.Split(doc.Content, "\n")
	line := int(params.Position.Line)
	if line < 0 || line >= len(lines) {
		return nil, nil
	}
	col := int(params.Position.Character)
	prefix := lines[line]
	if col >= 0 && col <= len(prefix) {
		prefix = prefix[:col]
	}

	switch {
	case strings.HasSuffix(prefix, "$"):
		return ruleNameCompletions(doc), nil
	case inPropertyQuery(prefix):
		return propertyCompletions(), nil
	default:
		return nil, nil
	}
}

func inPropertyQuery(prefix string) bool {
	i := strings.LastIndexAny(prefix, "{:")
	if i < 0 {
		return false
	}
	return !strings.ContainsAny(prefix[i:], "}]")
}

func propertyCompletions() *protocol.CompletionList {
	items := make([]protocol.CompletionItem, 0, len(generalCategories)+len(binaryProperties))
	for _, name := range generalCategories {
		items = append(items, protocol.CompletionItem{Label: name, Kind: protocol.CompletionItemKindEnumMember})
	}
	for _, name := range binaryProperties {
		items = append(items, protocol.CompletionItem{Label: name, Kind: protocol.CompletionItemKindProperty})
	}
	return &protocol.CompletionList{Items: items}
}

func ruleNameCompletions(doc *Document) *protocol.CompletionList {
	if doc.RuleSet == nil {
		return &protocol.CompletionList{}
	}
	names := doc.RuleSet.Names()
	sort.Strings(names)
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		items = append(items, protocol.CompletionItem{Label: name, Kind: protocol.CompletionItemKindVariable})
	}
	return &protocol.CompletionList{Items: items}
}
