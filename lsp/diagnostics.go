package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/hemanta212/uniset"
)

// publishDiagnostics converts doc.Errors (one per rule line that
// failed to parse) to LSP diagnostics and publishes them.
func (s *Server) publishDiagnostics(ctx context.Context, doc *Document) {
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.Errors))
	for _, re := range doc.Errors {
		diagnostics = append(diagnostics, convertRuleError(re))
	}

	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     uint32(doc.Version), //nolint:gosec // version numbers are always non-negative
		Diagnostics: diagnostics,
	})
	if err != nil {
		s.logger.Error("publishDiagnostics: RPC failed", zap.Error(err))
	}
}

func convertRuleError(re ruleError) protocol.Diagnostic {
	col := re.col
	if pe, ok := re.err.(*uniset.ParseError); ok {
		col += pe.Pos
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(re.line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(re.line), Character: uint32(col + 1)},
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "uniset",
		Message:  re.err.Error(),
	}
}
