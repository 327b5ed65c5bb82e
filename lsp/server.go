// Package lsp implements a Language Server Protocol server for uniset
// ruleset files.
package lsp

import (
	"context"
	"strings"
	"sync"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/hemanta212/uniset"
	"github.com/hemanta212/uniset/unicodeprops"
)

// Document is one open ruleset file and its most recently parsed
// state.
type Document struct {
	URI     protocol.DocumentURI
	Version int32
	Content string

	RuleSet *uniset.RuleSet
	Rules   []ruleLine
	Errors  []ruleError
}

// ruleLine records, for one source line, the rule name it defines (if
// any) and the byte offset of its pattern, for hover/completion/
// folding/codeLens to map back to document positions.
type ruleLine struct {
	line       int
	name       string
	patternCol int
}

type ruleError struct {
	line int
	col  int
	err  error
}

// Server implements the subset of the LSP Server interface this
// module's ruleset tooling grounds in real, exercised behaviour:
// document sync, diagnostics, hover, completion, folding ranges, and
// code lens. Capabilities with no corresponding handler are not
// advertised in Initialize's ServerCapabilities.
type Server struct {
	client protocol.Client
	logger *zap.Logger

	resolver uniset.PropertyResolver

	mu        sync.RWMutex
	documents map[protocol.DocumentURI]*Document

	initialized bool
	shutdown    bool
}

// NewServer creates a ruleset-file LSP server.
func NewServer(client protocol.Client, logger *zap.Logger) *Server {
	return &Server{
		client:    client,
		logger:    logger,
		resolver:  unicodeprops.New(),
		documents: make(map[protocol.DocumentURI]*Document),
	}
}

func (s *Server) Initialize(_ context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s.logger.Info("Initialize")
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			HoverProvider: true,
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{"$", "{", ":"},
			},
			FoldingRangeProvider: true,
			CodeLensProvider: &protocol.CodeLensOptions{
				ResolveProvider: false,
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "uniset-lsp",
			Version: "0.1.0",
		},
	}, nil
}

func (s *Server) Initialized(_ context.Context, _ *protocol.InitializedParams) error {
	s.initialized = true
	return nil
}

func (s *Server) Shutdown(_ context.Context) error {
	s.shutdown = true
	return nil
}

func (s *Server) Exit(_ context.Context) error {
	return nil
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := &Document{
		URI:     params.TextDocument.URI,
		Version: params.TextDocument.Version,
		Content: params.TextDocument.Text,
	}
	s.reparse(doc)

	s.mu.Lock()
	s.documents[doc.URI] = doc
	s.mu.Unlock()

	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.mu.Lock()
	doc, ok := s.documents[params.TextDocument.URI]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	if len(params.ContentChanges) > 0 {
		doc.Content = params.ContentChanges[len(params.ContentChanges)-1].Text
		doc.Version = params.TextDocument.Version
		s.reparse(doc)
	}
	s.mu.Unlock()

	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()

	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	if err != nil {
		s.logger.Error("failed to clear diagnostics", zap.Error(err))
	}
	return nil
}

func (s *Server) DidSave(_ context.Context, _ *protocol.DidSaveTextDocumentParams) error {
	return nil
}

func (s *Server) getDocument(uri protocol.DocumentURI) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[uri]
	return doc, ok
}

// reparse rebuilds doc.RuleSet, doc.Rules, and doc.Errors from
// doc.Content by defining each "name = pattern" line in file order, the
// same forward-reference-sensitive behaviour ParseRulesetFile gives a
// file on disk.
func (s *Server) reparse(doc *Document) {
	rs := uniset.NewRuleSet(s.resolver, uniset.Options{})
	doc.Rules = nil
	doc.Errors = nil

	lines := strings.Split(doc.Content, "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			doc.Errors = append(doc.Errors, ruleError{line: i, col: 0, err: uniset.ErrMalformedSet})
			continue
		}
		name := strings.TrimSpace(line[:eq])
		pattern := strings.TrimSpace(line[eq+1:])
		patternCol := strings.Index(raw, pattern)
		if err := rs.Define(name, pattern); err != nil {
			doc.Errors = append(doc.Errors, ruleError{line: i, col: patternCol, err: err})
			continue
		}
		doc.Rules = append(doc.Rules, ruleLine{line: i, name: name, patternCol: patternCol})
	}
	doc.RuleSet = rs
}
