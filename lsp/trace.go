package lsp

import (
	"time"

	"go.uber.org/zap"
)

// traceHandler logs entry and exit of a handler, for tracking down a
// slow or hung request during LSP development.
func (s *Server) traceHandler(name string) func() {
	start := time.Now()
	s.logger.Debug(">>> handler start", zap.String("handler", name))
	return func() {
		s.logger.Debug("<<< handler end", zap.String("handler", name), zap.Duration("elapsed", time.Since(start)))
	}
}
