package lsp

import (
	"testing"
)

func TestTraceHandler_StartAndEndDoNotPanic(t *testing.T) {
	s := newTestServer()
	done := s.traceHandler("Hover")
	done()
}
