package testrunner

import "context"

// Handler receives scenario events during a run.
type Handler interface {
	Event(ctx context.Context, event Event, result *Result) error
	Err(text string) error
}

// MultiHandler fans out events to multiple handlers.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a handler that dispatches to multiple handlers.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) Event(ctx context.Context, event Event, result *Result) error {
	for _, h := range m.handlers {
		if err := h.Event(ctx, event, result); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiHandler) Err(text string) error {
	for _, h := range m.handlers {
		if err := h.Err(text); err != nil {
			return err
		}
	}
	return nil
}

// ResultHandler updates the Result accumulator from events.
type ResultHandler struct{}

func NewResultHandler() *ResultHandler { return &ResultHandler{} }

func (h *ResultHandler) Event(_ context.Context, event Event, result *Result) error {
	result.Add(event)
	return nil
}

func (h *ResultHandler) Err(_ string) error { return nil }
