package testrunner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Formatter renders scenario events and the final result.
type Formatter interface {
	Format(event Event, result *Result) error
	Summary(result *Result) error
}

// FormatHandler is a Handler that delegates to a Formatter.
type FormatHandler struct {
	formatter Formatter
	stderr    io.Writer
}

// NewFormatHandler creates a handler that formats events.
func NewFormatHandler(f Formatter, stderr io.Writer) *FormatHandler {
	return &FormatHandler{formatter: f, stderr: stderr}
}

func (h *FormatHandler) Event(_ context.Context, event Event, result *Result) error {
	return h.formatter.Format(event, result)
}

// Err writes to stderr.
func (h *FormatHandler) Err(text string) error {
	_, err := h.stderr.Write([]byte(text + "\n"))
	return err
}

// Summary renders the final summary.
func (h *FormatHandler) Summary(result *Result) error {
	return h.formatter.Summary(result)
}

// TerminalFormatter prints one coloured line per terminal event and a
// styled summary.
type TerminalFormatter struct {
	w io.Writer
}

// NewTerminalFormatter creates a lipgloss-styled formatter.
func NewTerminalFormatter(w io.Writer) *TerminalFormatter {
	return &TerminalFormatter{w: w}
}

func (t *TerminalFormatter) Format(event Event, _ *Result) error {
	switch event.Action {
	case ActionPass:
		_, _ = fmt.Fprintf(t.w, "%s %s\n", passStyle.Render("PASS"), event.PathString())
	case ActionFail:
		_, _ = fmt.Fprintf(t.w, "%s %s\n", failStyle.Render("FAIL"), event.PathString())
		if event.Field != "" {
			_, _ = fmt.Fprintf(t.w, "  %s\n", dimStyle.Render(event.Field))
			_, _ = fmt.Fprintf(t.w, "    expected: %v\n", event.Expected)
			_, _ = fmt.Fprintf(t.w, "    actual:   %v\n", event.Actual)
		}
	case ActionError:
		_, _ = fmt.Fprintf(t.w, "%s %s: %v\n", failStyle.Render("ERROR"), event.PathString(), event.Error)
	case ActionRun, ActionOutput:
	}
	return nil
}

func (t *TerminalFormatter) Summary(result *Result) error {
	status := passStyle.Render("PASS")
	if !result.Ok() {
		status = failStyle.Render("FAIL")
	}
	_, _ = fmt.Fprintf(t.w, "\n%s %d scenario(s), %d passed, %d failed, %d errors in %s\n",
		status, result.Total, result.Passed, result.Failed, result.Errors,
		result.Elapsed().Round(time.Millisecond))

	for _, tr := range result.FailedTests() {
		_, _ = fmt.Fprintf(t.w, "  %s %s\n", dimStyle.Render("-"), tr.PathString())
	}
	return nil
}
