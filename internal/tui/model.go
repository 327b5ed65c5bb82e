// Package tui implements the interactive pattern-builder model for
// uniset repl: a single-pane editor where the user types a set
// expression and sees live parse errors, the rebuilt pattern, and a
// sample of the set's members on every keystroke.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hemanta212/uniset"
	"github.com/hemanta212/uniset/rangeset"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0)
)

// Model is the bubbletea model for the pattern builder. It is kept
// deliberately free of any terminal I/O so Update's state transitions
// can be asserted directly in tests without a terminal.
type Model struct {
	symbols  uniset.SymbolTable
	resolver uniset.PropertyResolver
	opts     uniset.Options

	input textinput.Model

	rebuilt string
	set     *rangeset.Set
	parseAt int
	err     error

	width, height int
}

// New builds a Model that parses against symbols/resolver/opts.
func New(symbols uniset.SymbolTable, resolver uniset.PropertyResolver, opts uniset.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "[a-z\\p{Greek}]"
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 60

	return Model{symbols: symbols, resolver: resolver, opts: opts, input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

// reparse re-runs ApplyPattern against the current input and stores
// the result, called after every keystroke.
func (m *Model) reparse() {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.set, m.rebuilt, m.err = nil, "", nil
		return
	}
	set, rebuilt, err := uniset.ApplyPattern(text, m.symbols, m.resolver, m.opts)
	m.set, m.rebuilt, m.err = set, rebuilt, err
	if pe, ok := err.(*uniset.ParseError); ok {
		m.parseAt = pe.Pos
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" uniset "))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.input.Value() == "":
		b.WriteString(dimStyle.Render("type a set expression, e.g. [a-z\\p{Greek}]"))
	case m.err != nil:
		b.WriteString(errStyle.Render(fmt.Sprintf("error at offset %d: %v", m.parseAt, m.err)))
		b.WriteString("\n")
		b.WriteString(caretLine(m.input.Value(), m.parseAt))
	default:
		b.WriteString(okStyle.Render("rebuilt: " + m.rebuilt))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d code point(s)", m.set.Count()))
		if samples := sampleMembers(m.set, 12); len(samples) > 0 {
			b.WriteString("\n" + strings.Join(samples, " "))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc: quit"))
	return b.String()
}

func caretLine(input string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(input) {
		pos = len(input)
	}
	return dimStyle.Render(strings.Repeat(" ", pos) + "^")
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
