// Command uniset-tui is an interactive pattern builder: type a set
// expression and see live parse errors, the rebuilt pattern, and a
// sample of its members.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hemanta212/uniset"
	"github.com/hemanta212/uniset/internal/tui"
	"github.com/hemanta212/uniset/unicodeprops"
)

func main() {
	opts := uniset.Options{}

	cfg, err := uniset.LoadConfig(".")
	if err == nil {
		opts.IgnoreSpace = cfg.IgnoreSpace
		opts.CaseMode = cfg.ResolveCaseMode()
	}

	resolver := unicodeprops.New()
	var symbols uniset.SymbolTable = uniset.MapSymbolTable{}

	if cfg != nil && cfg.Ruleset != "" {
		if f, err := os.Open(cfg.Ruleset); err == nil {
			rs, rsErr := uniset.ParseRulesetFile(f, resolver, opts)
			f.Close()
			if rsErr == nil {
				symbols = rs
			}
		}
	}

	model := tui.New(symbols, resolver, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "uniset-tui:", err)
		os.Exit(1)
	}
}
