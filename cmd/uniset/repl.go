package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/hemanta212/uniset/internal/tui"
)

func replCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "launch the interactive pattern editor",
		Action: runRepl,
	}
}

func runRepl(_ context.Context, cmd *cli.Command) error {
	opts := resolveOptions(cmd)
	resolver := newResolver()
	symbols, err := resolveSymbols(cmd, resolver, opts)
	if err != nil {
		return err
	}

	model := tui.New(symbols, resolver, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
