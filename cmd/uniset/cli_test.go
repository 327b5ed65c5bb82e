package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "uniset",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ruleset"},
			&cli.BoolFlag{Name: "ignore-space"},
			&cli.BoolFlag{Name: "case-insensitive"},
			&cli.BoolFlag{Name: "simple-case-insensitive"},
			&cli.BoolFlag{Name: "add-case-mappings"},
		},
		Commands: []*cli.Command{
			parseCommand(),
			grepCommand(),
			replCommand(),
			checkCommand(),
		},
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestCLI_Parse(t *testing.T) {
	out := captureStdout(t, func() {
		err := rootCommand().Run(context.Background(), []string{"uniset", "parse", "[a-c]"})
		require.NoError(t, err)
	})
	require.Contains(t, out, "pattern:  [a-c]")
	require.Contains(t, out, "count:    3")
	require.Contains(t, out, "U+0061..U+0063")
}

func TestCLI_Parse_MissingArgument(t *testing.T) {
	err := rootCommand().Run(context.Background(), []string{"uniset", "parse"})
	require.Error(t, err)
}

func TestCLI_Check_AllOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.ruleset")
	require.NoError(t, os.WriteFile(path, []byte("vowels = [aeiou]\n"), 0o644))

	out := captureStdout(t, func() {
		err := rootCommand().Run(context.Background(), []string{"uniset", "check", path})
		require.NoError(t, err)
	})
	require.Contains(t, out, "1 rule(s) ok, 0 failed")
}

func TestCLI_Check_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ruleset")
	require.NoError(t, os.WriteFile(path, []byte("broken line\nvowels = [aeiou]\n"), 0o644))

	var runErr error
	out := captureStdout(t, func() {
		runErr = rootCommand().Run(context.Background(), []string{"uniset", "check", path})
	})
	require.Error(t, runErr)
	require.Contains(t, out, "expected \"name = pattern\"")
	require.Contains(t, out, "1 rule(s) ok, 1 failed")
}
