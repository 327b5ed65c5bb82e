package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hemanta212/uniset"
)

func runWithFlags(t *testing.T, args []string, action func(*cli.Command)) {
	t.Helper()
	cmd := &cli.Command{
		Name: "uniset",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ruleset"},
			&cli.BoolFlag{Name: "ignore-space"},
			&cli.BoolFlag{Name: "case-insensitive"},
			&cli.BoolFlag{Name: "simple-case-insensitive"},
			&cli.BoolFlag{Name: "add-case-mappings"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			action(cmd)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"uniset"}, args...)))
}

func TestResolveOptions_FlagsOverrideDefaults(t *testing.T) {
	runWithFlags(t, []string{"--ignore-space", "--case-insensitive"}, func(cmd *cli.Command) {
		opts := resolveOptions(cmd)
		require.True(t, opts.IgnoreSpace)
		require.Equal(t, uniset.CaseInsensitive, opts.CaseMode)
	})
}

func TestResolveOptions_ZeroValueFallsBackToConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".uniset.yaml"), []byte("ignore_space: true\ncase_mode: add-mappings\n"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	runWithFlags(t, nil, func(cmd *cli.Command) {
		opts := resolveOptions(cmd)
		require.True(t, opts.IgnoreSpace)
		require.Equal(t, uniset.CaseAddMappings, opts.CaseMode)
	})
}

func TestResolveSymbols_NoRulesetReturnsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	runWithFlags(t, nil, func(cmd *cli.Command) {
		symbols, err := resolveSymbols(cmd, newResolver(), uniset.Options{})
		require.NoError(t, err)
		_, ok := symbols.LookupSet("anything")
		require.False(t, ok)
	})
}

func TestResolveSymbols_LoadsRulesetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.ruleset")
	require.NoError(t, os.WriteFile(path, []byte("digits = [0-9]\n"), 0o644))

	runWithFlags(t, []string{"--ruleset", path}, func(cmd *cli.Command) {
		symbols, err := resolveSymbols(cmd, newResolver(), uniset.Options{})
		require.NoError(t, err)
		set, ok := symbols.LookupSet("digits")
		require.True(t, ok)
		require.True(t, set.Contains('5'))
	})
}

func TestResolveSymbols_MissingFileErrors(t *testing.T) {
	runWithFlags(t, []string{"--ruleset", "/no/such/file.ruleset"}, func(cmd *cli.Command) {
		_, err := resolveSymbols(cmd, newResolver(), uniset.Options{})
		require.Error(t, err)
	})
}
