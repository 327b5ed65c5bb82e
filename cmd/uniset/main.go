// Command uniset is a command-line front end for the uniset set
// expression grammar: parse a single pattern, grep files by set
// membership, launch the interactive editor, or check a ruleset file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hemanta212/uniset"
	"github.com/hemanta212/uniset/unicodeprops"
)

func main() {
	app := &cli.Command{
		Name:  "uniset",
		Usage: "parse and query ICU-style Unicode set expressions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ruleset",
				Usage: "ruleset file defining $name variables",
			},
			&cli.BoolFlag{
				Name:  "ignore-space",
				Usage: "ignore whitespace between elements",
			},
			&cli.BoolFlag{
				Name:  "case-insensitive",
				Usage: "apply full case folding closure",
			},
			&cli.BoolFlag{
				Name:  "simple-case-insensitive",
				Usage: "apply simple case folding closure",
			},
			&cli.BoolFlag{
				Name:  "add-case-mappings",
				Usage: "add case mappings without removing originals",
			},
		},
		Commands: []*cli.Command{
			parseCommand(),
			grepCommand(),
			replCommand(),
			checkCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "uniset:", err)
		os.Exit(1)
	}
}

// resolveOptions builds Options from global flags, falling back to
// .uniset.yaml for any flag left at its zero value.
func resolveOptions(cmd *cli.Command) uniset.Options {
	cfg, _ := uniset.LoadConfig(".")

	opts := uniset.Options{
		IgnoreSpace: cmd.Bool("ignore-space"),
	}
	if !opts.IgnoreSpace && cfg != nil {
		opts.IgnoreSpace = cfg.IgnoreSpace
	}

	switch {
	case cmd.Bool("case-insensitive"):
		opts.CaseMode = uniset.CaseInsensitive
	case cmd.Bool("simple-case-insensitive"):
		opts.CaseMode = uniset.CaseSimpleInsensitive
	case cmd.Bool("add-case-mappings"):
		opts.CaseMode = uniset.CaseAddMappings
	case cfg != nil:
		opts.CaseMode = cfg.ResolveCaseMode()
	}

	return opts
}

// resolveSymbols loads the ruleset named by --ruleset (or the config
// default), returning an empty MapSymbolTable when none is given.
func resolveSymbols(cmd *cli.Command, resolver uniset.PropertyResolver, opts uniset.Options) (uniset.SymbolTable, error) {
	path := cmd.String("ruleset")
	if path == "" {
		if cfg, err := uniset.LoadConfig("."); err == nil {
			path = cfg.Ruleset
		}
	}
	if path == "" {
		return uniset.MapSymbolTable{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ruleset %s: %w", path, err)
	}
	defer f.Close()

	rs, err := uniset.ParseRulesetFile(f, resolver, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing ruleset %s: %w", path, err)
	}
	return rs, nil
}

func newResolver() uniset.PropertyResolver {
	return unicodeprops.New()
}
