package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hemanta212/uniset"
)

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a single set expression and print its contents",
		ArgsUsage: "<pattern>",
		Action:    runParse,
	}
}

func runParse(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: uniset parse <pattern>")
	}
	pattern := cmd.Args().Get(0)

	opts := resolveOptions(cmd)
	resolver := newResolver()
	symbols, err := resolveSymbols(cmd, resolver, opts)
	if err != nil {
		return err
	}

	set, rebuilt, err := uniset.ApplyPattern(pattern, symbols, resolver, opts)
	if err != nil {
		return err
	}

	fmt.Printf("pattern:  %s\n", rebuilt)
	fmt.Printf("count:    %d\n", set.Count())
	fmt.Println("ranges:")
	for _, r := range set.Ranges() {
		if r.Lo == r.Hi {
			fmt.Printf("  U+%04X\n", r.Lo)
		} else {
			fmt.Printf("  U+%04X..U+%04X\n", r.Lo, r.Hi)
		}
	}
	if strs := set.Strings(); len(strs) > 0 {
		fmt.Println("strings:")
		for s := range strs {
			fmt.Printf("  %q\n", s)
		}
	}
	return nil
}
