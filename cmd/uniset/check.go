package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hemanta212/uniset"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "parse every rule in a ruleset file and report errors",
		ArgsUsage: "<ruleset-file>",
		Action:    runCheck,
	}
}

func runCheck(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: uniset check <ruleset-file>")
	}
	path := cmd.Args().Get(0)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := resolveOptions(cmd)
	resolver := newResolver()
	rs := uniset.NewRuleSet(resolver, opts)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	failures := 0
	defined := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			fmt.Printf("%s:%d: expected \"name = pattern\", got %q\n", path, lineNo, line)
			failures++
			continue
		}
		name := strings.TrimSpace(line[:eq])
		pattern := strings.TrimSpace(line[eq+1:])

		if err := rs.Define(name, pattern); err != nil {
			if pe, ok := err.(*uniset.ParseError); ok {
				fmt.Printf("%s:%d:%d: %v\n", path, lineNo, pe.Position.Column, err)
			} else {
				fmt.Printf("%s:%d: %v\n", path, lineNo, err)
			}
			failures++
			continue
		}
		defined++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("%d rule(s) ok, %d failed\n", defined, failures)
	if failures > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
