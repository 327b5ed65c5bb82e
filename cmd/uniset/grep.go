package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/boyter/gocodewalker"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/hemanta212/uniset"
)

func grepCommand() *cli.Command {
	return &cli.Command{
		Name:      "grep",
		Usage:     "print lines containing a code point in the given set",
		ArgsUsage: "<pattern> <paths...>",
		Action:    runGrep,
	}
}

func runGrep(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: uniset grep <pattern> <paths...>")
	}
	pattern := cmd.Args().Get(0)
	paths := cmd.Args().Slice()[1:]

	opts := resolveOptions(cmd)
	resolver := newResolver()
	symbols, err := resolveSymbols(cmd, resolver, opts)
	if err != nil {
		return err
	}

	set, _, err := uniset.ApplyPattern(pattern, symbols, resolver, opts)
	if err != nil {
		return err
	}

	colour := isatty.IsTerminal(os.Stdout.Fd())

	for _, path := range paths {
		if err := grepPath(path, set, colour); err != nil {
			fmt.Fprintln(os.Stderr, "uniset grep:", err)
		}
	}
	return nil
}

// grepPath walks a single root with gocodewalker (honouring
// .gitignore) and greps every file it yields.
func grepPath(path string, set interface{ Contains(rune) bool }, colour bool) error {
	fileListQueue := make(chan *gocodewalker.File, 100)
	walker := gocodewalker.NewFileWalker(path, fileListQueue)
	walker.SetErrorHandler(func(err error) bool {
		fmt.Fprintln(os.Stderr, "uniset grep:", err)
		return true
	})

	go func() {
		_ = walker.Start()
	}()

	for f := range fileListQueue {
		if err := grepFile(f.Location, set, colour); err != nil {
			fmt.Fprintln(os.Stderr, "uniset grep:", err)
		}
	}
	return nil
}

func grepFile(path string, set interface{ Contains(rune) bool }, colour bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !lineContainsMember(line, set) {
			continue
		}
		if colour {
			fmt.Printf("\033[35m%s\033[0m:\033[32m%d\033[0m: %s\n", path, lineNo, line)
		} else {
			fmt.Printf("%s:%d: %s\n", path, lineNo, line)
		}
	}
	return scanner.Err()
}

func lineContainsMember(line string, set interface{ Contains(rune) bool }) bool {
	for _, r := range line {
		if set.Contains(r) {
			return true
		}
	}
	return false
}
