package uniset

import "github.com/hemanta212/uniset/rangeset"

// CaseMode selects how case folding interacts with a parsed set.
type CaseMode int

const (
	// CaseNone performs no case folding.
	CaseNone CaseMode = iota
	// CaseInsensitive applies full case closure (all Unicode case
	// mappings, including multi-code-point foldings where supported).
	CaseInsensitive
	// CaseAddMappings augments the set with simple case mappings without
	// removing anything already present (used when merging into an
	// existing set rather than building from scratch).
	CaseAddMappings
	// CaseSimpleInsensitive restricts closure to single-code-point
	// simple case foldings only (no special-casing expansions).
	CaseSimpleInsensitive
)

// Options bundles the grammar's configuration bits into a single
// options word. The zero value is the strictest, most literal reading
// of a pattern: whitespace significant, no case folding.
type Options struct {
	IgnoreSpace bool
	CaseMode    CaseMode

	// CaseClosureFunc overrides how case closure is applied, mainly for
	// testing. Nil selects rangeset's built-in closure.
	CaseClosureFunc func(s *rangeset.Set, mode CaseMode)
}

// charstreamOpts mirrors CharStream's per-call option flags.
type charstreamOpts struct {
	parseEscapes   bool
	skipWhitespace bool
}
