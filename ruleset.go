package uniset

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hemanta212/uniset/rangeset"
)

// MapSymbolTable is the minimal SymbolTable reference implementation:
// a name-to-source-text map, never pre-parsed. Looking up a name
// always goes through Lookup, exercising the "$X maps to source E"
// expansion path in full on every reference.
type MapSymbolTable map[string]string

func (m MapSymbolTable) ParseReference(text []rune, pos, limit int) (string, int) {
	return parseIdentifier(text, pos, limit)
}

func (m MapSymbolTable) Lookup(name string) (string, bool) {
	text, ok := m[name]
	return text, ok
}

func (m MapSymbolTable) LookupSet(name string) (*rangeset.Set, bool) {
	return nil, false
}

// parseIdentifier implements the SymbolTable contract's
// ParseReference rule: ID_Start then zero or more ID_Continue.
func parseIdentifier(text []rune, pos, limit int) (string, int) {
	if pos < 0 || pos >= limit || pos >= len(text) || !isIdentStart(text[pos]) {
		return "", pos
	}
	end := pos + 1
	for end < limit && end < len(text) && isIdentContinue(text[end]) {
		end++
	}
	return string(text[pos:end]), end
}

// RuleSet is an incrementally-built SymbolTable backing the CLI, LSP,
// and TUI tools. Each Define call parses its pattern against the
// RuleSet itself, so later rules may reference earlier ones by name,
// and caches the resulting set rather than the source text —
// exercising the "$X maps to a pre-parsed set" SymbolTable path.
type RuleSet struct {
	symbols  PropertyResolver
	opts     Options
	order    []string
	patterns map[string]string
	sets     map[string]*rangeset.Set
}

// NewRuleSet returns an empty RuleSet that resolves property queries
// against resolver and parses with opts.
func NewRuleSet(resolver PropertyResolver, opts Options) *RuleSet {
	return &RuleSet{
		symbols:  resolver,
		opts:     opts,
		patterns: make(map[string]string),
		sets:     make(map[string]*rangeset.Set),
	}
}

func (rs *RuleSet) ParseReference(text []rune, pos, limit int) (string, int) {
	return parseIdentifier(text, pos, limit)
}

func (rs *RuleSet) Lookup(name string) (string, bool) {
	text, ok := rs.patterns[name]
	return text, ok
}

func (rs *RuleSet) LookupSet(name string) (*rangeset.Set, bool) {
	set, ok := rs.sets[name]
	return set, ok
}

// Define parses pattern (which may reference any name already defined
// in rs via "$name") and binds the result to name. Redefining an
// existing name fails with ErrVariableRedefinition; referencing a name
// not yet defined fails with ErrUndefinedVariable, exactly as the core
// parser would for a forward reference.
func (rs *RuleSet) Define(name, pattern string) error {
	if _, exists := rs.patterns[name]; exists {
		return newParseError(ErrVariableRedefinition, 0, pattern, "rule \""+name+"\" is already defined")
	}
	set, _, err := ApplyPattern(pattern, rs, rs.symbols, rs.opts)
	if err != nil {
		return err
	}
	rs.patterns[name] = pattern
	rs.sets[name] = set
	rs.order = append(rs.order, name)
	return nil
}

// Names returns the defined rule names in definition order.
func (rs *RuleSet) Names() []string {
	return append([]string(nil), rs.order...)
}

// ParseRulesetFile reads the line-oriented ruleset file format (one
// "name = pattern" definition per line, "#" comments, blank lines
// ignored) and defines each rule in file order, so a forward reference
// to a name defined later in the file fails exactly as an inline "$"
// reference would.
func ParseRulesetFile(r io.Reader, resolver PropertyResolver, opts Options) (*RuleSet, error) {
	rs := NewRuleSet(resolver, opts)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return nil, fmt.Errorf("ruleset line %d: expected \"name = pattern\", got %q", lineNo, line)
		}
		name := strings.TrimSpace(line[:eq])
		pattern := strings.TrimSpace(line[eq+1:])
		if name == "" || !isValidIdentifier(name) {
			return nil, fmt.Errorf("ruleset line %d: %q is not a valid rule name", lineNo, name)
		}
		if err := rs.Define(name, pattern); err != nil {
			return nil, fmt.Errorf("ruleset line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

func isValidIdentifier(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 || !isIdentStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isIdentContinue(r) {
			return false
		}
	}
	return true
}

// WriteRulesetFile serializes rs back to the ruleset file format,
// writing each rule's name and a canonical pattern regenerated from
// its set (ToPattern) in definition order.
func WriteRulesetFile(w io.Writer, rs *RuleSet) error {
	for _, name := range rs.Names() {
		set := rs.sets[name]
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, set.ToPattern(false)); err != nil {
			return err
		}
	}
	return nil
}

// sortedCopy returns a sorted copy of names, a deterministically
// ordered view independent of definition order. Nothing in the module
// calls it.
func sortedCopy(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
