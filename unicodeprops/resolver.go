// Package unicodeprops implements the Unicode property database that
// uniset's PropertyQueryScanner consults to resolve `\p{...}`,
// `\P{...}`, and `[:...:]` queries. It stands in for the external
// property database the parser treats as an opaque collaborator,
// built from the standard library's `unicode` tables; ApplyFilter
// (inclusions.go) also uses golang.org/x/text/unicode/rangetable to
// merge tables before deriving boundaries.
package unicodeprops

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/hemanta212/uniset/rangeset"
)

// Resolver implements uniset.PropertyResolver.
type Resolver struct{}

// New returns a Resolver backed by the standard library's Unicode
// tables. There is no per-instance state; New exists so callers have
// a value to pass where a PropertyResolver is expected.
func New() *Resolver { return &Resolver{} }

// ApplyProperty adds the members of prop=value to target. An empty
// prop means value is a bare alias (a general category, script, or
// binary property name used without "gc=" / "sc=" / an explicit
// operator), mirroring the scanner's own convention.
func (r *Resolver) ApplyProperty(target *rangeset.Set, prop, value string) error {
	if prop == "" {
		return r.applyBareAlias(target, value)
	}
	switch normalizePropName(prop) {
	case "gc", "generalcategory":
		return applyTable(target, unicode.Categories, value, "general category")
	case "sc", "script":
		return applyTable(target, unicode.Scripts, value, "script")
	case "scx", "scriptextensions":
		// Go's standard library does not ship per-character script
		// extension lists; approximate with the plain script table.
		return applyTable(target, unicode.Scripts, value, "script")
	case "ccc", "canonicalcombiningclass":
		return applyCCC(target, value)
	case "na", "name":
		return applyName(target, value)
	case "age":
		return applyAge(target, value)
	default:
		return r.applyBareAlias(target, prop+"="+value)
	}
}

// applyBareAlias resolves a bare `\p{Name}` / `\p{Name=1}` form: a
// general category value, a script value, or a binary property,
// tried in that order since all three share the same namespace in
// ICU's bare syntax.
func (r *Resolver) applyBareAlias(target *rangeset.Set, value string) error {
	name, want := splitBinaryValue(value)
	if table, ok := unicode.Categories[name]; ok {
		if !want {
			return fmt.Errorf("binary negation not supported for general category %q", name)
		}
		return addTable(target, table)
	}
	if table, ok := unicode.Scripts[name]; ok {
		if !want {
			return fmt.Errorf("binary negation not supported for script %q", name)
		}
		return addTable(target, table)
	}
	if table, ok := unicode.Properties[name]; ok {
		if !want {
			return addTableComplement(target, table)
		}
		return addTable(target, table)
	}
	return fmt.Errorf("unrecognised property or alias %q", value)
}

// splitBinaryValue splits a bare "Name=1" / "Name=0" / "Name" form
// into the property name and whether it is requested true (the
// default) or false.
func splitBinaryValue(value string) (name string, want bool) {
	if i := strings.LastIndexByte(value, '='); i >= 0 {
		v := strings.TrimSpace(value[i+1:])
		return strings.TrimSpace(value[:i]), v != "0" && !strings.EqualFold(v, "N") && !strings.EqualFold(v, "No") && !strings.EqualFold(v, "false")
	}
	return value, true
}

func applyTable(target *rangeset.Set, tables map[string]*unicode.RangeTable, value string, kind string) error {
	table, ok := lookupTable(tables, value)
	if !ok {
		return fmt.Errorf("unrecognised %s value %q", kind, value)
	}
	return addTable(target, table)
}

// lookupTable resolves value against tables case-sensitively first,
// then by ICU-style loose matching (case-insensitive, ignoring '_',
// '-', and space), the usual tolerance for property value aliases.
func lookupTable(tables map[string]*unicode.RangeTable, value string) (*unicode.RangeTable, bool) {
	if t, ok := tables[value]; ok {
		return t, true
	}
	norm := normalizePropName(value)
	for name, t := range tables {
		if normalizePropName(name) == norm {
			return t, true
		}
	}
	return nil, false
}

func normalizePropName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '_', '-', ' ':
			continue
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func addTable(target *rangeset.Set, table *unicode.RangeTable) error {
	for _, r := range table.R16 {
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			if err := target.AddRange(cp, cp); err != nil {
				return err
			}
			if r.Stride == 0 {
				break
			}
		}
	}
	for _, r := range table.R32 {
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			if err := target.AddRange(cp, cp); err != nil {
				return err
			}
			if r.Stride == 0 {
				break
			}
		}
	}
	return nil
}

// addTableComplement adds the complement of table within 0..MaxCodePoint
// to target, for a binary property requested as "Name=0".
func addTableComplement(target *rangeset.Set, table *unicode.RangeTable) error {
	scratch := rangeset.New()
	if err := addTable(scratch, table); err != nil {
		return err
	}
	if err := scratch.ComplementCodePoints(); err != nil {
		return err
	}
	return target.UnionWith(scratch)
}

func applyCCC(target *rangeset.Set, value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid canonical combining class %q", value)
	}
	for _, cp := range cccTable[n] {
		if err := target.AddRange(cp, cp); err != nil {
			return err
		}
	}
	return nil
}

func applyName(target *rangeset.Set, value string) error {
	cp, ok := NameToCodePoint(value)
	if !ok {
		return fmt.Errorf("unrecognised character name %q", value)
	}
	return target.AddRange(cp, cp)
}

func applyAge(target *rangeset.Set, value string) error {
	ranges, ok := ageTable[strings.TrimSpace(value)]
	if !ok {
		return fmt.Errorf("unrecognised Unicode version %q", value)
	}
	for _, r := range ranges {
		if err := target.AddRange(r.Lo, r.Hi); err != nil {
			return err
		}
	}
	return nil
}
