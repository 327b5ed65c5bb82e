package unicodeprops

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/hemanta212/uniset/rangeset"
)

// ageRange mirrors rangeset.Range without importing it into an
// exported table type, keeping this file's seed data self-contained.
type ageRange struct{ Lo, Hi rune }

// ageTable approximates Age (the Unicode version a code point was
// first assigned in) with a handful of historically significant
// versions (echoing ICU's own classic "3.2 age set" example) rather
// than a full per-version assignment history.
var ageTable = map[string][]ageRange{
	"1.1": {{0x0000, 0x00FF}, {0x0100, 0x017F}},
	"2.0": {{0x0000, 0x04FF}, {0x0530, 0x058F}},
	"3.2": {{0x0000, 0x0DFF}, {0x1E00, 0x1FFF}},
	"6.0": {{0x0000, 0x1FFF}, {0x1F300, 0x1F5FF}},
	"9.0": {{0x0000, 0x1FFF}, {0x1F900, 0x1F9FF}},
}

// ApplyFilter derives an "inclusions set" for table on demand: the set
// of code points at which table's membership changes (its run
// boundaries), the Go-idiomatic equivalent of ICU's precomputed
// per-property inclusion sets used to drive exhaustive property-based
// enumeration without iterating every code point.
func ApplyFilter(target *rangeset.Set, table *unicode.RangeTable) error {
	merged := rangetable.Merge(table)
	for _, r16 := range merged.R16 {
		if err := target.AddRange(rune(r16.Lo), rune(r16.Lo)); err != nil {
			return err
		}
		if err := target.AddRange(rune(r16.Hi)+1, rune(r16.Hi)+1); err != nil {
			return err
		}
	}
	for _, r32 := range merged.R32 {
		if err := target.AddRange(rune(r32.Lo), rune(r32.Lo)); err != nil {
			return err
		}
		if err := target.AddRange(rune(r32.Hi)+1, rune(r32.Hi)+1); err != nil {
			return err
		}
	}
	return nil
}
