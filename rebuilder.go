package uniset

import (
	"strings"

	"github.com/hemanta212/uniset/rangeset"
)

// rebuildFrame accumulates the pieces PatternRebuilder needs while a
// single UnicodeSet frame (one matched '[' ... ']', or a bare
// property-query/named-element/variable) is parsed: the structural
// text (token source, concatenated) and whether the frame so far is
// "pure" — built only from plain ranges with no nested bracket,
// property query, variable, or anchor. A pure outermost frame's
// rebuilt pattern is regenerated from the final set value instead of
// from accumulated source text. negated/preNegatePattern let a pure
// frame that was complemented at its own top level still regenerate a
// minimised `[^...]` form, since the complement has already overwritten
// the set's ranges by the time buildRebuiltPattern sees it.
type rebuildFrame struct {
	text    strings.Builder
	pure    bool
	negated bool

	preNegatePattern string
}

func newRebuildFrame() *rebuildFrame {
	return &rebuildFrame{pure: true}
}

func (f *rebuildFrame) appendRaw(s string) {
	f.text.WriteString(s)
}

func (f *rebuildFrame) markImpure() { f.pure = false }

// markNegated records that the current (still pure) frame was negated,
// capturing pre's pattern before the caller complements it in place.
func (f *rebuildFrame) markNegated(pre *rangeset.Set) {
	f.negated = true
	f.preNegatePattern = pre.ToPattern(false)
}

func (f *rebuildFrame) String() string { return f.text.String() }

// buildRebuiltPattern renders the outermost frame of a completed
// parse: when the frame is pure, the pattern is regenerated from set
// (producing a minimised canonical form) — or, if the frame was
// negated, from the pre-complement ranges with a leading '^' spliced
// back in; otherwise the structural text accumulated while parsing is
// used, preserving nesting.
func buildRebuiltPattern(set *rangeset.Set, frame *rebuildFrame) string {
	if frame.pure {
		if frame.negated {
			return "[^" + strings.TrimPrefix(frame.preNegatePattern, "[")
		}
		return set.ToPattern(false)
	}
	return frame.String()
}
