package testrunner

import "github.com/hemanta212/uniset"

// Scenarios is the conformance table: concrete end-to-end inputs and
// their expected outputs.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "1 [a-z]",
			Pattern:     `[a-z]`,
			WantRebuilt: `[a-z]`,
			WantMembers: []rune{'a', 'm', 'z'},
		},
		{
			Name:        "2 [^a-cA-C]",
			Pattern:     `[^a-cA-C]`,
			WantRebuilt: `[^A-Ca-c]`,
		},
		{
			Name:        "3 [[a-z]-[aeiou]]",
			Pattern:     `[[a-z]-[aeiou]]`,
			WantRebuilt: `[[a-z]-[aeiou]]`,
			WantMembers: []rune{'b', 'c', 'd', 'z'},
		},
		{
			Name:        "4 [[a-z]&[m-q]]",
			Pattern:     `[[a-z]&[m-q]]`,
			WantRebuilt: `[[a-z]&[m-q]]`,
			WantMembers: []rune{'m', 'p', 'q'},
		},
		{
			Name:        "5 [{foo}{bar}a]",
			Pattern:     `[{foo}{bar}a]`,
			WantRebuilt: `[a{bar}{foo}]`,
			WantMembers: []rune{'a'},
			WantStrings: []string{"foo", "bar"},
		},
		{
			Name:    "6 [\\p{L}&[\\u0000-\\u00FF]]",
			Pattern: "[\\p{L}&[\\u0000-\\u00FF]]",
		},
		{
			Name:        "7 [-a-c-]",
			Pattern:     `[-a-c-]`,
			WantRebuilt: `[\-a-c-]`,
			WantMembers: []rune{'-', 'a', 'b', 'c'},
		},
		{
			Name:        "8 [a-] ignore_space",
			Pattern:     `[a-]`,
			Opts:        uniset.Options{IgnoreSpace: true},
			WantRebuilt: `[\-a]`,
			WantMembers: []rune{'a', '-'},
		},
		{
			Name:        "9 \\N ranges",
			Pattern:     `[\N{LATIN SMALL LETTER A}-\N{LATIN SMALL LETTER C}]`,
			WantRebuilt: `[a-c]`,
			WantMembers: []rune{'a', 'b', 'c'},
		},
		{
			Name:    "11 [x-a]",
			Pattern: `[x-a]`,
			WantErr: uniset.ErrIllegalArgument,
		},
		{
			Name:    "12 [{abc",
			Pattern: `[{abc`,
			WantErr: uniset.ErrMalformedSet,
		},
	}
}
