package unicodeprops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemanta212/uniset/rangeset"
)

func TestResolver_GeneralCategory(t *testing.T) {
	r := New()
	s := rangeset.New()
	require.NoError(t, r.ApplyProperty(s, "gc", "Lu"))
	require.True(t, s.Contains('A'))
	require.False(t, s.Contains('a'))
}

func TestResolver_Script(t *testing.T) {
	r := New()
	s := rangeset.New()
	require.NoError(t, r.ApplyProperty(s, "sc", "Greek"))
	require.True(t, s.Contains(0x03B1)) // GREEK SMALL LETTER ALPHA
	require.False(t, s.Contains('a'))
}

func TestResolver_BareAlias(t *testing.T) {
	r := New()
	s := rangeset.New()
	require.NoError(t, r.ApplyProperty(s, "", "Latin"))
	require.True(t, s.Contains('a'))
}

func TestResolver_BareBinaryNegation(t *testing.T) {
	r := New()
	s := rangeset.New()
	require.NoError(t, r.ApplyProperty(s, "", "White_Space=0"))
	require.True(t, s.Contains('a'))
	require.False(t, s.Contains(' '))
}

func TestResolver_UnrecognisedProperty(t *testing.T) {
	r := New()
	s := rangeset.New()
	err := r.ApplyProperty(s, "gc", "NotACategory")
	require.Error(t, err)
}

func TestResolver_Name(t *testing.T) {
	r := New()
	s := rangeset.New()
	require.NoError(t, r.ApplyProperty(s, "na", "LATIN SMALL LETTER A"))
	require.True(t, s.Contains('a'))
	require.Equal(t, 1, s.Count())
}

func TestResolver_CCC(t *testing.T) {
	r := New()
	s := rangeset.New()
	require.NoError(t, r.ApplyProperty(s, "ccc", "230"))
	require.True(t, s.Contains(0x0300))
}

func TestResolver_Age(t *testing.T) {
	r := New()
	s := rangeset.New()
	require.NoError(t, r.ApplyProperty(s, "age", "1.1"))
	require.True(t, s.Contains('A'))
}

func TestSplitBinaryValue(t *testing.T) {
	name, want := splitBinaryValue("Alpha=1")
	require.Equal(t, "Alpha", name)
	require.True(t, want)

	name, want = splitBinaryValue("Alpha=0")
	require.Equal(t, "Alpha", name)
	require.False(t, want)

	name, want = splitBinaryValue("Alpha")
	require.Equal(t, "Alpha", name)
	require.True(t, want)
}

func TestNormalizePropName(t *testing.T) {
	require.Equal(t, "generalcategory", normalizePropName("General_Category"))
	require.Equal(t, "generalcategory", normalizePropName("general-category"))
}
