package lsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemanta212/uniset/rangeset"
)

func TestDescribeSet(t *testing.T) {
	s := rangeset.New()
	require.NoError(t, s.AddRange('a', 'c'))
	text := describeSet("letters", s)
	require.Contains(t, text, "**letters**")
	require.Contains(t, text, "[a-c]")
	require.Contains(t, text, "3 code point(s)")
	require.Contains(t, text, "sample:")
}

func TestSampleMembers_RespectsLimit(t *testing.T) {
	s := rangeset.New()
	require.NoError(t, s.AddRange('a', 'z'))
	samples := sampleMembers(s, 3)
	require.Len(t, samples, 3)
	require.Equal(t, "U+0061", samples[0])
}
