package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemanta212/uniset/rangeset"
)

func TestLineContainsMember(t *testing.T) {
	s := rangeset.New()
	require.NoError(t, s.AddRange('0', '9'))
	require.True(t, lineContainsMember("hello 5 world", s))
	require.False(t, lineContainsMember("hello world", s))
}

func TestGrepFile_PrintsMatchingLines(t *testing.T) {
	s := rangeset.New()
	require.NoError(t, s.AddRange('0', '9'))

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta2\ngamma\n"), 0o644))

	out := captureStdout(t, func() {
		require.NoError(t, grepFile(path, s, false))
	})
	require.Contains(t, out, "beta2")
	require.NotContains(t, out, "alpha\n")
}
