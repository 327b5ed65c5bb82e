package lsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInPropertyQuery(t *testing.T) {
	require.True(t, inPropertyQuery(`\p{`))
	require.True(t, inPropertyQuery(`[:`))
	require.False(t, inPropertyQuery(`\p{gc=Lu}`))
	require.False(t, inPropertyQuery(`[a-z]`))
}

func TestPropertyCompletions(t *testing.T) {
	list := propertyCompletions()
	require.Equal(t, len(generalCategories)+len(binaryProperties), len(list.Items))
}

func TestRuleNameCompletions_Sorted(t *testing.T) {
	s := newTestServer()
	doc := &Document{Content: "zed = [a-z]\nalpha = [0-9]\n"}
	s.reparse(doc)

	list := ruleNameCompletions(doc)
	require.Len(t, list.Items, 2)
	require.Equal(t, "alpha", list.Items[0].Label)
	require.Equal(t, "zed", list.Items[1].Label)
}

func TestRuleNameCompletions_NilRuleSet(t *testing.T) {
	list := ruleNameCompletions(&Document{})
	require.Empty(t, list.Items)
}
