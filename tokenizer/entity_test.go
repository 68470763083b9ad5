package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityTrie_WalkAndLookup(t *testing.T) {
	trie := buildEntityTrie(map[string]string{
		"amp;": "&",
		"amp":  "&",
	})

	root := trie.root
	n1 := root.walk('a')
	require.NotNil(t, n1)
	n2 := n1.walk('m')
	require.NotNil(t, n2)
	n3 := n2.walk('p')
	require.NotNil(t, n3)
	assert.True(t, n3.terminal)
	assert.Equal(t, "&", n3.replacement)

	n4 := n3.walk(';')
	require.NotNil(t, n4)
	assert.True(t, n4.terminal)

	assert.Nil(t, n1.walk('z'))
}

func TestEntityTrie_LookupSequence(t *testing.T) {
	trie := buildEntityTrie(map[string]string{"notin;": "∉", "not;": "¬", "not": "¬"})

	node := trie.lookup([]rune("notin;"))
	require.NotNil(t, node)
	assert.True(t, node.terminal)
	assert.Equal(t, "∉", node.replacement)

	node = trie.lookup([]rune("not"))
	require.NotNil(t, node)
	assert.True(t, node.terminal)

	node = trie.lookup([]rune("noti"))
	require.NotNil(t, node)
	assert.False(t, node.terminal)

	assert.Nil(t, trie.lookup([]rune("zzz")))
}

func TestSharedEntityTrie_KnownEntities(t *testing.T) {
	for _, name := range []string{"amp;", "lt;", "notin;", "copy"} {
		node := sharedEntityTrie.lookup([]rune(name))
		require.NotNilf(t, node, "expected entity %q to be present", name)
		assert.Truef(t, node.terminal, "expected entity %q to be terminal", name)
	}
}
