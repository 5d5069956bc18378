package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func inOrderKeys[K any, V any](tr Tree[K, V]) []K {
	keys := make([]K, 0, tr.Len())
	tr.TraverseInOrder(func(e *Entry[K, V]) bool {
		keys = append(keys, e.Key())
		return true
	})
	return keys
}

func entryKeys[K any, V any](tr Tree[K, V]) []K {
	keys := make([]K, 0, tr.Len())
	for e := range tr.Entries() {
		keys = append(keys, e.Key())
	}
	return keys
}

func searchNode[K any, V any](tr Tree[K, V], key K) *node[K, V] {
	return tr.(*tree[K, V]).search(key)
}

func rootNode[K any, V any](tr Tree[K, V]) *node[K, V] {
	return tr.(*tree[K, V]).root
}

func requireValid[K any, V any](t *testing.T, tr Tree[K, V]) {
	t.Helper()
	require.NoError(t, tr.Validate())
}
