package tree

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAVLTreeInsertSorted(t *testing.T) {
	tr, err := NewAVLTree[int, int]()
	require.NoError(t, err)
	require.Equal(t, AVL, tr.Kind())
	require.NoError(t, tr.InsertKeys(1, 3, 5, 7, 9))
	require.False(t, tr.IsEmpty())
	require.Equal(t, int64(5), tr.Len())

	/*
		  3
		 / \
		1   7
		   / \
		  5   9
	Inserting 9 unbalances 5 first, the zag there promotes 7 and 3
	stays the root. Removing 1 from this shape gives 7(3(-, 5), 9),
	see TestAVLTreeRemove.
	*/
	root := rootNode(tr)
	require.Equal(t, searchNode(tr, 3), root)
	require.Equal(t, 1, root.left.Key())
	require.Equal(t, 7, root.right.Key())
	require.Equal(t, 5, root.right.left.Key())
	require.Equal(t, 9, root.right.right.Key())
	require.Equal(t, 2, tr.Height())
	requireValid(t, tr)
}

func TestAVLTreeRemove(t *testing.T) {
	tr, err := NewAVLTree[int, int]()
	require.NoError(t, err)
	require.NoError(t, tr.InsertKeys(1, 3, 5, 7, 9))
	require.Equal(t, rootNode(tr), searchNode(tr, 3))

	e, ok := tr.Remove(1)
	require.True(t, ok)
	require.Equal(t, 1, e.Key())
	requireValid(t, tr)

	/*
		    7
		   / \
		  3   9
		   \
		    5
	*/
	root := rootNode(tr)
	require.Equal(t, searchNode(tr, 7), root)
	require.Equal(t, root, root.left.parent)
	require.Equal(t, searchNode(tr, 3), root.left)
	require.Equal(t, searchNode(tr, 9), root.right)
	require.Equal(t, searchNode(tr, 5), root.left.right)
	require.Equal(t, root.left, root.left.right.parent)
	require.Equal(t, 2, tr.Height())
}

func TestAVLTreeRotations(t *testing.T) {
	testcases := []struct {
		name     string
		keys     []int
		preOrder []int
	}{
		{"left-left", []int{30, 20, 10}, []int{20, 10, 30}},
		{"left-right", []int{30, 10, 20}, []int{20, 10, 30}},
		{"right-right", []int{10, 20, 30}, []int{20, 10, 30}},
		{"right-left", []int{10, 30, 20}, []int{20, 10, 30}},
		{"deep", []int{50, 20, 70, 10, 30, 25}, []int{30, 20, 10, 25, 50, 70}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := NewAVLTree[int, int]()
			require.NoError(t, err)
			require.NoError(t, tr.InsertKeys(tc.keys...))
			keys := make([]int, 0, len(tc.keys))
			tr.TraversePreOrder(func(e *Entry[int, int]) bool {
				keys = append(keys, e.Key())
				return true
			})
			require.Equal(t, tc.preOrder, keys)
			requireValid(t, tr)
		})
	}
}

/*
The removal may rotate more than once on the way up to the root.

	              8
	         /         \
	        5           11
	      /   \        /  \
	     3     7     10    12
	    / \   /      /
	   2   4 6      9
	  /
	 1

Removing 12 unbalances 11 first, then 8.
*/
func TestAVLTreeRemoveCascade(t *testing.T) {
	tr, err := NewAVLTree[int, int](WithTreeInvariantCheck[int, int]())
	require.NoError(t, err)
	require.NoError(t, tr.InsertKeys(8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1))
	require.Equal(t, 8, tr.Root().Key())
	require.Equal(t, 4, tr.Height())

	_, ok := tr.Remove(12)
	require.True(t, ok)
	requireValid(t, tr)
	require.Equal(t, 5, tr.Root().Key())
	require.Equal(t, 3, tr.Height())
	keys := make([]int, 0, 11)
	tr.TraversePreOrder(func(e *Entry[int, int]) bool {
		keys = append(keys, e.Key())
		return true
	})
	require.Equal(t, []int{5, 3, 2, 1, 4, 8, 7, 6, 10, 9, 11}, keys)
}

func TestAVLTreeRandomInsert(t *testing.T) {
	for i := 0; i < 10; i++ {
		tr, err := NewAVLTree[int, int]()
		require.NoError(t, err)
		for j := 0; j < 1000; j++ {
			require.NoError(t, tr.Insert(randv2.IntN(250), j))
			require.False(t, tr.IsEmpty())
			require.Equal(t, int64(j+1), tr.Len())
			if j%50 == 0 {
				requireValid(t, tr)
			}
		}
		requireValid(t, tr)
	}
}

func TestAVLTreeRandomRemove(t *testing.T) {
	for i := 0; i < 10; i++ {
		tr, err := NewAVLTree[int, int](WithTreeInvariantCheck[int, int]())
		require.NoError(t, err)
		for j := 0; j < 500; j++ {
			require.NoError(t, tr.Insert(randv2.IntN(500), j))
		}
		for j := 0; j < 2500; j++ {
			size := tr.Len()
			key := randv2.IntN(500)
			contained := tr.ContainsKey(key)
			_, ok := tr.Remove(key)
			require.Equal(t, contained, ok)
			if ok {
				require.Equal(t, size-1, tr.Len())
			} else {
				require.Equal(t, size, tr.Len())
			}
		}
		requireValid(t, tr)
	}
}
