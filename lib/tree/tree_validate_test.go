package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestTreeValidators(t *testing.T) {
	bst := newTestBSTree(t, 1, 2, 3)
	require.NoError(t, LinkViolationValidate(bst))
	require.NoError(t, OrderViolationValidate(bst))
	require.NoError(t, HeightViolationValidate(bst))
	require.ErrorIs(t, AVLViolationValidate(bst), ErrTreeViolation)
	requireValid(t, bst)

	root := rootNode(bst)
	root.height = 5
	require.ErrorIs(t, HeightViolationValidate(bst), ErrTreeViolation)
	root.height = 2

	root.entry, root.right.entry = root.right.entry, root.entry
	require.ErrorIs(t, OrderViolationValidate(bst), ErrTreeViolation)
	root.entry, root.right.entry = root.right.entry, root.entry
	requireValid(t, bst)

	inner := bst.(*tree[int, int])
	inner.count++
	require.ErrorIs(t, LinkViolationValidate(bst), ErrTreeViolation)
	inner.count--
	root.right.parent = nil
	require.ErrorIs(t, LinkViolationValidate(bst), ErrTreeViolation)
	root.right.parent = root
	requireValid(t, bst)
}

func TestRBTreeValidators(t *testing.T) {
	tr, err := NewRBTree[int, int]()
	require.NoError(t, err)
	require.NoError(t, tr.InsertKeys(2, 1, 3, 4))
	requireValid(t, tr)

	// 2B(1B, 3B(-, 4R))
	root := rootNode(tr)
	n3 := root.right
	n3.color = Red
	require.ErrorIs(t, RedViolationValidate(tr), ErrTreeViolation)
	require.ErrorIs(t, BlackViolationValidate(tr), ErrTreeViolation)
	require.ErrorIs(t, HeightViolationValidate(tr), ErrTreeViolation)

	err = tr.Validate()
	require.ErrorIs(t, err, ErrTreeViolation)
	require.Len(t, multierr.Errors(err), 3)

	n3.color = Black
	root.color = Red
	require.ErrorIs(t, RedViolationValidate(tr), ErrTreeViolation)
	root.color = Black
	requireValid(t, tr)
}

func TestTreeNaNKeys(t *testing.T) {
	for _, kind := range []TreeKind{BST, AVL, RedBlack} {
		t.Run(kind.String(), func(tt *testing.T) {
			tr, err := NewTree[float64, string](kind, WithTreeInvariantCheck[float64, string]())
			require.NoError(tt, err)
			require.NoError(tt, tr.Insert(math.NaN(), "nan"))
			require.NoError(tt, tr.Insert(1, "one"))

			e, ok := tr.Search(1)
			require.True(tt, ok)
			require.Equal(tt, 1.0, e.Key())
			_, ok = tr.Search(2)
			require.False(tt, ok)
			_, ok = tr.Remove(2)
			require.False(tt, ok)
			require.Equal(tt, int64(2), tr.Len())

			e, ok = tr.Search(math.NaN())
			require.True(tt, ok)
			require.True(tt, math.IsNaN(e.Key()))

			require.NoError(tt, tr.InsertKeys(5, 3, 8, 0.5, 9, 7))
			keys := inOrderKeys(tr)
			require.True(tt, math.IsNaN(keys[0]))
			require.Equal(tt, []float64{0.5, 1, 3, 5, 7, 8, 9}, keys[1:])
			requireValid(tt, tr)

			e, ok = tr.Remove(math.NaN())
			require.True(tt, ok)
			require.True(tt, math.IsNaN(e.Key()))
			require.Equal(tt, []float64{0.5, 1, 3, 5, 7, 8, 9}, inOrderKeys(tr))
			requireValid(tt, tr)
		})
	}
}

func TestOrderViolationValidateNonTransitiveComparator(t *testing.T) {
	// NaN compares equal to every key here, so it is not a total order.
	nanAsEqual := func(i, j float64) int64 {
		if i < j {
			return -1
		} else if i > j {
			return 1
		}
		return 0
	}
	tr, err := NewRBTreeFunc[float64, int](nanAsEqual)
	require.NoError(t, err)
	require.NoError(t, tr.InsertKeys(5, 3, 8, math.NaN(), 1, 0.5, 9, 7))

	// 0.5 1 3 5 8 NaN 7 9, every adjacent pair looks ordered.
	keys := inOrderKeys(tr)
	require.Equal(t, 8.0, keys[4])
	require.True(t, math.IsNaN(keys[5]))
	require.Equal(t, 7.0, keys[6])
	require.ErrorIs(t, OrderViolationValidate(tr), ErrTreeViolation)
	require.ErrorIs(t, tr.Validate(), ErrTreeViolation)
}
