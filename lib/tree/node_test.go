package tree

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
)

func TestNilNode(t *testing.T) {
	var nilNode Node[int, int] = nil
	require.True(t, nilNode == nil)

	var nilNode2 *node[int, int] = nil
	nilNode = nilNode2
	require.True(t, nilNode != nil)
	require.Nil(t, wrap(nilNode2))
}

func newTestNode(key int) *node[int, string] {
	return &node[int, string]{entry: NewKeyEntry[int, string](key)}
}

func link(parent *node[int, string], left, right *node[int, string]) {
	parent.left, parent.right = left, right
	if left != nil {
		left.parent = parent
	}
	if right != nil {
		right.parent = parent
	}
}

func keysOf[K any, V any](nodes iter.Seq[Node[K, V]]) []K {
	keys := make([]K, 0, 8)
	for n := range nodes {
		keys = append(keys, n.Key())
	}
	return keys
}

func TestNodeSingle(t *testing.T) {
	n := newTestNode(0)
	require.Equal(t, int64(1), n.Size())
	require.True(t, n.IsRoot())
	require.True(t, n.IsLeaf())
	require.False(t, n.HasLeftChild())
	require.False(t, n.HasRightChild())
	require.False(t, n.IsLeftChild())
	require.False(t, n.IsRightChild())
	require.Nil(t, n.Uncle())
	require.Nil(t, n.Sibling())
	require.Nil(t, n.GrandParent())
	require.Nil(t, n.Successor())
	require.Nil(t, n.Predecessor())
	require.Equal(t, n, n.Minimum())
	require.Equal(t, n, n.Maximum())
	require.Equal(t, Root, n.direction())
}

/*
Level by level:

	        a0
	       /  \
	     b1    c2
	    /  \   / \
	  d3   e4 f5  g6
	  /
	h7
*/
func TestNodeRelation(t *testing.T) {
	a, b, c, d := newTestNode(0), newTestNode(1), newTestNode(2), newTestNode(3)
	e, f, g, h := newTestNode(4), newTestNode(5), newTestNode(6), newTestNode(7)
	link(a, b, c)
	link(b, d, e)
	link(c, f, g)
	link(d, h, nil)

	tr, err := newTree[int, string](BST, infra.OrderedKeyCompare[int])
	require.NoError(t, err)
	tr.refreshHeights(h, d, e, f, g, b, c, a)

	for i, n := range []*node[int, string]{a, b, c, d, e, f, g, h} {
		require.Equal(t, i, n.Key())
		_, ok := n.Entry().Value()
		require.False(t, ok)
	}

	sizes := []int64{8, 4, 3, 2, 1, 1, 1, 1}
	for i, n := range []*node[int, string]{a, b, c, d, e, f, g, h} {
		require.Equal(t, sizes[i], n.Size())
	}

	require.True(t, a.HasBothChildren())
	require.True(t, a.IsRoot())
	require.False(t, a.IsLeaf())
	require.False(t, a.IsLeftChild())
	require.False(t, a.IsRightChild())
	require.Nil(t, a.Uncle())
	require.Nil(t, a.GrandParent())
	require.Nil(t, a.Sibling())
	require.Equal(t, 3, a.Height())

	require.True(t, b.IsLeftChild())
	require.Equal(t, c, b.Sibling())
	require.Nil(t, b.GrandParent())
	require.Equal(t, 2, b.Height())

	require.True(t, c.IsRightChild())
	require.Equal(t, b, c.Sibling())
	require.Equal(t, 1, c.Height())

	require.False(t, d.HasBothChildren())
	require.True(t, d.HasLeftChild())
	require.False(t, d.HasRightChild())
	require.Equal(t, e, d.Sibling())
	require.Equal(t, a, d.GrandParent())
	require.Equal(t, c, d.Uncle())
	require.Equal(t, 1, d.Height())

	require.True(t, e.IsLeaf())
	require.True(t, e.IsRightChild())
	require.Equal(t, d, e.Sibling())
	require.Equal(t, 0, e.Height())

	require.True(t, h.IsLeftChild())
	require.Nil(t, h.Sibling())
	require.Equal(t, b, h.GrandParent())
	require.Equal(t, e, h.Uncle())

	require.Equal(t, b, f.Uncle())
	require.Equal(t, g, f.Sibling())
	require.Equal(t, a, f.GrandParent())
	require.Equal(t, b, g.Uncle())
	require.Equal(t, f, g.Sibling())

	require.Equal(t, []int{0, 1, 3, 7, 4, 2, 5, 6}, keysOf(a.PreOrder()))
	require.Equal(t, []int{7, 3, 1, 4, 0, 5, 2, 6}, keysOf(a.InOrder()))
	require.Equal(t, []int{7, 3, 4, 1, 5, 6, 2, 0}, keysOf(a.PostOrder()))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, keysOf(a.LevelOrder()))
	require.Equal(t, []int{3, 7}, keysOf(d.PreOrder()))

	require.Equal(t, h, a.Minimum())
	require.Equal(t, g, a.Maximum())
	// In-order neighbours.
	require.Equal(t, a, e.Successor())
	require.Equal(t, e, a.Predecessor())
	require.Equal(t, f, a.Successor())
	require.Nil(t, g.Successor())
	require.Nil(t, h.Predecessor())
}

func TestNodeTraversalBreak(t *testing.T) {
	a, b, c := newTestNode(2), newTestNode(1), newTestNode(3)
	link(a, b, c)
	for _, seq := range []iter.Seq[Node[int, string]]{
		a.PreOrder(), a.InOrder(), a.PostOrder(), a.LevelOrder(),
	} {
		count := 0
		for range seq {
			count++
			if count == 2 {
				break
			}
		}
		require.Equal(t, 2, count)
	}
	// Restartable.
	require.Equal(t, []int{1, 2, 3}, keysOf(a.InOrder()))
	require.Equal(t, []int{1, 2, 3}, keysOf(a.InOrder()))
}

/*
	    |                    |
	    X                    P
	   / \      zig(X)      / \
	  P   c   ========>    a   X
	 / \                      / \
	a   b                    b   c
*/
func TestNodeZigZag(t *testing.T) {
	x, p, a, b, c := newTestNode(4), newTestNode(2), newTestNode(1), newTestNode(3), newTestNode(5)
	link(x, p, c)
	link(p, a, b)

	top := x.zig()
	require.Equal(t, p, top)
	require.Nil(t, p.parent)
	require.Equal(t, a, p.left)
	require.Equal(t, x, p.right)
	require.Equal(t, p, x.parent)
	require.Equal(t, b, x.left)
	require.Equal(t, x, b.parent)
	require.Equal(t, c, x.right)
	require.Equal(t, []int{1, 2, 3, 4, 5}, keysOf(p.InOrder()))

	top = p.zag()
	require.Equal(t, x, top)
	require.Nil(t, x.parent)
	require.Equal(t, p, x.left)
	require.Equal(t, b, p.right)
	require.Equal(t, p, b.parent)
	require.Equal(t, []int{4, 2, 1, 3, 5}, keysOf(x.PreOrder()))

	require.Panics(t, func() {
		a.zig()
	})
	require.Panics(t, func() {
		a.zag()
	})
}

func TestTreeRotateAtRoot(t *testing.T) {
	testcases := []struct {
		name     string
		keys     []int
		expected int
	}{
		{"zig", []int{3, 2, 1}, 2},
		{"zag-zig", []int{3, 1, 2}, 2},
		{"zag", []int{1, 2, 3}, 2},
		{"zig-zag", []int{1, 3, 2}, 2},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := newTree[int, int](BST, infra.OrderedKeyCompare[int])
			require.NoError(t, err)
			require.NoError(t, tr.InsertKeys(tc.keys...))
			g := tr.root
			p := g.left
			if p == nil {
				p = g.right
			}
			c := p.left
			if c == nil {
				c = p.right
			}
			top := tr.rotateAt(g, p, c)
			tr.refreshHeights(top.left, top.right, top)
			require.Equal(t, tr.root, top)
			require.Equal(t, tc.expected, tr.root.Key())
			require.Nil(t, tr.root.parent)
			require.Equal(t, 1, tr.Height())
			require.Equal(t, []int{1, 2, 3}, entryKeys[int, int](tr))
			require.NoError(t, tr.Validate())
		})
	}
}
