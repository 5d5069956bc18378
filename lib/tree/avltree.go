package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/AVL_tree
// For every node, |height(left) - height(right)| <= 1.
// Insert needs at most one (single or double) rotation,
// remove may rotate at every ancestor up to the root.
type avlBalancer[K any, V any] struct {
	tree *tree[K, V]
}

func (b *avlBalancer[K, V]) kind() TreeKind {
	return AVL
}

func (b *avlBalancer[K, V]) nilHeight() int {
	return -1
}

func (b *avlBalancer[K, V]) updateHeight(n *node[K, V]) bool {
	return updatePhysicalHeight(b.tree, n)
}

func (b *avlBalancer[K, V]) balanceFactor(n *node[K, V]) int {
	return b.tree.heightOf(n.left) - b.tree.heightOf(n.right)
}

func (b *avlBalancer[K, V]) isBalanced(n *node[K, V]) bool {
	bf := b.balanceFactor(n)
	return -1 <= bf && bf <= 1
}

// tallerChild prefers the child on the same side as n itself
// if both children are equal in height. The root prefers its right child.
func (b *avlBalancer[K, V]) tallerChild(n *node[K, V]) *node[K, V] {
	if bf := b.balanceFactor(n); bf > 0 {
		return n.left
	} else if bf < 0 {
		return n.right
	}
	if n.IsLeftChild() {
		return n.left
	}
	return n.right
}

/*
The first unbalanced ancestor G is restored by one rotation,
the height of the rotated subtree is the same as G before insert.
So the ancestors above are untouched.

	      [G]                     [P]
	      / \                     / \
	    [P]  d    rotateAt      [X] [G]
	    / \     ==========>     / \ / \
	  [X]  c                   a  b c  d
	  / \
	 a   b
*/
func (b *avlBalancer[K, V]) afterInsert(x *node[K, V]) {
	b.updateHeight(x)
	for g := x.parent; g != nil; g = g.parent {
		changed := b.updateHeight(g)
		if !b.isBalanced(g) {
			p := b.tallerChild(g)
			c := b.tallerChild(p)
			top := b.tree.rotateAt(g, p, c)
			b.tree.refreshHeights(top.left, top.right, top)
			return
		}
		if !changed {
			return
		}
	}
}

// The rotated subtree may be one level lower than before,
// the imbalance propagates upward.
func (b *avlBalancer[K, V]) afterRemove(hot *node[K, V], _ RBDirection, _, _ *node[K, V]) {
	for g := hot; g != nil; g = g.parent {
		b.updateHeight(g)
		if !b.isBalanced(g) {
			p := b.tallerChild(g)
			c := b.tallerChild(p)
			g = b.tree.rotateAt(g, p, c)
			b.tree.refreshHeights(g.left, g.right, g)
		}
	}
}

// NewAVLTree creates a height balanced tree.
func NewAVLTree[K infra.OrderedKey, V any](opts ...TreeOption[K, V]) (Tree[K, V], error) {
	return NewTree[K, V](AVL, opts...)
}

func NewAVLTreeFunc[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOption[K, V]) (Tree[K, V], error) {
	return NewTreeFunc[K, V](AVL, cmp, opts...)
}
