package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
//
// The node height is the black height here. NIL is 1 and
// bh(X) = max(bh(X.left), bh(X.right)) + (1 if X is black).
// The heights are refreshed after the fixup, walking from
// the mutation point to the root without early stop.
type rbBalancer[K any, V any] struct {
	tree *tree[K, V]
}

type fixupCase uint8

const (
	fixupTerminal fixupCase = iota
	fixupRotateAndStop
	fixupRecolorAndContinue
	// Red sibling in double-black, rotate and dispatch again at the same position.
	fixupRotateAndRetry
)

func isRed[K any, V any](n *node[K, V]) bool {
	return n != nil && n.color == Red
}

func isBlack[K any, V any](n *node[K, V]) bool {
	return n == nil || n.color == Black
}

func (b *rbBalancer[K, V]) kind() TreeKind {
	return RedBlack
}

func (b *rbBalancer[K, V]) nilHeight() int {
	return 1
}

func (b *rbBalancer[K, V]) updateHeight(n *node[K, V]) bool {
	h := max(b.tree.heightOf(n.left), b.tree.heightOf(n.right))
	if n.color == Black {
		h++
	}
	if h == n.height {
		return false
	}
	n.height = h
	return true
}

// New node X is red, except the root.
func (b *rbBalancer[K, V]) afterInsert(x *node[K, V]) {
	x.color = Red
	b.solveDoubleRed(x)
	b.tree.updateHeightAbove(x, false)
}

func (b *rbBalancer[K, V]) classifyDoubleRed(x *node[K, V]) fixupCase {
	if x.parent == nil || isBlack(x.parent) {
		return fixupTerminal
	}
	if isBlack(x.uncle()) {
		return fixupRotateAndStop
	}
	return fixupRecolorAndContinue
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

Terminal: X is root (painted to black) or the parent P is black.

Rotate and stop: P is red, the uncle U is black.
The top of the rotated subtree is painted to black, G to red.

	    [G]                 <P>               [P]
	    / \    rotateAt     / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]

Recolor and continue: both P and U are red. G is painted to red
unless it is the root. The defect may move up to G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>
*/
func (b *rbBalancer[K, V]) solveDoubleRed(x *node[K, V]) {
	for {
		switch b.classifyDoubleRed(x) {
		case fixupTerminal:
			if x.parent == nil {
				x.color = Black
			}
			return
		case fixupRotateAndStop:
			p := x.parent
			g := p.parent
			top := b.tree.rotateAt(g, p, x)
			top.color, g.color = Black, Red
			b.tree.refreshHeights(top.left, top.right, top)
			return
		case fixupRecolorAndContinue:
			p, u := x.parent, x.uncle()
			g := p.parent
			p.color, u.color = Black, Black
			if !g.IsRoot() {
				g.color = Red
			}
			b.updateHeight(u)
			x = g
		default:
			b.tree.assertFailed("unknown double red fixup case")
		}
	}
}

/*
r1: Removed node is red, nothing to do.
r2: Removed node is black and the replacement is red, repaint it to black.
r3: Removed node is black and leaves a NIL in its place (double black).
*/
func (b *rbBalancer[K, V]) afterRemove(hot *node[K, V], side RBDirection, replacement, removed *node[K, V]) {
	start := hot
	if replacement != nil {
		start = replacement
	}
	switch {
	case /* r1 */ removed.color == Red:
	case /* r2 */ isRed(replacement) || hot == nil:
		if replacement != nil {
			replacement.color = Black
		}
	default: /* r3 */
		b.solveDoubleBlack(hot, side)
	}
	b.tree.updateHeightAbove(start, false)
}

func (b *rbBalancer[K, V]) classifyDoubleBlack(p, s *node[K, V]) fixupCase {
	if p == nil {
		return fixupTerminal
	}
	if isRed(s) {
		return fixupRotateAndRetry
	}
	if isRed(s.left) || isRed(s.right) {
		return fixupRotateAndStop
	}
	return fixupRecolorAndContinue
}

/*
The deficient position is the side child of P, it may be NIL.
S is the sibling. {X} is either a RED node or a BLACK node.

Rotate and retry: S is red. Paint S to black, P to red and
rotate S over P. The new sibling is black.

	  [P]                   <S>               [S]
	  / \    zag(P)         / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

Rotate and stop: S is black with a red child C (left one first).
The top of rotated subtree takes the color of P, its children are black.

	  {P}                   {S}
	  / \    rotateAt       / \
	[X] [S]  ==========>  [P] [C]
	      \               /
	      <C>           [X]

Recolor and continue: S and its children are black. Paint S to red.
A red P is painted to black and it stops, otherwise P becomes the
deficient position.

	  {P}             {P}
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]
*/
func (b *rbBalancer[K, V]) solveDoubleBlack(p *node[K, V], side RBDirection) {
	for {
		s := (*node[K, V])(nil)
		if p != nil {
			if s = p.child(side.opposite()); s == nil {
				b.tree.assertFailed("double black without sibling")
			}
		}
		switch b.classifyDoubleBlack(p, s) {
		case fixupTerminal:
			return
		case fixupRotateAndRetry:
			s.color, p.color = Black, Red
			switch side {
			case Left:
				b.tree.zag(p)
			case Right:
				b.tree.zig(p)
			default:
				b.tree.assertFailed("double black at unknown side")
			}
			b.tree.refreshHeights(p, s)
		case fixupRotateAndStop:
			c := s.left
			if !isRed(c) {
				c = s.right
			}
			color := p.color
			top := b.tree.rotateAt(p, s, c)
			top.color = color
			top.left.color, top.right.color = Black, Black
			b.tree.refreshHeights(top.left, top.right, top)
			return
		case fixupRecolorAndContinue:
			s.color = Red
			b.updateHeight(s)
			if p.color == Red {
				p.color = Black
				return
			}
			side, p = p.direction(), p.parent
		default:
			b.tree.assertFailed("unknown double black fixup case")
		}
	}
}

// NewRBTree creates a Red-Black tree.
func NewRBTree[K infra.OrderedKey, V any](opts ...TreeOption[K, V]) (Tree[K, V], error) {
	return NewTree[K, V](RedBlack, opts...)
}

func NewRBTreeFunc[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOption[K, V]) (Tree[K, V], error) {
	return NewTreeFunc[K, V](RedBlack, cmp, opts...)
}
