package tree

import (
	"iter"

	"github.com/benz9527/xtree/lib/queue"
)

var _ Node[int, int] = (*node[int, int])(nil)

type node[K any, V any] struct {
	entry  *Entry[K, V]
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	// Physical height in BST and AVL tree, black height in Red-Black tree.
	height int
	color  RBColor
}

// wrap keeps the nil node as a nil interface.
func wrap[K any, V any](n *node[K, V]) Node[K, V] {
	if n == nil {
		return nil
	}
	return n
}

func (n *node[K, V]) Entry() *Entry[K, V] {
	return n.entry
}

func (n *node[K, V]) Key() K {
	return n.entry.key
}

func (n *node[K, V]) Height() int {
	return n.height
}

func (n *node[K, V]) Color() RBColor {
	return n.color
}

func (n *node[K, V]) Left() Node[K, V] {
	return wrap(n.left)
}

func (n *node[K, V]) Right() Node[K, V] {
	return wrap(n.right)
}

func (n *node[K, V]) Parent() Node[K, V] {
	return wrap(n.parent)
}

func (n *node[K, V]) IsRoot() bool {
	return n.parent == nil
}

func (n *node[K, V]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[K, V]) IsLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

func (n *node[K, V]) IsRightChild() bool {
	return n.parent != nil && n.parent.right == n
}

func (n *node[K, V]) HasLeftChild() bool {
	return n.left != nil
}

func (n *node[K, V]) HasRightChild() bool {
	return n.right != nil
}

func (n *node[K, V]) HasBothChildren() bool {
	return n.left != nil && n.right != nil
}

func (n *node[K, V]) direction() RBDirection {
	switch {
	case n.parent == nil:
		return Root
	case n.parent.left == n:
		return Left
	case n.parent.right == n:
		return Right
	default:
	}
	// impossible run to here
	panic( /* debug assertion */ "[xtree] node is not a child of its parent")
}

func (n *node[K, V]) child(dir RBDirection) *node[K, V] {
	switch dir {
	case Left:
		return n.left
	case Right:
		return n.right
	default:
	}
	return nil
}

func (n *node[K, V]) sibling() *node[K, V] {
	switch n.direction() {
	case Left:
		return n.parent.right
	case Right:
		return n.parent.left
	default:
	}
	return nil
}

func (n *node[K, V]) uncle() *node[K, V] {
	if n.parent == nil {
		return nil
	}
	return n.parent.sibling()
}

func (n *node[K, V]) grandParent() *node[K, V] {
	if n.parent == nil {
		return nil
	}
	return n.parent.parent
}

func (n *node[K, V]) Sibling() Node[K, V] {
	return wrap(n.sibling())
}

func (n *node[K, V]) Uncle() Node[K, V] {
	return wrap(n.uncle())
}

func (n *node[K, V]) GrandParent() Node[K, V] {
	return wrap(n.grandParent())
}

func (n *node[K, V]) minimum() *node[K, V] {
	aux := n
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (n *node[K, V]) maximum() *node[K, V] {
	aux := n
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.minimum()
	}
	x, aux := n, n.parent
	// Backtrack to father node that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.maximum()
	}
	x, aux := n, n.parent
	// Backtrack to father node that is the x's pred.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

func (n *node[K, V]) Minimum() Node[K, V] {
	return wrap(n.minimum())
}

func (n *node[K, V]) Maximum() Node[K, V] {
	return wrap(n.maximum())
}

func (n *node[K, V]) Successor() Node[K, V] {
	return wrap(n.successor())
}

func (n *node[K, V]) Predecessor() Node[K, V] {
	return wrap(n.predecessor())
}

func (n *node[K, V]) Size() int64 {
	size := int64(0)
	for range n.preOrder() {
		size++
	}
	return size
}

/*
The promoted node P takes the place of X, the inner child
of P is transferred to X.

zig(X), promote the left child:

	    |                    |
	    X                    P
	   / \      zig(X)      / \
	  P   c   ========>    a   X
	 / \                      / \
	a   b                    b   c

zag(X), promote the right child:

	  |                        |
	  X                        P
	 / \        zag(X)        / \
	a   P     ========>      X   c
	   / \                  / \
	  b   c                a   b
*/
func (n *node[K, V]) zig() *node[K, V] {
	p := n.left
	if p == nil {
		// impossible run to here
		panic( /* debug assertion */ "[xtree] zig without left child")
	}
	n.replaceWith(p)
	n.left = p.right
	if n.left != nil {
		n.left.parent = n
	}
	p.right, n.parent = n, p
	return p
}

func (n *node[K, V]) zag() *node[K, V] {
	p := n.right
	if p == nil {
		// impossible run to here
		panic( /* debug assertion */ "[xtree] zag without right child")
	}
	n.replaceWith(p)
	n.right = p.left
	if n.right != nil {
		n.right.parent = n
	}
	p.left, n.parent = n, p
	return p
}

// replaceWith hangs r (may be nil) under the parent of n in place of n.
// The links of n itself are not touched.
func (n *node[K, V]) replaceWith(r *node[K, V]) {
	switch n.direction() {
	case Left:
		n.parent.left = r
	case Right:
		n.parent.right = r
	default:
	}
	if r != nil {
		r.parent = n.parent
	}
}

func (n *node[K, V]) preOrder() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		stack := queue.NewLinkedStack[*node[K, V]]()
		stack.Push(n)
		for !stack.IsEmpty() {
			aux, _ := stack.Pop()
			if !yield(aux) {
				return
			}
			if aux.right != nil {
				stack.Push(aux.right)
			}
			if aux.left != nil {
				stack.Push(aux.left)
			}
		}
	}
}

func (n *node[K, V]) inOrder() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		stack := queue.NewLinkedStack[*node[K, V]]()
		for aux := n; aux != nil; aux = aux.left {
			stack.Push(aux)
		}
		for !stack.IsEmpty() {
			aux, _ := stack.Pop()
			if !yield(aux) {
				return
			}
			for aux = aux.right; aux != nil; aux = aux.left {
				stack.Push(aux)
			}
		}
	}
}

func (n *node[K, V]) postOrder() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		stack := queue.NewLinkedStack[*node[K, V]]()
		var last *node[K, V]
		aux := n
		for aux != nil || !stack.IsEmpty() {
			if aux != nil {
				stack.Push(aux)
				aux = aux.left
				continue
			}
			top, _ := stack.Top()
			if top.right != nil && top.right != last {
				aux = top.right
				continue
			}
			_, _ = stack.Pop()
			if !yield(top) {
				return
			}
			last = top
		}
	}
}

func (n *node[K, V]) levelOrder() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		q := queue.NewLinkedQueue[*node[K, V]]()
		q.Enqueue(n)
		for !q.IsEmpty() {
			aux, _ := q.Dequeue()
			if !yield(aux) {
				return
			}
			if aux.left != nil {
				q.Enqueue(aux.left)
			}
			if aux.right != nil {
				q.Enqueue(aux.right)
			}
		}
	}
}

func publicSeq[K any, V any](seq iter.Seq[*node[K, V]]) iter.Seq[Node[K, V]] {
	return func(yield func(Node[K, V]) bool) {
		for n := range seq {
			if !yield(n) {
				return
			}
		}
	}
}

func (n *node[K, V]) PreOrder() iter.Seq[Node[K, V]] {
	return publicSeq(n.preOrder())
}

func (n *node[K, V]) InOrder() iter.Seq[Node[K, V]] {
	return publicSeq(n.inOrder())
}

func (n *node[K, V]) PostOrder() iter.Seq[Node[K, V]] {
	return publicSeq(n.postOrder())
}

func (n *node[K, V]) LevelOrder() iter.Seq[Node[K, V]] {
	return publicSeq(n.levelOrder())
}
