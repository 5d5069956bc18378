package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
)

// Tree rule validation utilities.
// They only read the tree through the Node view.

func (t *tree[K, V]) Validate() error {
	err := multierr.Combine(
		LinkViolationValidate[K, V](t),
		OrderViolationValidate[K, V](t),
		HeightViolationValidate[K, V](t),
	)
	switch t.Kind() {
	case AVL:
		err = multierr.Append(err, AVLViolationValidate[K, V](t))
	case RedBlack:
		err = multierr.Append(err, RedViolationValidate[K, V](t))
		err = multierr.Append(err, BlackViolationValidate[K, V](t))
	default:
	}
	return err
}

func violation(format string, args ...any) error {
	return infra.WrapErrorStackWithMessage(ErrTreeViolation, fmt.Sprintf(format, args...))
}

func nilHeightOf(kind TreeKind) int {
	if kind == RedBlack {
		return 1
	}
	return -1
}

func heightOf[K any, V any](kind TreeKind, n Node[K, V]) int {
	if n == nil {
		return nilHeightOf(kind)
	}
	return n.Height()
}

// LinkViolationValidate checks the parent back links and the size.
func LinkViolationValidate[K any, V any](tree Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		if tree.Len() != 0 {
			return violation("empty tree with size %d", tree.Len())
		}
		return nil
	}
	if root.Parent() != nil {
		return violation("root %v has parent", root.Key())
	}

	count := int64(0)
	for n := range root.PreOrder() {
		count++
		if l := n.Left(); l != nil && l.Parent() != n {
			return violation("left child of %v is not linked back", n.Key())
		}
		if r := n.Right(); r != nil && r.Parent() != n {
			return violation("right child of %v is not linked back", n.Key())
		}
	}
	if count != tree.Len() {
		return violation("tree size %d, but %d nodes linked", tree.Len(), count)
	}
	return nil
}

// OrderViolationValidate checks that the in-order keys are non-decreasing.
// Each key is compared with the greatest key met so far, so a comparator
// that is not transitive is caught as well.
func OrderViolationValidate[K any, V any](tree Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	var top Node[K, V]
	for n := range root.InOrder() {
		if top != nil && tree.Compare(top.Key(), n.Key()) > 0 {
			return violation("order violation, %v before %v", top.Key(), n.Key())
		}
		if top == nil || tree.Compare(n.Key(), top.Key()) > 0 {
			top = n
		}
	}
	return nil
}

// HeightViolationValidate recomputes the height (black height for
// Red-Black tree) bottom-up and compares it with the cached one.
func HeightViolationValidate[K any, V any](tree Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	kind := tree.Kind()
	for n := range root.PostOrder() {
		l, r := heightOf(kind, n.Left()), heightOf(kind, n.Right())
		expected := 1 + max(l, r)
		if kind == RedBlack {
			expected = max(l, r)
			if n.Color() == Black {
				expected++
			}
		}
		if n.Height() != expected {
			return violation("height of %v is %d, expected %d", n.Key(), n.Height(), expected)
		}
	}
	return nil
}

// AVLViolationValidate checks |height(left) - height(right)| <= 1 for every node.
func AVLViolationValidate[K any, V any](tree Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	for n := range root.PreOrder() {
		bf := heightOf(AVL, n.Left()) - heightOf(AVL, n.Right())
		if bf < -1 || bf > 1 {
			return violation("avl violation at %v, balance factor %d", n.Key(), bf)
		}
	}
	return nil
}

// RedViolationValidate checks the root is black and no red node has a red child.
func RedViolationValidate[K any, V any](tree Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if root.Color() != Black {
		return violation("red root %v", root.Key())
	}
	isRedNode := func(n Node[K, V]) bool {
		return n != nil && n.Color() == Red
	}
	for n := range root.InOrder() {
		if isRedNode(n) && (isRedNode(n.Left()) || isRedNode(n.Right())) {
			return violation("red violation at %v", n.Key())
		}
	}
	return nil
}

func blackDepthTo[K any, V any](target, to Node[K, V]) int {
	depth := 0
	for aux := target; aux != nil && aux != to; aux = aux.Parent() {
		if aux.Color() == Black {
			depth++
		}
	}
	return depth
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
	        /  \
	     <8>    [15]
	     / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
	      /  \             /    \
	     /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each node owning a NIL child has the same black depth to the root.
*/
func BlackViolationValidate[K any, V any](tree Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	blackDepth := -1
	for n := range root.LevelOrder() {
		if /* nil leaves, keep one */ n.HasBothChildren() {
			continue
		}
		depth := blackDepthTo(n, nil)
		if blackDepth < 0 {
			blackDepth = depth
		} else if depth != blackDepth {
			return violation("black violation at %v, black depth %d, expected %d", n.Key(), depth, blackDepth)
		}
	}
	return nil
}
