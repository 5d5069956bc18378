package tree

import (
	"iter"
)

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

func (d RBDirection) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Root:
		return "Root"
	default:
	}
	return "Unknown"
}

func (d RBDirection) opposite() RBDirection {
	return -d
}

type TreeKind uint8

const (
	BST TreeKind = iota
	AVL
	RedBlack
	_kindMax
)

func (k TreeKind) String() string {
	switch k {
	case BST:
		return "bst"
	case AVL:
		return "avl"
	case RedBlack:
		return "rb"
	default:
	}
	return "unknown"
}

// Node is the read-only view of a tree vertex.
// The Height means black height in a Red-Black tree.
type Node[K any, V any] interface {
	Entry() *Entry[K, V]
	Key() K
	Height() int
	Color() RBColor
	Left() Node[K, V]
	Right() Node[K, V]
	Parent() Node[K, V]

	IsRoot() bool
	IsLeaf() bool
	IsLeftChild() bool
	IsRightChild() bool
	HasLeftChild() bool
	HasRightChild() bool
	HasBothChildren() bool

	Sibling() Node[K, V]
	Uncle() Node[K, V]
	GrandParent() Node[K, V]
	Successor() Node[K, V]
	Predecessor() Node[K, V]
	Minimum() Node[K, V]
	Maximum() Node[K, V]
	// Size counts the nodes of the subtree rooted at this node.
	Size() int64

	PreOrder() iter.Seq[Node[K, V]]
	InOrder() iter.Seq[Node[K, V]]
	PostOrder() iter.Seq[Node[K, V]]
	LevelOrder() iter.Seq[Node[K, V]]
}

// Tree is an ordered key-value container. Duplicated keys are allowed,
// the later one is placed into the right subtree of the existing one.
// It is not thread safe.
type Tree[K any, V any] interface {
	Kind() TreeKind
	Len() int64
	IsEmpty() bool
	// Height returns -1 if the tree is empty.
	Height() int
	Root() Node[K, V]
	// Compare is the ordering of the tree, descending order included.
	Compare(i, j K) int64

	ContainsKey(key K) bool
	SearchValue(key K) (V, bool)
	Search(key K) (*Entry[K, V], bool)

	Insert(key K, val V) error
	InsertKey(key K) error
	InsertEntries(entries ...*Entry[K, V]) error
	InsertKeys(keys ...K) error
	Remove(key K) (*Entry[K, V], bool)
	RemoveMin() (*Entry[K, V], bool)

	TraversePreOrder(visitor func(e *Entry[K, V]) bool)
	TraverseInOrder(visitor func(e *Entry[K, V]) bool)
	TraversePostOrder(visitor func(e *Entry[K, V]) bool)
	TraverseLevel(visitor func(e *Entry[K, V]) bool)
	// Foreach is the in-order traversal with the visiting index.
	Foreach(action func(idx int64, node Node[K, V]) bool)
	// Entries returns a new ascending iterator on each call.
	Entries() iter.Seq[*Entry[K, V]]

	Validate() error
	Release()
	String() string
}
