package tree

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/xlog"
)

var (
	ErrTreeInvalidArgument = errors.New("[xtree] invalid argument")
	ErrTreeViolation       = errors.New("[xtree] invariant violation")
)

// balancer restores the tree invariants after a structural mutation.
// It also owns the meaning of the node height.
type balancer[K any, V any] interface {
	kind() TreeKind
	nilHeight() int
	// updateHeight returns true if the cached height is changed.
	updateHeight(n *node[K, V]) bool
	afterInsert(x *node[K, V])
	// The removed node was the child of hot on side, and
	// replacement (may be nil) takes its place.
	afterRemove(hot *node[K, V], side RBDirection, replacement, removed *node[K, V])
}

var _ Tree[int, int] = (*tree[int, int])(nil)

type tree[K any, V any] struct {
	root         *node[K, V]
	count        int64
	cmp          infra.KeyComparator[K]
	isDesc       bool
	checkOnWrite bool
	balancer     balancer[K, V]
	logger       xlog.XLogger
	statsName    string
	stats        *treeStats
}

func (t *tree[K, V]) Kind() TreeKind {
	return t.balancer.kind()
}

func (t *tree[K, V]) Len() int64 {
	return t.count
}

func (t *tree[K, V]) IsEmpty() bool {
	return t.count == 0
}

func (t *tree[K, V]) Height() int {
	if t.root == nil {
		return -1
	}
	return t.root.height
}

func (t *tree[K, V]) Root() Node[K, V] {
	return wrap(t.root)
}

func (t *tree[K, V]) Compare(i, j K) int64 {
	return t.cmp(i, j)
}

func (t *tree[K, V]) heightOf(n *node[K, V]) int {
	if n == nil {
		return t.balancer.nilHeight()
	}
	return n.height
}

func (t *tree[K, V]) updateHeightAbove(n *node[K, V], earlyStop bool) {
	for aux := n; aux != nil; aux = aux.parent {
		if changed := t.balancer.updateHeight(aux); !changed && earlyStop {
			return
		}
	}
}

func (t *tree[K, V]) refreshHeights(nodes ...*node[K, V]) {
	for _, n := range nodes {
		if n != nil {
			t.balancer.updateHeight(n)
		}
	}
}

func (t *tree[K, V]) search(key K) *node[K, V] {
	for aux := t.root; aux != nil; {
		res := t.cmp(key, aux.entry.key)
		if /* equal */ res == 0 {
			return aux
		} else /* less */ if res < 0 {
			aux = aux.left
		} else /* greater */ {
			aux = aux.right
		}
	}
	return nil
}

func (t *tree[K, V]) ContainsKey(key K) bool {
	if isNilKey(key) {
		return false
	}
	return t.search(key) != nil
}

func (t *tree[K, V]) SearchValue(key K) (val V, ok bool) {
	e, ok := t.Search(key)
	if !ok {
		return val, false
	}
	return e.Value()
}

func (t *tree[K, V]) Search(key K) (*Entry[K, V], bool) {
	if isNilKey(key) {
		return nil, false
	}
	if x := t.search(key); x != nil {
		return x.entry, true
	}
	return nil, false
}

func (t *tree[K, V]) Insert(key K, val V) error {
	return t.insert(NewEntry[K, V](key, val))
}

func (t *tree[K, V]) InsertKey(key K) error {
	return t.insert(NewKeyEntry[K, V](key))
}

func (t *tree[K, V]) InsertEntries(entries ...*Entry[K, V]) error {
	var err error
	for _, e := range entries {
		err = multierr.Append(err, t.insert(e))
	}
	return err
}

func (t *tree[K, V]) InsertKeys(keys ...K) error {
	var err error
	for _, key := range keys {
		err = multierr.Append(err, t.InsertKey(key))
	}
	return err
}

// The new node is always attached as a leaf. Duplicated key
// goes to the right subtree.
func (t *tree[K, V]) insert(e *Entry[K, V]) error {
	if e == nil || isNilKey(e.key) {
		return infra.WrapErrorStackWithMessage(ErrTreeInvalidArgument, "insert an absent key")
	}

	x := &node[K, V]{entry: e}
	if t.root == nil {
		t.root = x
	} else {
		var hot *node[K, V]
		for aux := t.root; aux != nil; {
			hot = aux
			if t.cmp(e.key, aux.entry.key) < 0 {
				aux = aux.left
			} else {
				aux = aux.right
			}
		}
		if t.cmp(e.key, hot.entry.key) < 0 {
			hot.left = x
		} else {
			hot.right = x
		}
		x.parent = hot
	}

	t.count++
	t.balancer.afterInsert(x)
	t.stats.inserted()
	t.checkInvariants("insert")
	return nil
}

func (t *tree[K, V]) Remove(key K) (*Entry[K, V], bool) {
	if isNilKey(key) || t.root == nil {
		return nil, false
	}
	z := t.search(key)
	if z == nil {
		return nil, false
	}
	return t.removeNode(z), true
}

func (t *tree[K, V]) RemoveMin() (*Entry[K, V], bool) {
	if t.root == nil {
		return nil, false
	}
	return t.removeNode(t.root.minimum()), true
}

/*
z has two children, swap the entry with its succ S.
S has no left child, so S is the one to be spliced.

	  |                    |
	  Z                    S
	 / \                  / \
	L  ..   swap(Z, S)   L  ..
	    |   =========>       |
	    P                    P
	   / \                  / \
	  S  ..                Z  ..
	   \                    \
	    R                    R
*/
func (t *tree[K, V]) removeNode(z *node[K, V]) *Entry[K, V] {
	y := z
	if y.HasBothChildren() {
		y = z.successor()
		z.entry, y.entry = y.entry, z.entry
	}

	replacement := y.left
	if replacement == nil {
		replacement = y.right
	}
	hot, side := y.parent, y.direction()
	y.replaceWith(replacement)
	if side == Root {
		t.root = replacement
	}

	// Unlink node
	y.parent, y.left, y.right = nil, nil, nil
	t.count--
	t.balancer.afterRemove(hot, side, replacement, y)
	t.stats.removed()
	t.checkInvariants("remove")
	return y.entry
}

// zig and zag keep the root of tree if the promoted node has no parent.
func (t *tree[K, V]) zig(n *node[K, V]) *node[K, V] {
	top := n.zig()
	if top.parent == nil {
		t.root = top
	}
	t.stats.rotated(zigRotation)
	return top
}

func (t *tree[K, V]) zag(n *node[K, V]) *node[K, V] {
	top := n.zag()
	if top.parent == nil {
		t.root = top
	}
	t.stats.rotated(zagRotation)
	return top
}

/*
rotateAt restructures the path g -> p -> c and returns the new subtree top.

	      g             g           g            g
	     /             /             \            \
	    p             p               p            p
	   /               \               \          /
	  c                 c               c        c
	zig(g)      zag(p), zig(g)       zag(g)   zig(p), zag(g)
	 => p           => c              => p        => c

The heights are not updated here.
*/
func (t *tree[K, V]) rotateAt(g, p, c *node[K, V]) *node[K, V] {
	if p == nil || c == nil || p.parent != g || c.parent != p {
		t.assertFailed("rotate at a broken grandparent-parent-child path")
	}
	switch pDir, cDir := p.direction(), c.direction(); {
	case pDir == Left && cDir == Left:
		return t.zig(g)
	case pDir == Left && cDir == Right:
		t.zag(p)
		return t.zig(g)
	case pDir == Right && cDir == Right:
		return t.zag(g)
	case pDir == Right && cDir == Left:
		t.zig(p)
		return t.zag(g)
	default:
	}
	t.assertFailed("unknown rotation direction")
	return nil
}

func (t *tree[K, V]) TraversePreOrder(visitor func(e *Entry[K, V]) bool) {
	t.traverse(func(n *node[K, V]) iter.Seq[*node[K, V]] { return n.preOrder() }, visitor)
}

func (t *tree[K, V]) TraverseInOrder(visitor func(e *Entry[K, V]) bool) {
	t.traverse(func(n *node[K, V]) iter.Seq[*node[K, V]] { return n.inOrder() }, visitor)
}

func (t *tree[K, V]) TraversePostOrder(visitor func(e *Entry[K, V]) bool) {
	t.traverse(func(n *node[K, V]) iter.Seq[*node[K, V]] { return n.postOrder() }, visitor)
}

func (t *tree[K, V]) TraverseLevel(visitor func(e *Entry[K, V]) bool) {
	t.traverse(func(n *node[K, V]) iter.Seq[*node[K, V]] { return n.levelOrder() }, visitor)
}

func (t *tree[K, V]) traverse(
	order func(n *node[K, V]) iter.Seq[*node[K, V]],
	visitor func(e *Entry[K, V]) bool,
) {
	if t.root == nil || visitor == nil {
		return
	}
	for n := range order(t.root) {
		if !visitor(n.entry) {
			return
		}
	}
}

func (t *tree[K, V]) Foreach(action func(idx int64, node Node[K, V]) bool) {
	if t.root == nil || action == nil {
		return
	}
	idx := int64(0)
	for n := range t.root.inOrder() {
		if !action(idx, n) {
			return
		}
		idx++
	}
}

func (t *tree[K, V]) Entries() iter.Seq[*Entry[K, V]] {
	return func(yield func(*Entry[K, V]) bool) {
		for aux := t.root.minimum(); aux != nil; aux = aux.successor() {
			if !yield(aux.entry) {
				return
			}
		}
	}
}

// Release unlinks all nodes, the entries are still valid for the holders.
func (t *tree[K, V]) Release() {
	aux, size := t.root, t.count
	t.root, t.count = nil, 0
	if aux == nil {
		return
	}
	for n := range aux.postOrder() {
		n.parent, n.left, n.right = nil, nil, nil
	}
	t.stats.released(size)
	t.logger.Debug("tree released",
		zap.String("kind", t.Kind().String()),
		zap.Int64("size", size),
	)
}

func (t *tree[K, V]) checkInvariants(op string) {
	if !t.checkOnWrite {
		return
	}
	if err := t.Validate(); err != nil {
		t.logger.ErrorStack(err, "tree invariants broken",
			zap.String("kind", t.Kind().String()),
			zap.String("op", op),
		)
		panic( /* debug assertion */ fmt.Sprintf("[xtree] %s after %s: %v", t.Kind(), op, err))
	}
}

func (t *tree[K, V]) assertFailed(msg string) {
	t.logger.ErrorStack(infra.NewErrorStack(msg), "debug assertion",
		zap.String("kind", t.Kind().String()),
	)
	panic( /* debug assertion */ "[xtree] " + msg)
}

func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
	}
	return false
}

type bstBalancer[K any, V any] struct {
	tree *tree[K, V]
}

func (b *bstBalancer[K, V]) kind() TreeKind {
	return BST
}

func (b *bstBalancer[K, V]) nilHeight() int {
	return -1
}

func (b *bstBalancer[K, V]) updateHeight(n *node[K, V]) bool {
	return updatePhysicalHeight(b.tree, n)
}

func (b *bstBalancer[K, V]) afterInsert(x *node[K, V]) {
	b.updateHeight(x)
	b.tree.updateHeightAbove(x.parent, true)
}

func (b *bstBalancer[K, V]) afterRemove(hot *node[K, V], _ RBDirection, _, _ *node[K, V]) {
	b.tree.updateHeightAbove(hot, true)
}

// Leaf is 0, empty is -1.
func updatePhysicalHeight[K any, V any](t *tree[K, V], n *node[K, V]) bool {
	h := 1 + max(t.heightOf(n.left), t.heightOf(n.right))
	if h == n.height {
		return false
	}
	n.height = h
	return true
}

type TreeOption[K any, V any] func(*tree[K, V]) error

// WithTreeDesc reverses the ordering.
func WithTreeDesc[K any, V any]() TreeOption[K, V] {
	return func(t *tree[K, V]) error {
		t.isDesc = true
		return nil
	}
}

func WithTreeComparator[K any, V any](cmp infra.KeyComparator[K]) TreeOption[K, V] {
	return func(t *tree[K, V]) error {
		if cmp == nil {
			return infra.WrapErrorStackWithMessage(ErrTreeInvalidArgument, "nil key comparator")
		}
		t.cmp = cmp
		return nil
	}
}

func WithTreeLogger[K any, V any](logger xlog.XLogger) TreeOption[K, V] {
	return func(t *tree[K, V]) error {
		if logger == nil {
			return infra.WrapErrorStackWithMessage(ErrTreeInvalidArgument, "nil tree logger")
		}
		t.logger = logger
		return nil
	}
}

// WithTreeStats enables the otel metrics under the meter "xtree/<kind>/<name>".
func WithTreeStats[K any, V any](name string) TreeOption[K, V] {
	return func(t *tree[K, V]) error {
		if name == "" {
			return infra.WrapErrorStackWithMessage(ErrTreeInvalidArgument, "empty tree stats name")
		}
		t.statsName = name
		return nil
	}
}

// WithTreeInvariantCheck validates the whole tree after each insert and remove,
// a violation panics. It is O(n) per write.
func WithTreeInvariantCheck[K any, V any]() TreeOption[K, V] {
	return func(t *tree[K, V]) error {
		t.checkOnWrite = true
		return nil
	}
}

func newTree[K any, V any](
	kind TreeKind,
	cmp infra.KeyComparator[K],
	opts ...TreeOption[K, V],
) (*tree[K, V], error) {
	t := &tree[K, V]{
		cmp:    cmp,
		logger: xlog.NewNopXLogger(),
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(t); err != nil {
			return nil, err
		}
	}
	if t.cmp == nil {
		return nil, infra.WrapErrorStackWithMessage(ErrTreeInvalidArgument, "nil key comparator")
	}
	if t.isDesc {
		t.cmp = infra.ReverseKeyComparator(t.cmp)
	}

	switch kind {
	case BST:
		t.balancer = &bstBalancer[K, V]{tree: t}
	case AVL:
		t.balancer = &avlBalancer[K, V]{tree: t}
	case RedBlack:
		t.balancer = &rbBalancer[K, V]{tree: t}
	default:
		return nil, infra.WrapErrorStackWithMessage(ErrTreeInvalidArgument, "unknown tree kind "+kind.String())
	}
	if t.statsName != "" {
		t.stats = newTreeStats(kind, t.statsName)
	}
	return t, nil
}

// NewTree creates the tree of kind ordered by the natural order of keys.
func NewTree[K infra.OrderedKey, V any](kind TreeKind, opts ...TreeOption[K, V]) (Tree[K, V], error) {
	return NewTreeFunc[K, V](kind, infra.OrderedKeyCompare[K], opts...)
}

func NewTreeFunc[K any, V any](kind TreeKind, cmp infra.KeyComparator[K], opts ...TreeOption[K, V]) (Tree[K, V], error) {
	t, err := newTree[K, V](kind, cmp, opts...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// NewBSTree creates an unbalanced binary search tree.
func NewBSTree[K infra.OrderedKey, V any](opts ...TreeOption[K, V]) (Tree[K, V], error) {
	return NewTree[K, V](BST, opts...)
}

func NewBSTreeFunc[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOption[K, V]) (Tree[K, V], error) {
	return NewTreeFunc[K, V](BST, cmp, opts...)
}

// ParseTreeKind accepts "bst", "avl" and "rb" (or "rbtree").
func ParseTreeKind(kind string) (TreeKind, error) {
	switch kind {
	case "bst":
		return BST, nil
	case "avl":
		return AVL, nil
	case "rb", "rbtree":
		return RedBlack, nil
	default:
	}
	return _kindMax, infra.WrapErrorStackWithMessage(ErrTreeInvalidArgument, "unknown tree kind "+kind)
}
