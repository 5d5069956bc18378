package list

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

/*
The root is a sentinel element, root.next is the head and
root.prev is the tail. An empty list links the root to itself.

	+------+     +------+     +------+
	| root |<--->| head |<--->| tail |
	+------+     +------+     +------+
	   ^                          ^
	   +--------------------------+
*/
type doublyLinkedList[T any] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T any]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) contains(targetE *NodeElement[T]) bool {
	return targetE != nil && targetE != l.root && targetE.listRef == l &&
		targetE.prev != nil && targetE.next != nil
}

// insertAfter links e next to at and returns e.
func (l *doublyLinkedList[T]) insertAfter(e, at *NodeElement[T]) *NodeElement[T] {
	e.listRef = l
	e.prev, e.next = at, at.next
	at.next.prev = e
	at.next = e
	l.len++
	return e
}

// unlink keeps the listRef and len of e unchanged.
func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l == nil || l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l == nil || l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	return l.insertAfter(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	return l.insertAfter(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.len == 0 || !l.contains(targetE) {
		return nil
	}
	l.unlink(targetE)
	// avoid memory leaks
	targetE.listRef = nil
	targetE.next = nil
	targetE.prev = nil
	l.len--
	return targetE
}

// move links src next to dst.
func (l *doublyLinkedList[T]) move(src, dst *NodeElement[T]) bool {
	if src == dst || dst.next == src {
		return false
	}
	l.unlink(src)
	src.prev, src.next = dst, dst.next
	dst.next.prev = src
	dst.next = src
	return true
}

func (l *doublyLinkedList[T]) MoveToFront(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) {
		return false
	}
	return l.move(targetE, l.root)
}

func (l *doublyLinkedList[T]) MoveToBack(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) {
		return false
	}
	return l.move(targetE, l.root.prev)
}

func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) bool) {
	if l == nil || fn == nil || l.len == 0 {
		return
	}
	idx := int64(0)
	// Keep the next one before fn, the current one may be removed.
	for iterator := l.root.next; iterator != l.root; idx++ {
		n := iterator.next
		if !fn(idx, iterator) {
			return
		}
		iterator = n
	}
}

func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T]) bool) {
	if l == nil || fn == nil || l.len == 0 {
		return
	}
	idx := int64(0)
	for iterator := l.root.prev; iterator != l.root; idx++ {
		p := iterator.prev
		if !fn(idx, iterator) {
			return
		}
		iterator = p
	}
}

func (l *doublyLinkedList[T]) FindFirst(matchFn func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if l == nil || matchFn == nil || l.len == 0 {
		return nil, false
	}
	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		if matchFn(iterator) {
			return iterator, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Clear() {
	for iterator := l.root.next; iterator != l.root; {
		n := iterator.next
		iterator.listRef, iterator.prev, iterator.next = nil, nil, nil
		iterator = n
	}
	l.init()
}
