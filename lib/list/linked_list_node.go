package list

type NodeElement[T any] struct {
	prev, next *NodeElement[T]
	listRef    *doublyLinkedList[T]
	Value      T // It should be placed at the end of the struct to avoid taking too much padding.
}

func newNodeElement[T any](v T, list *doublyLinkedList[T]) *NodeElement[T] {
	return &NodeElement[T]{
		Value:   v,
		listRef: list,
	}
}

func (e *NodeElement[T]) HasNext() bool {
	return e.Next() != nil
}

func (e *NodeElement[T]) HasPrev() bool {
	return e.Prev() != nil
}

// Next returns nil if e is the last one or it is not in a list.
func (e *NodeElement[T]) Next() *NodeElement[T] {
	if e == nil || e.listRef == nil || e.next == e.listRef.root {
		return nil
	}
	return e.next
}

// Prev returns nil if e is the first one or it is not in a list.
func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if e == nil || e.listRef == nil || e.prev == e.listRef.root {
		return nil
	}
	return e.prev
}
