package queue

import (
	"github.com/benz9527/xtree/lib/list"
)

var _ Queue[struct{}] = (*linkedQueue[struct{}])(nil) // Type check assertion

// The front of the list is the head of queue.
type linkedQueue[E any] struct {
	l list.LinkedList[E]
}

func NewLinkedQueue[E any]() Queue[E] {
	return &linkedQueue[E]{
		l: list.NewLinkedList[E](),
	}
}

func (q *linkedQueue[E]) Len() int64 {
	return q.l.Len()
}

func (q *linkedQueue[E]) IsEmpty() bool {
	return q.l.Len() == 0
}

func (q *linkedQueue[E]) Enqueue(e E) {
	q.l.PushBack(e)
}

func (q *linkedQueue[E]) Dequeue() (e E, ok bool) {
	head := q.l.Front()
	if head == nil {
		return e, false
	}
	return q.l.Remove(head).Value, true
}

func (q *linkedQueue[E]) Peek() (e E, ok bool) {
	head := q.l.Front()
	if head == nil {
		return e, false
	}
	return head.Value, true
}

func (q *linkedQueue[E]) Clear() {
	q.l.Clear()
}
