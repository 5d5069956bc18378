package queue

import (
	"github.com/benz9527/xtree/lib/list"
)

var _ Stack[struct{}] = (*linkedStack[struct{}])(nil) // Type check assertion

// The back of the list is the top of stack.
type linkedStack[E any] struct {
	l list.LinkedList[E]
}

func NewLinkedStack[E any]() Stack[E] {
	return &linkedStack[E]{
		l: list.NewLinkedList[E](),
	}
}

func (s *linkedStack[E]) Len() int64 {
	return s.l.Len()
}

func (s *linkedStack[E]) IsEmpty() bool {
	return s.l.Len() == 0
}

func (s *linkedStack[E]) Push(e E) {
	s.l.PushBack(e)
}

func (s *linkedStack[E]) Pop() (e E, ok bool) {
	top := s.l.Back()
	if top == nil {
		return e, false
	}
	return s.l.Remove(top).Value, true
}

func (s *linkedStack[E]) Top() (e E, ok bool) {
	top := s.l.Back()
	if top == nil {
		return e, false
	}
	return top.Value, true
}

func (s *linkedStack[E]) Clear() {
	s.l.Clear()
}
