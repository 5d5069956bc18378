package queue

// Queue is a FIFO container. It is not thread safe.
type Queue[E any] interface {
	Len() int64
	IsEmpty() bool
	// Enqueue appends the element to the tail.
	Enqueue(e E)
	// Dequeue removes and returns the head element.
	// It returns false if the queue is empty.
	Dequeue() (E, bool)
	// Peek returns the head element without removing it.
	Peek() (E, bool)
	Clear()
}

// Stack is a LIFO container. It is not thread safe.
type Stack[E any] interface {
	Len() int64
	IsEmpty() bool
	Push(e E)
	// Pop removes and returns the top element.
	// It returns false if the stack is empty.
	Pop() (E, bool)
	// Top returns the top element without removing it.
	Top() (E, bool)
	Clear()
}
