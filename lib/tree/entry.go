package tree

import (
	"fmt"
)

// Entry is the key-value pair stored by a tree node.
// The value may be absent, the key never.
type Entry[K any, V any] struct {
	key    K
	val    V
	hasVal bool
}

func NewEntry[K any, V any](key K, val V) *Entry[K, V] {
	return &Entry[K, V]{
		key:    key,
		val:    val,
		hasVal: true,
	}
}

func NewKeyEntry[K any, V any](key K) *Entry[K, V] {
	return &Entry[K, V]{
		key: key,
	}
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) Value() (V, bool) {
	return e.val, e.hasVal
}

func (e *Entry[K, V]) HasValue() bool {
	return e != nil && e.hasVal
}

// SetValue returns the replaced value if there was one.
func (e *Entry[K, V]) SetValue(val V) (V, bool) {
	old, had := e.val, e.hasVal
	e.val, e.hasVal = val, true
	return old, had
}

func (e *Entry[K, V]) ClearValue() {
	var zero V
	e.val, e.hasVal = zero, false
}

func (e *Entry[K, V]) String() string {
	if e == nil {
		return "()"
	}
	if !e.hasVal {
		return fmt.Sprintf("(%v)", e.key)
	}
	return fmt.Sprintf("(%v, %v)", e.key, e.val)
}
