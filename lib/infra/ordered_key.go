package infra

import (
	"cmp"
)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// KeyComparator
// Assume i is the new key.
//  1. i == j (return 0)
//  2. i > j (return positive), turn to right part.
//  3. i < j (return negative), turn to left part.
type KeyComparator[K any] func(i, j K) int64

// OrderedKeyCompare is the natural (ascending) order of the ordered key.
// NaN is less than any other float and equal to NaN.
func OrderedKeyCompare[K OrderedKey](i, j K) int64 {
	return int64(cmp.Compare(i, j))
}

// ReverseKeyComparator flips the direction of cmp.
func ReverseKeyComparator[K any](cmp KeyComparator[K]) KeyComparator[K] {
	if cmp == nil {
		return nil
	}
	return func(i, j K) int64 {
		return cmp(j, i)
	}
}
