package bstset

import "github.com/pkg/errors"

// ErrOutOfBounds is returned when an Iterator is moved past the greatest
// or before the smallest key, or when the zero Iterator is moved.
var ErrOutOfBounds = errors.New("bstset: iterator out of bounds")

// Iterator is a position in a Set. It stays valid while keys are inserted
// and is invalidated by Clear. The zero Iterator points at nothing.
type Iterator[K any] struct {
	set  *Set[K]
	node int32
}

func (s *Set[K]) at(n int32) Iterator[K] {
	return Iterator[K]{set: s, node: n}
}

// Valid reports whether the iterator points at a key.
func (it Iterator[K]) Valid() bool {
	return it.set != nil && it.node != nilNode
}

// Key returns the key at the iterator's position.
// It panics if the iterator is not Valid.
func (it Iterator[K]) Key() K {
	if !it.Valid() {
		panic("bstset: Key called on an invalid iterator")
	}

	return it.set.nodes[it.node].key
}

// Next returns an iterator positioned at the next greater key.
func (it Iterator[K]) Next() (Iterator[K], error) {
	if !it.Valid() {
		return Iterator[K]{}, ErrOutOfBounds
	}

	n := it.set.successor(it.node)
	if n == nilNode {
		return Iterator[K]{}, ErrOutOfBounds
	}

	return it.set.at(n), nil
}

// Prev returns an iterator positioned at the next smaller key.
func (it Iterator[K]) Prev() (Iterator[K], error) {
	if !it.Valid() {
		return Iterator[K]{}, ErrOutOfBounds
	}

	n := it.set.predecessor(it.node)
	if n == nilNode {
		return Iterator[K]{}, ErrOutOfBounds
	}

	return it.set.at(n), nil
}

// Equal reports whether both iterators point at the same position.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.set == other.set && it.node == other.node
}
