// Package bstset implements an ordered set backed by an unbalanced binary
// search tree.
//
// Nodes live in a single slice and reference each other by index, with
// index 0 acting as nil. Every node keeps a link to its parent, so an
// Iterator can move to the in-order successor or predecessor without a
// stack. The set also caches its leftmost and rightmost nodes, which makes
// Min and Max O(1) and turns inserting a new minimum or maximum into an
// O(1) append below the cached node.
//
// A Set is not safe for concurrent use.
package bstset

import (
	"cmp"
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// nilNode is the index of the sentinel at nodes[0].
const nilNode = 0

// maxNodes is the largest node index a link can hold.
var maxNodes = math.MaxInt32

type node[K any] struct {
	key                 K
	left, right, parent int32
}

type Set[K any] struct {
	// nodes[0] is the zero-valued sentinel, len(nodes) == size+1.
	nodes []node[K]

	root, leftmost, rightmost int32

	cmp func(a, b K) int
}

// New returns an empty set ordered by the natural order of K.
func New[K constraints.Ordered]() *Set[K] {
	return NewFunc[K](cmp.Compare[K])
}

// NewFunc returns an empty set ordered by compare, which returns a negative
// number when a < b, a positive number when a > b and zero when a and b
// are the same key.
func NewFunc[K any](compare func(a, b K) int) *Set[K] {
	return &Set[K]{
		nodes: make([]node[K], 1),
		cmp:   compare,
	}
}

// Size returns the number of keys in the set.
func (s *Set[K]) Size() int {
	return len(s.nodes) - 1
}

func (s *Set[K]) Empty() bool {
	return s.root == nilNode
}

// Clear removes every key. Iterators obtained before are invalidated.
func (s *Set[K]) Clear() {
	// Zero the released nodes so keys holding pointers can be collected,
	// the backing array is kept for reuse.
	clear(s.nodes[1:])
	s.nodes = s.nodes[:1]
	s.root, s.leftmost, s.rightmost = nilNode, nilNode, nilNode
}

func (s *Set[K]) newNode(key K, parent int32) int32 {
	if len(s.nodes) > maxNodes {
		panic("bstset: set is full, node indices are 32-bit")
	}

	s.nodes = append(s.nodes, node[K]{key: key, parent: parent})
	return int32(len(s.nodes) - 1)
}

// Insert adds key to the set. It returns an iterator positioned at key and
// whether the key was added; false means the key was already present and
// the iterator points at the existing node.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	if s.root == nilNode {
		s.root = s.newNode(key, nilNode)
		s.leftmost, s.rightmost = s.root, s.root

		return s.at(s.root), true
	}

	// New extremes hang directly below the cached nodes.
	switch c := s.cmp(key, s.nodes[s.leftmost].key); {
	case c == 0:
		return s.at(s.leftmost), false
	case c < 0:
		n := s.newNode(key, s.leftmost)
		s.nodes[s.leftmost].left = n
		s.leftmost = n

		return s.at(n), true
	}

	switch c := s.cmp(key, s.nodes[s.rightmost].key); {
	case c == 0:
		return s.at(s.rightmost), false
	case c > 0:
		n := s.newNode(key, s.rightmost)
		s.nodes[s.rightmost].right = n
		s.rightmost = n

		return s.at(n), true
	}

	var (
		parent int32
		cur    = s.root
		c      int
	)
	for cur != nilNode {
		parent = cur

		c = s.cmp(key, s.nodes[cur].key)
		switch {
		case c < 0:
			cur = s.nodes[cur].left
		case c > 0:
			cur = s.nodes[cur].right
		default:
			return s.at(cur), false
		}
	}

	n := s.newNode(key, parent)
	if c < 0 {
		s.nodes[parent].left = n
	} else {
		s.nodes[parent].right = n
	}

	return s.at(n), true
}

func (s *Set[K]) find(key K) int32 {
	cur := s.root
	for cur != nilNode {
		c := s.cmp(key, s.nodes[cur].key)
		switch {
		case c < 0:
			cur = s.nodes[cur].left
		case c > 0:
			cur = s.nodes[cur].right
		default:
			return cur
		}
	}

	return nilNode
}

// Find returns an iterator positioned at key.
func (s *Set[K]) Find(key K) (Iterator[K], bool) {
	n := s.find(key)
	if n == nilNode {
		return Iterator[K]{}, false
	}

	return s.at(n), true
}

func (s *Set[K]) Contains(key K) bool {
	return s.find(key) != nilNode
}

// Min returns an iterator positioned at the smallest key.
func (s *Set[K]) Min() (Iterator[K], bool) {
	if s.leftmost == nilNode {
		return Iterator[K]{}, false
	}

	return s.at(s.leftmost), true
}

// Max returns an iterator positioned at the greatest key.
func (s *Set[K]) Max() (Iterator[K], bool) {
	if s.rightmost == nilNode {
		return Iterator[K]{}, false
	}

	return s.at(s.rightmost), true
}

// All yields the keys in ascending order.
// The set must not be modified during iteration.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := s.leftmost; n != nilNode; n = s.successor(n) {
			if !yield(s.nodes[n].key) {
				return
			}
		}
	}
}

// Backward yields the keys in descending order.
// The set must not be modified during iteration.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := s.rightmost; n != nilNode; n = s.predecessor(n) {
			if !yield(s.nodes[n].key) {
				return
			}
		}
	}
}

// successor returns the node holding the next greater key, or nilNode.
func (s *Set[K]) successor(n int32) int32 {
	if r := s.nodes[n].right; r != nilNode {
		for s.nodes[r].left != nilNode {
			r = s.nodes[r].left
		}

		return r
	}

	// Climb until we arrive from a left child.
	p := s.nodes[n].parent
	for p != nilNode && s.nodes[p].right == n {
		n, p = p, s.nodes[p].parent
	}

	return p
}

// predecessor returns the node holding the next smaller key, or nilNode.
func (s *Set[K]) predecessor(n int32) int32 {
	if l := s.nodes[n].left; l != nilNode {
		for s.nodes[l].right != nilNode {
			l = s.nodes[l].right
		}

		return l
	}

	p := s.nodes[n].parent
	for p != nilNode && s.nodes[p].left == n {
		n, p = p, s.nodes[p].parent
	}

	return p
}
