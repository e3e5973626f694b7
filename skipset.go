// Package skipset implements an ordered set backed by a probabilistic skip
// list. Elements are unique under the configured ordering and are visited in
// ascending order by forward iteration. Search, insertion and erasure run in
// expected O(log n) time.
//
// The structure is not safe for concurrent use; callers needing shared access
// must serialize externally.
package skipset

import (
	"cmp"
	"errors"
	"math/rand/v2"
)

// Less reports whether a orders strictly before b. It must define a strict
// weak ordering; two elements are considered equal when neither orders
// before the other.
type Less[T any] func(a, b T) bool

// Greater orders elements descending. It is the mirror of cmp.Less and is
// handy as a predicate for NewLess.
func Greater[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// ErrEmptySet is returned by Front when the set holds no elements.
var ErrEmptySet = errors.New("front of empty set")

// SkipSet is an ordered set of unique elements. The zero value is not usable;
// construct instances with New, NewLess, Of or OfLess.
type SkipSet[T any] struct {
	less   Less[T]
	head   *node[T]
	height int
	length int
	lvl    levelGenerator
	pool   Pool
}

// New returns an empty set ordered ascending by cmp.Less.
func New[T cmp.Ordered](opts ...Option) *SkipSet[T] {
	return NewLess[T](cmp.Less[T], opts...)
}

// NewLess returns an empty set ordered by the given predicate. The predicate
// and any configured pool are fixed for the set's lifetime.
func NewLess[T any](less Less[T], opts ...Option) *SkipSet[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &SkipSet[T]{
		less:   less,
		head:   &node[T]{forward: make([]*node[T], cfg.maxLevel)},
		height: 1,
		lvl:    levelGenerator{maxLevel: cfg.maxLevel, p: cfg.p, src: cfg.source},
		pool:   cfg.pool,
	}
}

// Of returns a set ordered by cmp.Less holding the given values.
func Of[T cmp.Ordered](values ...T) *SkipSet[T] {
	return OfLess(cmp.Less[T], values...)
}

// OfLess returns a set ordered by the given predicate holding the given
// values.
func OfLess[T any](less Less[T], values ...T) *SkipSet[T] {
	s := NewLess(less)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// locate is the shared traversal primitive. It returns the rightmost node
// strictly before value at every level currently in use (the update chain
// used to splice or unlink a node), together with that node's level-0
// successor: the first node whose value is >= value, or nil.
func (s *SkipSet[T]) locate(value T) (update []*node[T], next *node[T]) {
	update = make([]*node[T], s.lvl.maxLevel)
	curr := s.head
	for i := s.height - 1; i >= 0; i-- {
		for curr.forward[i] != nil && s.less(curr.forward[i].value, value) {
			curr = curr.forward[i]
		}
		update[i] = curr
	}
	return update, curr.forward[0]
}

// equivalent reports equality under the ordering predicate.
func (s *SkipSet[T]) equivalent(a, b T) bool {
	return !s.less(a, b) && !s.less(b, a)
}

// Len returns the number of elements in the set.
func (s *SkipSet[T]) Len() int {
	return s.length
}

// Empty reports whether the set holds no elements.
func (s *SkipSet[T]) Empty() bool {
	return s.length == 0
}

// Height returns the effective height: the number of levels populated by at
// least one node, or 1 for an empty set.
func (s *SkipSet[T]) Height() int {
	return s.height
}

// Front returns the smallest element. It returns ErrEmptySet when the set is
// empty.
func (s *SkipSet[T]) Front() (T, error) {
	if first := s.head.forward[0]; first != nil {
		return first.value, nil
	}
	var zero T
	return zero, ErrEmptySet
}

// Values returns the elements in ascending order.
func (s *SkipSet[T]) Values() []T {
	out := make([]T, 0, s.length)
	for curr := s.head.forward[0]; curr != nil; curr = curr.forward[0] {
		out = append(out, curr.value)
	}
	return out
}

// Equal reports whether both sets hold pairwise equivalent elements under
// s's ordering predicate.
func (s *SkipSet[T]) Equal(other *SkipSet[T]) bool {
	if s == other {
		return true
	}
	if other == nil || s.length != other.length {
		return false
	}
	a, b := s.head.forward[0], other.head.forward[0]
	for a != nil && b != nil {
		if !s.equivalent(a.value, b.value) {
			return false
		}
		a, b = a.forward[0], b.forward[0]
	}
	return a == nil && b == nil
}

// Clone returns an independent set with the same elements, ordering and
// configuration. Elements are re-inserted in order under a freshly seeded
// randomness source, so the clone's level topology is not a structural copy
// of the original.
func (s *SkipSet[T]) Clone() *SkipSet[T] {
	clone := NewLess(s.less, WithMaxLevel(s.lvl.maxLevel), WithP(s.lvl.p), WithPool(s.pool))
	for curr := s.head.forward[0]; curr != nil; curr = curr.forward[0] {
		clone.Insert(curr.value)
	}
	return clone
}

// Take transfers other's elements, ordering and randomness state into s,
// destroying s's previous contents. other is left as a freshly constructed
// empty set and remains usable.
func (s *SkipSet[T]) Take(other *SkipSet[T]) {
	if s == other {
		return
	}
	s.Clear()
	s.less = other.less
	s.head = other.head
	s.height = other.height
	s.length = other.length
	s.lvl = other.lvl
	s.pool = other.pool

	other.head = &node[T]{forward: make([]*node[T], other.lvl.maxLevel)}
	other.height = 1
	other.length = 0
	other.lvl.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// Swap exchanges the contents and configuration of both sets.
func (s *SkipSet[T]) Swap(other *SkipSet[T]) {
	if s == other {
		return
	}
	*s, *other = *other, *s
}
