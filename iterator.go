package skipset

// Iterator is a forward-only cursor over the set's elements in ascending
// order. It holds a non-owning reference into the structure: erasing the
// element an iterator points at invalidates it, while inserting other
// elements does not. Restart a traversal by obtaining a new iterator.
type Iterator[T any] struct {
	s       *SkipSet[T]
	current *node[T]
	value   T
	valid   bool
}

// Iterator returns a cursor positioned before the first element.
func (s *SkipSet[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{s: s}
}

// at returns an iterator positioned on n.
func (s *SkipSet[T]) at(n *node[T]) *Iterator[T] {
	return &Iterator[T]{s: s, current: n, value: n.value, valid: true}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[T]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Value returns the element at the iterator's current position. It should
// only be called when Valid reports true; on an invalid iterator it returns
// the zero value.
func (it *Iterator[T]) Value() T {
	var zero T
	if it == nil || !it.valid {
		return zero
	}
	return it.value
}

// Next advances the iterator and reports whether it moved onto an element.
// If the iterator was not valid prior to the call, it advances to the first
// element.
func (it *Iterator[T]) Next() bool {
	if it == nil || it.s == nil {
		return false
	}

	var next *node[T]
	if !it.valid {
		next = it.s.head.forward[0]
	} else if it.current != nil {
		next = it.current.forward[0]
	}

	if next == nil {
		it.invalidate()
		return false
	}

	it.current = next
	it.value = next.value
	it.valid = true
	return true
}

func (it *Iterator[T]) invalidate() {
	if it == nil {
		return
	}
	it.current = nil
	it.valid = false
	var zero T
	it.value = zero
}
