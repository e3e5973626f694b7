package skipset

// Insert adds value to the set. It returns the position of the element and
// true when a new node was created, or the position of the existing
// equivalent element and false. The node is allocated before any link is
// rewritten, so a failed allocation leaves the set untouched.
func (s *SkipSet[T]) Insert(value T) (*Iterator[T], bool) {
	update, next := s.locate(value)
	if next != nil && s.equivalent(next.value, value) {
		return s.at(next), false
	}

	level := s.lvl.draw()
	n := s.acquireNode(value, level)

	if level > s.height {
		for i := s.height; i < level; i++ {
			update[i] = s.head
		}
		s.height = level
	}

	for i := 0; i < level; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	s.length++
	return s.at(n), true
}

// Find returns the position of the element equivalent to value, or an
// invalid iterator when no such element exists.
func (s *SkipSet[T]) Find(value T) *Iterator[T] {
	_, next := s.locate(value)
	if next != nil && s.equivalent(next.value, value) {
		return s.at(next)
	}
	return &Iterator[T]{s: s}
}

// Contains reports whether an element equivalent to value is present.
func (s *SkipSet[T]) Contains(value T) bool {
	return s.Find(value).Valid()
}

// Erase removes the element equivalent to value and returns the number of
// elements removed: 1 when present, 0 otherwise. Trailing empty levels are
// trimmed so the effective height tracks the tallest remaining node.
func (s *SkipSet[T]) Erase(value T) int {
	update, target := s.locate(value)
	if target == nil || !s.equivalent(target.value, value) {
		return 0
	}

	for i := 0; i < s.height; i++ {
		if update[i].forward[i] != target {
			// Levels above the target's own height never point at it.
			break
		}
		update[i].forward[i] = target.forward[i]
	}

	s.releaseNode(target)
	s.length--

	for s.height > 1 && s.head.forward[s.height-1] == nil {
		s.height--
	}
	return 1
}

// EraseAt removes the element at the iterator's position and returns the
// number of elements removed. An invalid iterator removes nothing. The
// removal searches by value, so it costs a full traversal; the iterator is
// invalidated on success.
func (s *SkipSet[T]) EraseAt(it *Iterator[T]) int {
	if !it.Valid() {
		return 0
	}
	removed := s.Erase(it.Value())
	it.invalidate()
	return removed
}

// Clear removes every element, leaving an empty, usable set. Nodes are
// walked in level-0 order and released before the head links are reset.
func (s *SkipSet[T]) Clear() {
	curr := s.head.forward[0]
	for curr != nil {
		next := curr.forward[0]
		s.releaseNode(curr)
		curr = next
	}
	for i := range s.head.forward {
		s.head.forward[i] = nil
	}
	s.height = 1
	s.length = 0
}
