package skipset

// Pool recycles node shells between erasures and insertions. *sync.Pool
// satisfies it. Pools only trade allocations for reuse; the set owns every
// live node regardless of where its memory came from.
type Pool interface {
	Get() any
	Put(any)
}

// acquireNode returns a node sized for the given level, reusing a shell from
// the pool when one is available.
func (s *SkipSet[T]) acquireNode(value T, level int) *node[T] {
	if s.pool != nil {
		if n, ok := s.pool.Get().(*node[T]); ok && n != nil {
			if cap(n.forward) < level {
				n.forward = make([]*node[T], level)
			} else {
				n.forward = n.forward[:level]
				for i := range n.forward {
					n.forward[i] = nil
				}
			}
			n.value = value
			return n
		}
	}
	return &node[T]{value: value, forward: make([]*node[T], level)}
}

// releaseNode clears an unlinked node and hands it to the pool. Links are
// dropped unconditionally so released nodes never pin their former
// neighbors.
func (s *SkipSet[T]) releaseNode(n *node[T]) {
	if n == nil || n == s.head {
		return
	}
	var zero T
	n.value = zero
	for i := range n.forward {
		n.forward[i] = nil
	}
	if s.pool != nil {
		s.pool.Put(n)
	}
}
