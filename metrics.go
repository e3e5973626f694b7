package skipset

// Stats describes the physical shape of the structure.
type Stats struct {
	// Height is the effective height.
	Height int
	// Length is the number of elements.
	Length int
	// LevelCounts holds the number of nodes participating in each populated
	// level, bottom level first. LevelCounts[0] always equals Length.
	LevelCounts []int
}

// Stats walks every populated level and reports the structure's shape. It is
// intended for diagnostics and tests, not hot paths.
func (s *SkipSet[T]) Stats() Stats {
	st := Stats{
		Height:      s.height,
		Length:      s.length,
		LevelCounts: make([]int, s.height),
	}
	for i := 0; i < s.height; i++ {
		for curr := s.head.forward[i]; curr != nil; curr = curr.forward[i] {
			st.LevelCounts[i]++
		}
	}
	return st
}
