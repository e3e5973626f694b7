package skipset

import (
	"math/bits"
	"math/rand/v2"
)

const float64Unit = 1.0 / (1 << 53)

// levelGenerator draws node heights from a geometric distribution: starting
// at 1, the level is promoted with probability p until it reaches maxLevel.
// The source is per-instance mutable state, advanced on every insertion.
type levelGenerator struct {
	maxLevel int
	p        float64
	src      rand.Source
}

// draw returns a level in [1, maxLevel]. For the default p of 1/2 the number
// of trailing zero bits of one random word already follows the wanted
// geometric distribution, which avoids a float comparison per promotion.
func (g *levelGenerator) draw() int {
	if g.maxLevel <= 1 {
		return 1
	}

	if g.p == DefaultP {
		level := bits.TrailingZeros64(g.src.Uint64()) + 1
		if level > g.maxLevel {
			return g.maxLevel
		}
		return level
	}

	level := 1
	for level < g.maxLevel {
		if float64(g.src.Uint64()>>11)*float64Unit >= g.p {
			break
		}
		level++
	}
	return level
}
