package skipset

import "math/rand/v2"

const (
	// DefaultMaxLevel bounds node heights. A maximum level of 6 comfortably
	// serves sets in the tens of thousands of elements; raise it for larger
	// working sets.
	DefaultMaxLevel = 6

	// DefaultP is the per-level promotion probability.
	DefaultP = 0.5
)

type config struct {
	maxLevel int
	p        float64
	source   rand.Source
	pool     Pool
}

func defaultConfig() config {
	return config{
		maxLevel: DefaultMaxLevel,
		p:        DefaultP,
	}
}

// Option configures a set at construction time.
type Option func(*config)

// WithMaxLevel sets the maximum node height. Values below 1 are ignored.
func WithMaxLevel(level int) Option {
	return func(c *config) {
		if level >= 1 {
			c.maxLevel = level
		}
	}
}

// WithP sets the level promotion probability. Values outside (0, 1) are
// ignored.
func WithP(p float64) Option {
	return func(c *config) {
		if p > 0 && p < 1 {
			c.p = p
		}
	}
}

// WithRandomSource sets the randomness source used to draw node levels.
// The default is a freshly seeded PCG source.
func WithRandomSource(src rand.Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithPool sets the pool used to recycle node shells.
func WithPool(pool Pool) Option {
	return func(c *config) {
		c.pool = pool
	}
}
