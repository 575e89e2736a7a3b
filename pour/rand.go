package pour

import (
	"gonum.org/v1/gonum/stat/distuv"
	"math"
	"sync"
)

// Randomizer picks start delays.
type Randomizer interface {
	// Draw returns an integer uniformly distributed in [0, n].
	Draw(n int) int
}

// Uniform draws from a continuous uniform distribution over [0, n+1) and floors the result.
type Uniform struct {
	mu sync.Mutex
}

func (u *Uniform) Draw(n int) int {
	if n <= 0 {
		return 0
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	dist := distuv.Uniform{Min: 0, Max: float64(n + 1)}
	v := int(math.Floor(dist.Rand()))
	if v > n {
		v = n
	}
	return v
}

var _ Randomizer = (*Uniform)(nil)
