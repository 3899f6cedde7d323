package strategy

import (
	"math/rand"

	"github.com/garagekit/garagekit/garage"
)

// Random selects uniformly among levels with space. Construct via NewRandom
// with a fixed seed for reproducible placement, or through New(KindRandom)
// for clock seeding.
//
// Random is stateful (its generator advances per call). One instance serves
// one facility; the facility lock serializes Select calls.
type Random struct {
	rng *rand.Rand
}

var _ garage.PlacementStrategy = (*Random)(nil)

// NewRandom returns a Random strategy driven by the given seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Select returns a uniformly chosen level with space, or nil when all are
// full.
func (r *Random) Select(levels []*garage.Level) *garage.Level {
	open := make([]*garage.Level, 0, len(levels))
	for _, l := range levels {
		if l.HasSpace() {
			open = append(open, l)
		}
	}
	if len(open) == 0 {
		return nil
	}
	return open[r.rng.Intn(len(open))]
}
