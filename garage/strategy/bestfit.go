package strategy

import "github.com/garagekit/garagekit/garage"

// BestFit selects the level with the most free capacity, spreading
// occupants across open levels. Ties break to the lowest index, which keeps
// the strategy deterministic.
type BestFit struct{}

var _ garage.PlacementStrategy = BestFit{}

// Select returns the emptiest level with space, or nil when every level is
// full.
func (BestFit) Select(levels []*garage.Level) *garage.Level {
	var best *garage.Level
	bestFree := 0
	for _, l := range levels {
		if free := l.FreeCapacity(); free > bestFree {
			best = l
			bestFree = free
		}
	}
	return best
}
