package garage

// PlacementStrategy chooses which level receives the next occupant.
//
// Select examines the facility's levels in creation order and returns one
// with space, or nil when none is usable (the facility then grows a fresh
// level or rejects the park). Select runs with the facility lock held:
// implementations must not block, must not mutate level state, and need no
// locking of their own for per-facility state. Returning a full level is
// tolerated (the facility re-runs selection once) but is a strategy bug.
//
// Implementations live in garage/strategy:
//   - FirstFit: lowest-index level with space (the default)
//   - BestFit: level with the most free capacity
//   - RoundRobin: rotate across levels
//   - Random: uniform pick among levels with space
type PlacementStrategy interface {
	Select(levels []*Level) *Level
}

// firstFit is the built-in default used when New receives a nil strategy.
// Mirrors strategy.FirstFit.
type firstFit struct{}

var _ PlacementStrategy = firstFit{}

func (firstFit) Select(levels []*Level) *Level {
	for _, l := range levels {
		if l.HasSpace() {
			return l
		}
	}
	return nil
}
