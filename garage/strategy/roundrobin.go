package strategy

import "github.com/garagekit/garagekit/garage"

// RoundRobin rotates placement across levels: each selection scans
// circularly from just past the previously chosen level and takes the first
// one with space. Levels created by facility growth join the rotation on
// the next selection.
//
// RoundRobin is stateful. One instance serves one facility; the facility
// lock serializes Select calls, so no further locking is needed.
type RoundRobin struct {
	next int
}

var _ garage.PlacementStrategy = (*RoundRobin)(nil)

// Select returns the next level in rotation with space, or nil when all are
// full.
func (r *RoundRobin) Select(levels []*garage.Level) *garage.Level {
	n := len(levels)
	if n == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		l := levels[(r.next+i)%n]
		if l.HasSpace() {
			r.next = l.Index() + 1
			return l
		}
	}
	return nil
}
