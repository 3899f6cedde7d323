package strategy

import "github.com/garagekit/garagekit/garage"

// FirstFit selects the lowest-index level with space. Stateless and
// deterministic: identical level states always yield identical selections.
type FirstFit struct{}

var _ garage.PlacementStrategy = FirstFit{}

// Select returns the first level that can take another occupant.
func (FirstFit) Select(levels []*garage.Level) *garage.Level {
	for _, l := range levels {
		if l.HasSpace() {
			return l
		}
	}
	return nil
}
