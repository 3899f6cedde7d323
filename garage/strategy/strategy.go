// Package strategy provides placement strategies for garage facilities.
//
// All strategies implement garage.PlacementStrategy: given the facility's
// levels in creation order, Select returns a level with space or nil to let
// the facility grow or reject. Select runs with the facility lock held, so
// stateful strategies (RoundRobin, Random) need no locking of their own as
// long as each instance serves one facility.
//
// Available Strategies:
//   - FirstFit: lowest-index level with space (the default)
//   - BestFit: level with the most free capacity (spreads load)
//   - RoundRobin: rotate across levels with space
//   - Random: uniform pick among levels with space (seedable)
package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/garagekit/garagekit/garage"
)

// Kind selects a placement strategy by enum.
type Kind int

const (
	// KindFirstFit fills the lowest-index level first.
	// Best for: predictable placement, dense lower levels
	// Trade-off: upper levels sit idle until lower ones fill.
	KindFirstFit Kind = iota

	// KindBestFit sends occupants to the emptiest level.
	// Best for: spreading load evenly across open levels
	// Trade-off: touches every level on each selection.
	KindBestFit

	// KindRoundRobin rotates across levels with space.
	// Best for: fair rotation without occupancy inspection
	// Trade-off: placement depends on call history.
	KindRoundRobin

	// KindRandom picks uniformly among levels with space.
	// Best for: adversarial traffic, load smoothing on average
	// Trade-off: nondeterministic unless seeded.
	KindRandom
)

// String returns the canonical name used by Parse.
func (k Kind) String() string {
	switch k {
	case KindFirstFit:
		return "firstfit"
	case KindBestFit:
		return "bestfit"
	case KindRoundRobin:
		return "roundrobin"
	case KindRandom:
		return "random"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Parse resolves a strategy name. Names are case-insensitive and tolerate
// dash or underscore separators ("first-fit", "round_robin").
func Parse(s string) (Kind, error) {
	norm := strings.ToLower(s)
	norm = strings.ReplaceAll(norm, "-", "")
	norm = strings.ReplaceAll(norm, "_", "")
	switch norm {
	case "firstfit":
		return KindFirstFit, nil
	case "bestfit":
		return KindBestFit, nil
	case "roundrobin":
		return KindRoundRobin, nil
	case "random":
		return KindRandom, nil
	default:
		return 0, fmt.Errorf(
			"strategy: unknown kind %q (valid: firstfit, bestfit, roundrobin, random)", s)
	}
}

// New constructs the strategy for a kind. Random instances are seeded from
// the clock; use NewRandom for reproducible placement.
func New(k Kind) (garage.PlacementStrategy, error) {
	switch k {
	case KindFirstFit:
		return FirstFit{}, nil
	case KindBestFit:
		return BestFit{}, nil
	case KindRoundRobin:
		return &RoundRobin{}, nil
	case KindRandom:
		return NewRandom(time.Now().UnixNano()), nil
	default:
		return nil, fmt.Errorf("strategy: unknown kind %d", int(k))
	}
}
