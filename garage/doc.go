// Package garage implements a capacity-constrained slot allocator for
// multi-level parking facilities.
//
// # Overview
//
// A Garage owns an ordered list of levels, grown lazily up to a fixed
// ceiling, each holding a bounded set of slots. Park places an opaque
// occupant tag in a slot chosen by a pluggable placement strategy and
// returns a claim ticket; Exit redeems the ticket and marks the slot empty
// in place. Ticket IDs start at 1, strictly increase, and are never reused.
//
// Slots are stable: an exit never removes or renumbers a slot, it only
// clears it for reuse. Levels are never removed or reordered. This keeps
// every outstanding ticket's (level, slot) claim valid regardless of the
// churn around it.
//
// # Usage Example
//
//	g, err := garage.New(3, 5, nil) // 3 levels x 5 slots, first-fit
//	if err != nil {
//	    return err
//	}
//
//	g.Watch(garage.WatcherFunc(func(free int) {
//	    fmt.Println("free slots:", free)
//	}))
//
//	ticket, err := g.Park("car-3f82c1d4")
//	if err != nil {
//	    return err // garage.ErrFull when the facility is at capacity
//	}
//
//	// Later, free the slot
//	err = g.Exit(ticket)
//
// # Placement
//
// Placement is delegated to a PlacementStrategy over the existing levels;
// when the strategy declines and the ceiling allows, the facility grows a
// fresh level and uses it directly. Passing a nil strategy to New selects
// the built-in first-fit. The garage/strategy package provides first-fit,
// best-fit, round-robin, and random implementations plus name-based
// construction.
//
// # Watchers
//
// Registered watchers receive the facility-wide free count after every
// committed park and exit, synchronously, in registration order, before the
// mutating call returns. Failed operations (ErrFull, ErrUnknownTicket,
// ErrConflict) broadcast nothing. Watchers run under the facility lock and
// must not call back into the Garage. The garage/watch package provides
// slog, prometheus, display-board, and test-recorder implementations.
//
// # Thread Safety
//
// All Garage methods are safe for concurrent use. A single mutex per
// facility serializes placement, mutation, ticketing, and broadcast, so
// each operation is atomic and broadcast order equals commit order.
//
// # Related Packages
//
//   - github.com/garagekit/garagekit/garage/strategy: placement strategies
//   - github.com/garagekit/garagekit/garage/watch: watcher implementations
//   - github.com/garagekit/garagekit/garage/vehicle: occupant-tag vocabulary
//   - github.com/garagekit/garagekit/pkg/facility: config-driven assembly
package garage
