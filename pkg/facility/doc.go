// Package facility is the high-level entry point for assembling a parking
// facility from configuration.
//
// # Overview
//
// The core packages compose explicitly: garage holds the allocator,
// garage/strategy the placement policies, garage/watch the observer sinks.
// This package wires them together from a single Config so CLIs, services,
// and examples construct facilities one way:
//
//	cfg, err := facility.LoadConfig("garage.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := facility.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Config maps 1:1 onto a small YAML document:
//
//	max_levels: 3
//	level_capacity: 5
//	strategy: firstfit
//	seed: 42        # random strategy only
//
// LoadConfig starts from DefaultConfig and overlays the file, so partial
// documents work and a missing file silently yields the defaults.
//
// # Re-exports
//
// The core types callers touch every day (Garage, TicketID, Watcher,
// Stats) and the surface error sentinels are aliased here, so most
// programs need only this one import.
//
// # Related Packages
//
//   - github.com/garagekit/garagekit/garage: the core allocator
//   - github.com/garagekit/garagekit/garage/strategy: placement policies
//   - github.com/garagekit/garagekit/garage/watch: watcher adapters
package facility
