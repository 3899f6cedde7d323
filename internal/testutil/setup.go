// Package testutil provides shared setup helpers for tests that drive
// whole facilities rather than single packages.
package testutil

import (
	"testing"

	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/garage/vehicle"
)

// NewGarage constructs a facility or fails the test.
//
// Example:
//
//	g := testutil.NewGarage(t, 3, 5, nil)
func NewGarage(t testing.TB, maxLevels, levelCapacity int, s garage.PlacementStrategy) *garage.Garage {
	t.Helper()

	g, err := garage.New(maxLevels, levelCapacity, s)
	if err != nil {
		t.Fatalf("Failed to construct garage: %v", err)
	}
	return g
}

// Fill parks n cars and returns their tickets in issue order.
// Fails the test on any rejection.
func Fill(t testing.TB, g *garage.Garage, n int) []garage.TicketID {
	t.Helper()

	ids := make([]garage.TicketID, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.Park(vehicle.NewTag(vehicle.Car))
		if err != nil {
			t.Fatalf("Failed to park occupant %d of %d: %v", i+1, n, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// FillToCapacity parks until every slot the facility can ever create is
// taken, and returns the tickets.
func FillToCapacity(t testing.TB, g *garage.Garage) []garage.TicketID {
	t.Helper()
	return Fill(t, g, g.Capacity()-g.Stats().Outstanding)
}

// Drain exits every ticket. Fails the test on any unknown ticket.
func Drain(t testing.TB, g *garage.Garage, ids []garage.TicketID) {
	t.Helper()

	for _, id := range ids {
		if err := g.Exit(id); err != nil {
			t.Fatalf("Failed to exit ticket %d: %v", id, err)
		}
	}
}
