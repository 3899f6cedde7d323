package testutil

import (
	"testing"

	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/garage/vehicle"
)

// ScriptStep is one operation in a scripted traffic sequence.
type ScriptStep struct {
	// Op is "park" or "exit".
	Op string

	// Tag is the occupant tag for park steps. Empty mints a car tag.
	Tag string

	// Ticket is the ticket to redeem for exit steps. Issue order makes
	// IDs predictable in scripts: 1, 2, 3, ...
	Ticket garage.TicketID
}

// Park returns a park step for tag.
func Park(tag string) ScriptStep {
	return ScriptStep{Op: "park", Tag: tag}
}

// Exit returns an exit step for ticket id.
func Exit(id garage.TicketID) ScriptStep {
	return ScriptStep{Op: "exit", Ticket: id}
}

// RunScript applies steps in order and returns the tickets issued by the
// park steps. Every step must succeed; scenarios that expect rejections
// call the facility directly.
func RunScript(t testing.TB, g *garage.Garage, steps []ScriptStep) []garage.TicketID {
	t.Helper()

	var issued []garage.TicketID
	for i, step := range steps {
		switch step.Op {
		case "park":
			tag := step.Tag
			if tag == "" {
				tag = vehicle.NewTag(vehicle.Car)
			}
			id, err := g.Park(tag)
			if err != nil {
				t.Fatalf("Step %d: park %q failed: %v", i+1, tag, err)
			}
			issued = append(issued, id)
		case "exit":
			if err := g.Exit(step.Ticket); err != nil {
				t.Fatalf("Step %d: exit ticket %d failed: %v", i+1, step.Ticket, err)
			}
		default:
			t.Fatalf("Step %d: unknown op %q", i+1, step.Op)
		}
	}
	return issued
}
