package main

import (
	"testing"

	"github.com/garagekit/garagekit/pkg/facility"
)

// TestBoardWatcherNeverBlocks tests that broadcasts are dropped, not queued,
// once the update channel is full. Broadcasts run under the facility lock,
// so a blocking send would stall every park and exit.
func TestBoardWatcherNeverBlocks(t *testing.T) {
	ch := make(chan int, 1)
	w := boardWatcher{updates: ch}

	w.Update(7)
	w.Update(8)
	w.Update(9)

	if got := <-ch; got != 7 {
		t.Errorf("Expected the first total to be kept, got %d", got)
	}
	select {
	case got := <-ch:
		t.Errorf("Overflowing totals should be dropped, got %d", got)
	default:
	}

	t.Log("✓ Watcher never blocks the facility")
}

// TestNewModelRegistersWatcher tests that facility broadcasts reach the
// model's update channel
func TestNewModelRegistersWatcher(t *testing.T) {
	m, err := NewModel(facility.DefaultConfig())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	if _, err := m.g.Park("car-probe"); err != nil {
		t.Fatalf("Park failed: %v", err)
	}

	select {
	case got := <-m.updates:
		if got != 4 {
			t.Errorf("Expected a broadcast of 4 free, got %d", got)
		}
	default:
		t.Fatal("Expected a broadcast after parking")
	}

	t.Log("✓ The model's watcher is registered with the facility")
}

// TestRefreshMirrorsFacility tests that refresh pulls a consistent snapshot
func TestRefreshMirrorsFacility(t *testing.T) {
	m, err := NewModel(facility.DefaultConfig())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := m.g.Park("car-probe"); err != nil {
			t.Fatalf("Park %d failed: %v", i, err)
		}
	}

	m.refresh()

	if m.free != m.g.FreeCapacity() {
		t.Errorf("free = %d, facility reports %d", m.free, m.g.FreeCapacity())
	}
	if m.stats.Parks != 3 {
		t.Errorf("Expected 3 parks in the mirrored stats, got %d", m.stats.Parks)
	}
	if len(m.levels) != 1 {
		t.Errorf("Expected 1 built level in the snapshot, got %d", len(m.levels))
	}

	t.Log("✓ Refresh mirrors the facility state")
}

// TestNewModelRejectsInvalidConfig tests that construction surfaces
// validation errors
func TestNewModelRejectsInvalidConfig(t *testing.T) {
	_, err := NewModel(facility.Config{MaxLevels: 2, LevelCapacity: 2, Strategy: "teleport"})
	if err == nil {
		t.Fatal("Expected an error for an unknown strategy")
	}

	t.Log("✓ Invalid configurations are rejected at construction")
}
