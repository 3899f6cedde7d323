package main

import (
	"strings"
	"testing"

	"github.com/garagekit/garagekit/pkg/facility"
)

// TestStartupView tests the first render of a fresh board
func TestStartupView(t *testing.T) {
	helper := NewTestHelper(facility.DefaultConfig())
	helper.SendWindowSize(120, 40)

	view := helper.GetView()

	t.Log("Header and panes should render")
	for _, want := range []string{
		"Garage Board",
		"Levels",
		"Recent Activity",
		"no traffic yet",
		"q: Quit",
		"parks 0",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}

	t.Log("Nothing is built yet, so the free total is zero but not FULL")
	if !strings.Contains(view, "0 SLOTS FREE") {
		t.Error("View should show 0 SLOTS FREE before any level is built")
	}
	if strings.Contains(view, "FACILITY FULL") {
		t.Error("A fresh facility must not report FULL")
	}
	if got := strings.Count(view, "not built yet"); got != 3 {
		t.Errorf("Expected 3 unbuilt level rows, got %d", got)
	}

	t.Log("✓ Startup view renders correctly")
}

// TestViewAfterParking tests that traffic shows up in every pane
func TestViewAfterParking(t *testing.T) {
	helper := NewTestHelper(facility.DefaultConfig())
	helper.SendWindowSize(120, 40)

	t.Log("Parking two cars")
	helper.SendKeyRune('c')
	helper.SendKeyRune('c')

	view := helper.GetView()

	if !strings.Contains(view, "3 SLOTS FREE") {
		t.Error("Banner should show the built level's 3 free slots")
	}
	if !strings.Contains(view, "2/5") {
		t.Error("Level row should show 2/5 occupied")
	}
	if !strings.Contains(view, "parked car-") {
		t.Error("Activity pane should list the parks")
	}
	if !strings.Contains(view, "parks 2") {
		t.Error("Status bar should count 2 parks")
	}
	if got := strings.Count(view, "not built yet"); got != 2 {
		t.Errorf("Expected 2 remaining unbuilt level rows, got %d", got)
	}

	t.Log("✓ Traffic is reflected across the board")
}

// TestFullBanner tests the FULL banner when every slot of the ceiling is taken
func TestFullBanner(t *testing.T) {
	helper := NewTestHelper(facility.Config{MaxLevels: 1, LevelCapacity: 2, Strategy: "firstfit"})
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('c')
	helper.SendKeyRune('c')

	view := helper.GetView()
	if !strings.Contains(view, "FACILITY FULL") {
		t.Error("Banner should report FACILITY FULL")
	}
	if strings.Contains(view, "SLOTS FREE") {
		t.Error("Full facility should not show a free count")
	}

	t.Log("✓ Full banner renders correctly")
}

// TestOneSlotFreeBanner tests the singular form of the banner
func TestOneSlotFreeBanner(t *testing.T) {
	helper := NewTestHelper(facility.Config{MaxLevels: 1, LevelCapacity: 2, Strategy: "firstfit"})
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('c')

	view := helper.GetView()
	if !strings.Contains(view, "1 SLOT FREE") {
		t.Error("Banner should show the singular 1 SLOT FREE")
	}

	t.Log("✓ Singular banner renders correctly")
}

// TestZeroCapacityBanner tests the degenerate zero-level configuration
func TestZeroCapacityBanner(t *testing.T) {
	helper := NewTestHelper(facility.Config{MaxLevels: 0, LevelCapacity: 5, Strategy: "firstfit"})
	helper.SendWindowSize(120, 40)

	view := helper.GetView()
	if !strings.Contains(view, "NO CAPACITY CONFIGURED") {
		t.Error("Banner should call out the zero-capacity configuration")
	}
	if !strings.Contains(view, "no levels configured") {
		t.Error("Levels pane should explain there are no levels")
	}

	t.Log("✓ Zero-capacity banner renders correctly")
}

// TestErrorView tests that an invalid configuration renders the error screen
func TestErrorView(t *testing.T) {
	helper := NewTestHelper(facility.Config{MaxLevels: -1, LevelCapacity: 5})
	helper.SendWindowSize(120, 40)

	view := helper.GetView()
	if !strings.Contains(view, "Error:") {
		t.Error("View should render the error screen")
	}
	if !strings.Contains(view, "max_levels") {
		t.Errorf("Error should name the offending field, got %q", view)
	}

	t.Log("✓ Error view renders correctly")
}

// TestHelpOverlayView tests that the help modal lists the shortcuts
func TestHelpOverlayView(t *testing.T) {
	helper := NewTestHelper(facility.DefaultConfig())
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('?')

	view := helper.GetView()
	for _, want := range []string{
		"Keyboard Shortcuts",
		"park a car",
		"park a motorcycle",
		"toggle auto traffic",
		"quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("Help overlay should contain %q", want)
		}
	}

	t.Log("✓ Help overlay renders the shortcut list")
}

// TestFreeUpdateRefreshesBoard tests that a watcher broadcast refreshes the view
func TestFreeUpdateRefreshesBoard(t *testing.T) {
	helper := NewTestHelper(facility.DefaultConfig())
	helper.SendWindowSize(120, 40)

	t.Log("Parking on the facility directly, as concurrent traffic would")
	if _, err := helper.Garage().Park("car-external"); err != nil {
		t.Fatalf("Park failed: %v", err)
	}

	t.Log("The board has not heard about it yet")
	if got := helper.FreeCapacity(); got != 0 {
		t.Fatalf("Board should still show the stale free total 0, got %d", got)
	}

	t.Log("Delivering the broadcast")
	helper.SendFreeUpdate(4)

	if got := helper.FreeCapacity(); got != 4 {
		t.Errorf("Board should show 4 free after the broadcast, got %d", got)
	}

	view := helper.GetView()
	if !strings.Contains(view, "4 SLOTS FREE") {
		t.Error("Banner should show the broadcast free total")
	}
	if !strings.Contains(view, "1/5") {
		t.Error("Level pane should show the externally parked vehicle")
	}
	if !strings.Contains(view, "parks 1") {
		t.Error("Counters should pick up the external park")
	}

	t.Log("✓ Broadcasts refresh the whole board")
}

// TestWindowResize tests that resize messages are stored
func TestWindowResize(t *testing.T) {
	helper := NewTestHelper(facility.DefaultConfig())

	helper.SendWindowSize(100, 30)

	model := helper.GetModel()
	if model.width != 100 || model.height != 30 {
		t.Errorf("Expected 100x30, got %dx%d", model.width, model.height)
	}

	t.Log("✓ Window resize is tracked")
}
