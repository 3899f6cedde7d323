package garage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Facility Creation Utilities
// ============================================================================

// newTestGarage creates a facility with the built-in first-fit strategy.
func newTestGarage(t testing.TB, maxLevels, levelCapacity int) *Garage {
	t.Helper()

	g, err := New(maxLevels, levelCapacity, nil)
	require.NoError(t, err, "failed to create test garage")
	return g
}

// fillGarage parks n occupants and returns their tickets in issue order.
func fillGarage(t testing.TB, g *Garage, n int) []TicketID {
	t.Helper()

	tickets := make([]TicketID, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.Park("occupant")
		require.NoError(t, err, "park %d of %d should succeed", i+1, n)
		tickets = append(tickets, id)
	}
	return tickets
}

// ============================================================================
// Mock Strategy
// ============================================================================

// MockStrategy replays scripted selections for testing the facility's
// fallback and retry paths. Each Select call consumes the next entry of
// Picks: a level index, or -1 for nil (decline). Calls past the end of
// Picks decline.
type MockStrategy struct {
	Picks []int
	Calls int
}

// Select returns the scripted level for this call position.
func (m *MockStrategy) Select(levels []*Level) *Level {
	i := m.Calls
	m.Calls++
	if i >= len(m.Picks) {
		return nil
	}
	p := m.Picks[i]
	if p < 0 || p >= len(levels) {
		return nil
	}
	return levels[p]
}

// Reset clears the call position.
func (m *MockStrategy) Reset() {
	m.Calls = 0
}

// ============================================================================
// Mock Watcher
// ============================================================================

// MockWatcher is a spy that records every broadcast total. Broadcasts run
// under the facility lock, so no additional synchronization is needed here.
type MockWatcher struct {
	Totals []int
}

// Update appends the broadcast total.
func (m *MockWatcher) Update(free int) {
	m.Totals = append(m.Totals, free)
}

// Last returns the most recent total, or -1 if none was received.
func (m *MockWatcher) Last() int {
	if len(m.Totals) == 0 {
		return -1
	}
	return m.Totals[len(m.Totals)-1]
}

// CallCount returns the number of broadcasts received.
func (m *MockWatcher) CallCount() int { return len(m.Totals) }

// Reset clears recorded totals.
func (m *MockWatcher) Reset() {
	m.Totals = nil
}

// ============================================================================
// Invariant Checking
// ============================================================================

// assertInvariants performs comprehensive consistency checks on the facility.
// Fails the test immediately if any violation is found.
func assertInvariants(t testing.TB, g *Garage) {
	t.Helper()

	g.mu.Lock()
	defer g.mu.Unlock()

	// Level list never exceeds the ceiling; indexes reflect creation order.
	require.LessOrEqual(t, len(g.levels), g.maxLevels, "level count exceeds ceiling")
	for i, l := range g.levels {
		assert.Equal(t, i, l.index, "level %d has index %d", i, l.index)
		assert.Equal(t, g.levelCapacity, l.capacity, "level %d capacity drifted", i)
		assert.LessOrEqual(t, len(l.slots), l.capacity,
			"level %d slot count exceeds capacity", i)

		// Slot IDs are dense and stable: position == ID.
		occupied := 0
		for j, s := range l.slots {
			assert.Equal(t, j, s.ID, "level %d slot at position %d has ID %d", i, j, s.ID)
			if s.Occupied {
				occupied++
			} else {
				assert.Empty(t, s.Tag, "level %d slot %d is empty but tagged", i, j)
			}
		}
		assert.Equal(t, occupied, l.occupied,
			"level %d occupancy counter %d != occupied slots %d", i, l.occupied, occupied)
	}

	// Every ledger claim points at an occupied slot, and claims are 1:1
	// with occupied slots.
	seen := make(map[claim]TicketID, len(g.book.open))
	occupiedTotal := 0
	for _, l := range g.levels {
		occupiedTotal += l.occupied
	}
	require.Equal(t, occupiedTotal, len(g.book.open),
		"outstanding tickets %d != occupied slots %d", len(g.book.open), occupiedTotal)
	for id, cl := range g.book.open {
		require.Less(t, cl.level, len(g.levels), "ticket %d claims missing level %d", id, cl.level)
		l := g.levels[cl.level]
		require.Less(t, cl.slot, len(l.slots), "ticket %d claims missing slot %d", id, cl.slot)
		assert.True(t, l.slots[cl.slot].Occupied,
			"ticket %d claims empty slot (level %d, slot %d)", id, cl.level, cl.slot)
		if prev, dup := seen[cl]; dup {
			assert.Fail(t, "duplicate claim", "tickets %d and %d share (level %d, slot %d)",
				prev, id, cl.level, cl.slot)
		}
		seen[cl] = id
	}

	// Free accounting: created capacity minus outstanding tickets.
	created := len(g.levels) * g.levelCapacity
	assert.Equal(t, created-len(g.book.open), g.freeLocked(),
		"free capacity disagrees with created %d - outstanding %d", created, len(g.book.open))

	// Ticket sequence never rewinds.
	assert.Equal(t, g.book.issued()+1, int64(g.book.next), "ticket sequence drifted")
}
