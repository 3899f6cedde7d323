package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagekit/garagekit/garage"
)

// occupancies returns occupant counts per created level.
func occupancies(t *testing.T, g *garage.Garage) []int {
	t.Helper()
	snap := g.Snapshot()
	out := make([]int, len(snap))
	for i, l := range snap {
		out[i] = l.Capacity - l.Free
	}
	return out
}

// parkN parks n occupants and returns their tickets.
func parkN(t *testing.T, g *garage.Garage, n int) []garage.TicketID {
	t.Helper()
	ids := make([]garage.TicketID, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.Park("car")
		require.NoError(t, err, "park %d", i+1)
		ids = append(ids, id)
	}
	return ids
}

// TestFirstFit_FillsLowestLevelFirst verifies dense packing into level 0
// before level 1 appears.
func TestFirstFit_FillsLowestLevelFirst(t *testing.T) {
	g, err := garage.New(3, 2, FirstFit{})
	require.NoError(t, err)

	parkN(t, g, 3)
	assert.Equal(t, []int{2, 1}, occupancies(t, g),
		"level 0 fills before level 1 opens")
}

// TestFirstFit_ReturnsToFreedLowerLevel verifies that after an exit on
// level 0, the next park lands there, not on level 1.
func TestFirstFit_ReturnsToFreedLowerLevel(t *testing.T) {
	g, err := garage.New(3, 2, FirstFit{})
	require.NoError(t, err)

	ids := parkN(t, g, 3)
	require.NoError(t, g.Exit(ids[0]))

	_, err = g.Park("car")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, occupancies(t, g),
		"freed slot on level 0 is reused before level 1 grows")
}

// TestBestFit_PicksEmptiestLevel verifies placement goes to the level with
// the most free capacity once occupancy is uneven.
func TestBestFit_PicksEmptiestLevel(t *testing.T) {
	g, err := garage.New(3, 3, BestFit{})
	require.NoError(t, err)

	// Fill the whole facility, then open one slot on level 0 and two on
	// level 2.
	ids := parkN(t, g, 9)
	require.NoError(t, g.Exit(ids[0]))
	require.NoError(t, g.Exit(ids[6]))
	require.NoError(t, g.Exit(ids[7]))

	_, err = g.Park("car")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2}, occupancies(t, g),
		"level 2 had the most free capacity")
}

// TestBestFit_TieBreaksToLowestIndex verifies deterministic ties.
func TestBestFit_TieBreaksToLowestIndex(t *testing.T) {
	g, err := garage.New(2, 2, BestFit{})
	require.NoError(t, err)

	ids := parkN(t, g, 4)
	require.NoError(t, g.Exit(ids[1])) // level 0
	require.NoError(t, g.Exit(ids[2])) // level 1

	_, err = g.Park("car")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, occupancies(t, g),
		"equal free capacity resolves to level 0")
}

// TestRoundRobin_RotatesAcrossOpenLevels verifies rotation once all levels
// exist: three parks after three spread exits land on levels 0, 1, 2 in
// order.
func TestRoundRobin_RotatesAcrossOpenLevels(t *testing.T) {
	g, err := garage.New(3, 2, &RoundRobin{})
	require.NoError(t, err)

	ids := parkN(t, g, 6)
	// Open one slot per level.
	require.NoError(t, g.Exit(ids[0])) // level 0
	require.NoError(t, g.Exit(ids[2])) // level 1
	require.NoError(t, g.Exit(ids[4])) // level 2

	_, err = g.Park("a")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 1}, occupancies(t, g), "rotation starts at level 0")

	_, err = g.Park("b")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, occupancies(t, g), "then level 1")

	_, err = g.Park("c")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, occupancies(t, g), "then level 2")
}

// TestRoundRobin_SkipsFullLevels verifies the scan passes over full levels
// instead of stalling.
func TestRoundRobin_SkipsFullLevels(t *testing.T) {
	g, err := garage.New(3, 2, &RoundRobin{})
	require.NoError(t, err)

	ids := parkN(t, g, 6)
	// Only level 2 has space.
	require.NoError(t, g.Exit(ids[5]))

	_, err = g.Park("car")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, occupancies(t, g),
		"full levels 0 and 1 are skipped")
}

// TestRandom_SeededReproducibility verifies two facilities with equal seeds
// and traffic make identical placements.
func TestRandom_SeededReproducibility(t *testing.T) {
	run := func(seed int64) []int {
		g, err := garage.New(4, 4, NewRandom(seed))
		require.NoError(t, err)

		ids := parkN(t, g, 16)
		for i := 0; i < len(ids); i += 3 {
			require.NoError(t, g.Exit(ids[i]))
		}
		parkN(t, g, 4)
		return occupancies(t, g)
	}

	first := run(42)
	second := run(42)
	assert.Equal(t, first, second, "same seed, same traffic, same placement")
}

// TestRandom_OnlySelectsLevelsWithSpace verifies churn under Random never
// produces a conflict: a correct strategy only returns usable levels.
func TestRandom_OnlySelectsLevelsWithSpace(t *testing.T) {
	g, err := garage.New(3, 2, NewRandom(7))
	require.NoError(t, err)

	var held []garage.TicketID
	for i := 0; i < 100; i++ {
		if i%3 == 2 && len(held) > 0 {
			require.NoError(t, g.Exit(held[0]))
			held = held[1:]
			continue
		}
		id, err := g.Park("car")
		if err != nil {
			require.ErrorIs(t, err, garage.ErrFull,
				"a correct strategy never triggers conflicts")
			continue
		}
		held = append(held, id)
	}
	assert.Equal(t, int64(0), g.Stats().Conflicts)
}
