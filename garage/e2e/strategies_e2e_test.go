package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/garage/strategy"
	"github.com/garagekit/garagekit/garage/watch"
	"github.com/garagekit/garagekit/internal/testutil"
)

// StrategyTestCase runs identical traffic through one placement strategy
// and checks the facility-wide bookkeeping afterwards.
type StrategyTestCase struct {
	Name     string
	Strategy garage.PlacementStrategy
}

// Test_Strategies_E2E verifies that placement policy only decides WHERE
// occupants go: the facility-wide accounting is identical under every
// strategy for the same traffic.
func Test_Strategies_E2E(t *testing.T) {
	testCases := []StrategyTestCase{
		{Name: "FirstFit", Strategy: strategy.FirstFit{}},
		{Name: "BestFit", Strategy: strategy.BestFit{}},
		{Name: "RoundRobin", Strategy: &strategy.RoundRobin{}},
		{Name: "Random", Strategy: strategy.NewRandom(42)},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			g := testutil.NewGarage(t, 3, 3, tc.Strategy)

			r := watch.NewRecorder()
			g.Watch(r)

			// Same traffic for every strategy: 6 in, 2 out, 2 in.
			ids := testutil.Fill(t, g, 6)
			require.NoError(t, g.Exit(ids[1]))
			require.NoError(t, g.Exit(ids[3]))
			more := testutil.Fill(t, g, 2)

			st := g.Stats()
			assert.Equal(t, int64(8), st.Parks)
			assert.Equal(t, int64(2), st.Exits)
			assert.Equal(t, int64(8), st.TicketsIssued)
			assert.Equal(t, 6, st.Outstanding)
			assert.Equal(t, st.LevelsCreated*3-st.Outstanding, st.FreeCapacity,
				"free total matches created slots minus occupants")
			assert.Equal(t, 10, r.Len(), "one broadcast per committed change")
			assert.Equal(t, g.FreeCapacity(), r.Last(),
				"last broadcast matches the live total")

			// Ticket IDs are strategy-independent.
			assert.Equal(t, []garage.TicketID{1, 2, 3, 4, 5, 6}, ids)
			assert.Equal(t, []garage.TicketID{7, 8}, more)

			// Draining returns every created slot to the free pool.
			testutil.Drain(t, g, append([]garage.TicketID{ids[0], ids[2], ids[4], ids[5]}, more...))
			st = g.Stats()
			assert.Zero(t, st.Outstanding)
			assert.Equal(t, st.LevelsCreated*3, g.FreeCapacity())
		})
	}
}

// Test_StrategyExhaustion_E2E verifies every strategy rejects cleanly at
// the hard ceiling and recovers after space opens, without burning IDs.
func Test_StrategyExhaustion_E2E(t *testing.T) {
	testCases := []StrategyTestCase{
		{Name: "FirstFit", Strategy: strategy.FirstFit{}},
		{Name: "BestFit", Strategy: strategy.BestFit{}},
		{Name: "RoundRobin", Strategy: &strategy.RoundRobin{}},
		{Name: "Random", Strategy: strategy.NewRandom(7)},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			g := testutil.NewGarage(t, 2, 2, tc.Strategy)

			ids := testutil.FillToCapacity(t, g)
			require.Len(t, ids, 4)

			_, err := g.Park("late")
			require.ErrorIs(t, err, garage.ErrFull)

			require.NoError(t, g.Exit(ids[2]))
			id, err := g.Park("after-exit")
			require.NoError(t, err)
			assert.Equal(t, garage.TicketID(5), id)

			st := g.Stats()
			assert.Equal(t, int64(1), st.Rejections)
			assert.Zero(t, st.Conflicts, "correct strategies never conflict")
		})
	}
}
