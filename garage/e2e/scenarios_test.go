package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/garage/watch"
	"github.com/garagekit/garagekit/internal/testutil"
)

// TestFirstFit_SpillAndReclaim walks the first-fit flow on a 3x2 facility:
// fill level 0, spill to level 1, then reclaim the freed level 0 slot
// before touching level 1 again.
func TestFirstFit_SpillAndReclaim(t *testing.T) {
	g := testutil.NewGarage(t, 3, 2, nil)

	ids := testutil.RunScript(t, g, []testutil.ScriptStep{
		testutil.Park("car-a"),
		testutil.Park("car-b"),
		testutil.Park("car-c"),
	})
	require.Equal(t, []garage.TicketID{1, 2, 3}, ids)

	snap := g.Snapshot()
	require.Len(t, snap, 2, "third park opened level 1")
	assert.Zero(t, snap[0].Free, "level 0 is full")
	assert.Equal(t, 1, snap[1].Free, "level 1 holds one occupant")

	require.NoError(t, g.Exit(1))

	id, err := g.Park("car-d")
	require.NoError(t, err)
	assert.Equal(t, garage.TicketID(4), id, "ticket IDs never repeat")

	snap = g.Snapshot()
	require.Len(t, snap, 2, "no new level was needed")
	assert.Zero(t, snap[0].Free, "freed level 0 slot was reused")
	assert.Equal(t, 1, snap[1].Free)
}

// TestExhaustion_SingleSlot verifies the smallest facility rejects at
// capacity and recovers after an exit, with a fresh ticket.
func TestExhaustion_SingleSlot(t *testing.T) {
	g := testutil.NewGarage(t, 1, 1, nil)

	first, err := g.Park("car-a")
	require.NoError(t, err)
	assert.Equal(t, garage.TicketID(1), first)

	_, err = g.Park("car-b")
	require.ErrorIs(t, err, garage.ErrFull)

	require.NoError(t, g.Exit(first))

	second, err := g.Park("car-c")
	require.NoError(t, err)
	assert.Equal(t, garage.TicketID(2), second, "rejections never burn IDs")
}

// TestObserver_BroadcastTotals verifies watchers see the committed free
// total after each state change and nothing on failed exits.
func TestObserver_BroadcastTotals(t *testing.T) {
	g := testutil.NewGarage(t, 1, 5, nil)

	r := watch.NewRecorder()
	g.Watch(r)

	id, err := g.Park("car-a")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, r.Totals(), "park broadcast the new total")

	require.NoError(t, g.Exit(id))
	assert.Equal(t, []int{4, 5}, r.Totals(), "exit broadcast the new total")

	err = g.Exit(999)
	require.ErrorIs(t, err, garage.ErrUnknownTicket)
	assert.Equal(t, []int{4, 5}, r.Totals(), "unknown exit broadcasts nothing")
}

// TestExit_DoubleRedeem verifies a redeemed ticket turns unknown, and
// that only the first redemption broadcasts.
func TestExit_DoubleRedeem(t *testing.T) {
	g := testutil.NewGarage(t, 1, 2, nil)

	r := watch.NewRecorder()
	g.Watch(r)

	id, err := g.Park("car-a")
	require.NoError(t, err)
	require.NoError(t, g.Exit(id))

	err = g.Exit(id)
	require.ErrorIs(t, err, garage.ErrUnknownTicket)

	st := g.Stats()
	assert.Equal(t, int64(1), st.Exits)
	assert.Equal(t, int64(1), st.UnknownExits)
	assert.Equal(t, 2, r.Len(), "one broadcast per committed change")
}

// TestZeroLevelFacility verifies a 0-level facility rejects everything and
// reports zero capacity.
func TestZeroLevelFacility(t *testing.T) {
	g := testutil.NewGarage(t, 0, 5, nil)

	_, err := g.Park("car-a")
	require.ErrorIs(t, err, garage.ErrFull)

	assert.Zero(t, g.Capacity())
	assert.Zero(t, g.FreeCapacity())
	assert.Empty(t, g.Snapshot())
}
