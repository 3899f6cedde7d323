package garage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_LazySlotCreation verifies slots appear one at a time with dense
// sequential IDs as the level fills.
func TestLevel_LazySlotCreation(t *testing.T) {
	l := newLevel(0, 3)
	assert.Equal(t, 0, l.SlotCount(), "fresh level has no slots")
	assert.Equal(t, 3, l.FreeCapacity(), "unbuilt slots count as free")

	for want := 0; want < 3; want++ {
		id, err := l.tryPark("car")
		require.NoError(t, err)
		assert.Equal(t, want, id, "slot IDs are assigned in creation order")
		assert.Equal(t, want+1, l.SlotCount())
	}
	assert.False(t, l.HasSpace())
}

// TestLevel_ReusesLowestEmptySlot verifies the reuse order after clears:
// lowest ID first, growth only when nothing is empty.
func TestLevel_ReusesLowestEmptySlot(t *testing.T) {
	l := newLevel(0, 4)
	for i := 0; i < 3; i++ {
		_, err := l.tryPark("car")
		require.NoError(t, err)
	}

	require.NoError(t, l.clear(2))
	require.NoError(t, l.clear(0))

	id, err := l.tryPark("moto")
	require.NoError(t, err)
	assert.Equal(t, 0, id, "lowest empty slot wins")

	id, err = l.tryPark("moto")
	require.NoError(t, err)
	assert.Equal(t, 2, id, "next empty slot before any growth")

	id, err = l.tryPark("moto")
	require.NoError(t, err)
	assert.Equal(t, 3, id, "nothing empty, grow a fresh slot")
}

// TestLevel_FullRejects verifies ErrLevelFull once capacity occupants are in.
func TestLevel_FullRejects(t *testing.T) {
	l := newLevel(0, 2)
	_, err := l.tryPark("a")
	require.NoError(t, err)
	_, err = l.tryPark("b")
	require.NoError(t, err)

	_, err = l.tryPark("c")
	require.ErrorIs(t, err, ErrLevelFull)
	assert.Equal(t, 2, l.SlotCount(), "failed park must not create a slot")
}

// TestLevel_ClearErrors verifies clear on missing, empty, and already
// cleared slots.
func TestLevel_ClearErrors(t *testing.T) {
	l := newLevel(0, 2)
	_, err := l.tryPark("car")
	require.NoError(t, err)

	require.ErrorIs(t, l.clear(-1), ErrNotOccupied, "negative slot ID")
	require.ErrorIs(t, l.clear(5), ErrNotOccupied, "slot never created")
	require.NoError(t, l.clear(0))
	require.ErrorIs(t, l.clear(0), ErrNotOccupied, "slot already empty")
}

// TestLevel_HighWaterMark verifies the slot count never shrinks and IDs stay
// stable across clear/reuse churn.
func TestLevel_HighWaterMark(t *testing.T) {
	l := newLevel(0, 3)
	for i := 0; i < 3; i++ {
		_, err := l.tryPark("car")
		require.NoError(t, err)
	}
	require.NoError(t, l.clear(0))
	require.NoError(t, l.clear(1))
	require.NoError(t, l.clear(2))

	assert.Equal(t, 3, l.SlotCount(), "empty level keeps its slots")
	assert.Equal(t, 3, l.FreeCapacity())

	id, err := l.tryPark("again")
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, 3, l.SlotCount(), "reuse does not grow")
}

// TestLevel_SlotsReturnsCopy verifies mutating the returned slice leaves the
// level untouched.
func TestLevel_SlotsReturnsCopy(t *testing.T) {
	l := newLevel(0, 2)
	_, err := l.tryPark("car")
	require.NoError(t, err)

	slots := l.Slots()
	slots[0].Tag = "tampered"
	slots[0].Occupied = false

	assert.Equal(t, "car", l.slots[0].Tag)
	assert.True(t, l.slots[0].Occupied)
}

// TestLevel_FreeCapacityMix verifies free accounting with a mix of empty
// existing slots and unbuilt slots.
func TestLevel_FreeCapacityMix(t *testing.T) {
	l := newLevel(0, 5)
	for i := 0; i < 3; i++ {
		_, err := l.tryPark("car")
		require.NoError(t, err)
	}
	require.NoError(t, l.clear(1))

	// 1 empty existing slot + 2 unbuilt slots.
	assert.Equal(t, 3, l.FreeCapacity())
	assert.True(t, l.HasSpace())
}
