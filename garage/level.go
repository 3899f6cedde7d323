package garage

import "fmt"

// Slot is one parking space on a level. Slots are created lazily as a level
// fills and are never removed: an exit marks the slot empty in place, so a
// slot's ID stays valid for the lifetime of its level and is eligible for
// reuse by later parks.
type Slot struct {
	ID       int    // 0-based, stable, assigned at creation
	Occupied bool
	Tag      string // occupant tag; opaque to the facility
}

// Level is an ordered tier of slots. Levels are created lazily by the
// facility, never removed, and never reordered; Index reflects creation
// order. The slot count only grows, up to Capacity (the high-water mark).
//
// Levels are owned by their Garage and share its lock. Strategies may call
// the read-only methods during selection; nothing outside the owning Garage
// may mutate a level.
type Level struct {
	index    int
	capacity int
	slots    []Slot
	occupied int
}

func newLevel(index, capacity int) *Level {
	return &Level{index: index, capacity: capacity}
}

// Index returns the level's 0-based position in the facility.
func (l *Level) Index() int { return l.index }

// Capacity returns the maximum number of slots this level can hold.
func (l *Level) Capacity() int { return l.capacity }

// SlotCount returns the number of slots created so far (the high-water mark).
func (l *Level) SlotCount() int { return len(l.slots) }

// HasSpace reports whether at least one occupant can still park here.
func (l *Level) HasSpace() bool { return l.occupied < l.capacity }

// FreeCapacity returns the number of occupants this level can still take.
// Counts both empty existing slots and slots not yet created.
func (l *Level) FreeCapacity() int { return l.capacity - l.occupied }

// Slots returns a copy of the level's slots in ID order.
func (l *Level) Slots() []Slot {
	out := make([]Slot, len(l.slots))
	copy(out, l.slots)
	return out
}

// tryPark places tag in the lowest-ID empty slot, creating a fresh slot if
// none is empty and the level is below capacity. Returns the slot ID, or
// ErrLevelFull when the level cannot take another occupant.
func (l *Level) tryPark(tag string) (int, error) {
	for i := range l.slots {
		if !l.slots[i].Occupied {
			l.slots[i].Occupied = true
			l.slots[i].Tag = tag
			l.occupied++
			return l.slots[i].ID, nil
		}
	}
	if len(l.slots) < l.capacity {
		id := len(l.slots)
		l.slots = append(l.slots, Slot{ID: id, Occupied: true, Tag: tag})
		l.occupied++
		return id, nil
	}
	return 0, ErrLevelFull
}

// clear marks the slot empty in place. The slot survives for reuse; its ID
// and position are untouched. Returns ErrNotOccupied if the slot does not
// exist or holds no occupant.
func (l *Level) clear(slotID int) error {
	if slotID < 0 || slotID >= len(l.slots) {
		return fmt.Errorf("garage: level %d has no slot %d: %w", l.index, slotID, ErrNotOccupied)
	}
	s := &l.slots[slotID]
	if !s.Occupied {
		return fmt.Errorf("garage: level %d slot %d: %w", l.index, slotID, ErrNotOccupied)
	}
	s.Occupied = false
	s.Tag = ""
	l.occupied--
	return nil
}
