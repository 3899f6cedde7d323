package garage

// Stats is a point-in-time snapshot of facility counters, taken under the
// facility lock. Useful for instrumentation and tests.
type Stats struct {
	FacilityID string // UUID assigned at construction

	Parks        int64 // successful park operations
	Exits        int64 // successful exit operations
	Rejections   int64 // parks rejected with ErrFull
	UnknownExits int64 // exits rejected with ErrUnknownTicket
	Conflicts    int64 // parks rejected with ErrConflict

	LevelsCreated int   // levels grown so far
	SlotsCreated  int   // slots created across all levels (high-water sum)
	TicketsIssued int64 // tickets ever minted
	Outstanding   int   // tickets currently unredeemed

	FreeCapacity int // current facility-wide free count
	Capacity     int // static ceiling: maxLevels * levelCapacity
}

// counters is the mutable mirror of Stats held inside Garage.
type counters struct {
	parks        int64
	exits        int64
	rejections   int64
	unknownExits int64
	conflicts    int64
}

// Stats returns a consistent snapshot of the facility's counters.
func (g *Garage) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	slots := 0
	for _, l := range g.levels {
		slots += len(l.slots)
	}
	return Stats{
		FacilityID:    g.id,
		Parks:         g.stats.parks,
		Exits:         g.stats.exits,
		Rejections:    g.stats.rejections,
		UnknownExits:  g.stats.unknownExits,
		Conflicts:     g.stats.conflicts,
		LevelsCreated: len(g.levels),
		SlotsCreated:  slots,
		TicketsIssued: g.book.issued(),
		Outstanding:   g.book.outstanding(),
		FreeCapacity:  g.freeLocked(),
		Capacity:      g.maxLevels * g.levelCapacity,
	}
}
