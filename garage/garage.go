package garage

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Garage is a capacity-constrained slot allocator: an ordered list of levels,
// grown lazily up to a ceiling, each holding a bounded set of slots. Park
// places an opaque occupant tag and returns a monotonically increasing
// ticket; Exit redeems the ticket and frees the slot in place.
//
// All methods are safe for concurrent use. A single mutex is the
// mutual-exclusion domain for the whole facility: placement, mutation,
// ticketing, and watcher broadcast happen atomically per operation.
type Garage struct {
	id            string
	maxLevels     int
	levelCapacity int
	strategy      PlacementStrategy

	mu       sync.Mutex
	levels   []*Level
	book     *ticketBook
	watchers []Watcher
	stats    counters
}

// New constructs a facility with up to maxLevels levels of levelCapacity
// slots each. A nil strategy selects the built-in first-fit. Dimensions must
// be non-negative; zero is legal and yields a facility that rejects every
// park. There is no shared or global instance: each New call is an
// independent facility with its own lock, ticket sequence, and watchers.
func New(maxLevels, levelCapacity int, s PlacementStrategy) (*Garage, error) {
	if maxLevels < 0 {
		return nil, fmt.Errorf("garage: negative level ceiling %d", maxLevels)
	}
	if levelCapacity < 0 {
		return nil, fmt.Errorf("garage: negative level capacity %d", levelCapacity)
	}
	if s == nil {
		s = firstFit{}
	}
	return &Garage{
		id:            uuid.NewString(),
		maxLevels:     maxLevels,
		levelCapacity: levelCapacity,
		strategy:      s,
		book:          newTicketBook(),
	}, nil
}

// ID returns the facility's UUID, assigned at construction. Lets logs and
// metrics from multiple facilities in one process stay distinguishable.
func (g *Garage) ID() string { return g.id }

// Park places tag somewhere in the facility and returns the claim ticket.
//
// Placement is delegated to the strategy over the existing levels; if the
// strategy declines and the level ceiling allows, a fresh level is created
// and used directly. ErrFull reports a facility at capacity. If the strategy
// misbehaves and hands back a full level, selection re-runs exactly once
// before the park fails with ErrConflict.
//
// Rejected parks consume no ticket ID and trigger no broadcast. Successful
// parks broadcast the new free total before returning.
func (g *Garage) Park(tag string) (TicketID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	lvl := g.pickLocked()
	if lvl == nil {
		g.stats.rejections++
		return 0, ErrFull
	}
	slot, err := lvl.tryPark(tag)
	if err != nil {
		// The strategy returned a level without space. Re-run the whole
		// selection once; a second failure is a hard conflict.
		lvl = g.pickLocked()
		if lvl == nil {
			g.stats.rejections++
			return 0, ErrFull
		}
		slot, err = lvl.tryPark(tag)
		if err != nil {
			g.stats.conflicts++
			return 0, fmt.Errorf("garage: level %d: %w", lvl.index, ErrConflict)
		}
	}

	id := g.book.issue(lvl.index, slot)
	g.stats.parks++
	g.broadcastLocked()
	return id, nil
}

// Exit redeems a ticket and marks its slot empty in place. The slot survives
// for reuse; the ticket ID is retired permanently.
//
// An unknown ticket (never issued, or already redeemed) returns
// ErrUnknownTicket with no state change and no broadcast, which makes Exit
// idempotent: the first call frees, repeats report unknown. A ticket the
// ledger knows but the level cannot honor returns an error wrapping
// ErrCorrupt; the ledger entry is kept for post-mortem.
func (g *Garage) Exit(id TicketID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	cl, ok := g.book.peek(id)
	if !ok {
		g.stats.unknownExits++
		return ErrUnknownTicket
	}
	if cl.level >= len(g.levels) {
		return fmt.Errorf("garage: ticket %d points past level list (level %d of %d): %w",
			id, cl.level, len(g.levels), ErrCorrupt)
	}
	if err := g.levels[cl.level].clear(cl.slot); err != nil {
		return fmt.Errorf("garage: ticket %d (level %d, slot %d): %v: %w",
			id, cl.level, cl.slot, err, ErrCorrupt)
	}

	g.book.drop(id)
	g.stats.exits++
	g.broadcastLocked()
	return nil
}

// Watch registers w for free-count broadcasts. Watchers are notified
// synchronously in registration order after every committed park and exit,
// and see only changes committed after their registration.
func (g *Garage) Watch(w Watcher) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watchers = append(g.watchers, w)
}

// FreeCapacity returns the facility-wide free slot count: the sum of free
// capacity across created levels. Levels not yet created contribute nothing
// until first use, so a fresh facility reports 0 until its first park.
func (g *Garage) FreeCapacity() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.freeLocked()
}

// Capacity returns the static ceiling: maxLevels * levelCapacity.
func (g *Garage) Capacity() int { return g.maxLevels * g.levelCapacity }

// LevelSnapshot is a read-only copy of one level's state, safe to hold
// outside the facility lock.
type LevelSnapshot struct {
	Index    int
	Capacity int
	Free     int
	Slots    []Slot
}

// Snapshot copies the current per-level state for display and diagnostics.
// Levels not yet created do not appear.
func (g *Garage) Snapshot() []LevelSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]LevelSnapshot, len(g.levels))
	for i, l := range g.levels {
		out[i] = LevelSnapshot{
			Index:    l.index,
			Capacity: l.capacity,
			Free:     l.FreeCapacity(),
			Slots:    l.Slots(),
		}
	}
	return out
}

// pickLocked runs one full placement pass: strategy over existing levels,
// then lazy growth under the ceiling. Returns nil when the facility cannot
// place another occupant. Caller holds g.mu.
func (g *Garage) pickLocked() *Level {
	if lvl := g.strategy.Select(g.levels); lvl != nil {
		return lvl
	}
	// Zero-capacity levels can never hold a slot; growing one would loop
	// the conflict path for nothing.
	if len(g.levels) < g.maxLevels && g.levelCapacity > 0 {
		lvl := newLevel(len(g.levels), g.levelCapacity)
		g.levels = append(g.levels, lvl)
		return lvl
	}
	return nil
}

// freeLocked sums free capacity across created levels. Uncreated levels are
// not counted; uncreated slots within a created level are. Caller holds g.mu.
func (g *Garage) freeLocked() int {
	free := 0
	for _, l := range g.levels {
		free += l.FreeCapacity()
	}
	return free
}

// broadcastLocked pushes the current free total to every watcher in
// registration order. Runs under g.mu, directly after the mutation it
// reports, so the broadcast sequence equals the commit sequence. Caller
// holds g.mu.
func (g *Garage) broadcastLocked() {
	if len(g.watchers) == 0 {
		return
	}
	free := g.freeLocked()
	for _, w := range g.watchers {
		w.Update(free)
	}
}
