package garage

import "errors"

var (
	// ErrFull indicates the facility is at capacity: no level has space and
	// the level ceiling has been reached. No ticket is consumed.
	ErrFull = errors.New("garage: facility at capacity")

	// ErrUnknownTicket indicates an exit for a ticket that was never issued
	// or was already redeemed. The facility state is unchanged.
	ErrUnknownTicket = errors.New("garage: unknown ticket")

	// ErrLevelFull indicates a park attempt on a level with no free slots.
	// Level-local; the facility recovers by re-running placement.
	ErrLevelFull = errors.New("garage: level full")

	// ErrNotOccupied indicates a clear on a slot that is missing or empty.
	ErrNotOccupied = errors.New("garage: slot not occupied")

	// ErrConflict indicates placement failed twice in a row because the
	// strategy kept handing back a full level.
	ErrConflict = errors.New("garage: placement conflict after retry")

	// ErrCorrupt indicates the ticket ledger and a level disagree about an
	// outstanding claim. This is an invariant breach, not a caller mistake.
	ErrCorrupt = errors.New("garage: ticket ledger corrupt")
)
