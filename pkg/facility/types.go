package facility

import "github.com/garagekit/garagekit/garage"

// Re-export the everyday types so facade users only import this package.

// Core types.
type (
	Garage   = garage.Garage
	TicketID = garage.TicketID
	Watcher  = garage.Watcher
	Stats    = garage.Stats
)

// WatcherFunc adapts a plain function to the Watcher interface.
type WatcherFunc = garage.WatcherFunc

// Surface error sentinels.
var (
	ErrFull          = garage.ErrFull
	ErrUnknownTicket = garage.ErrUnknownTicket
	ErrConflict      = garage.ErrConflict
	ErrCorrupt       = garage.ErrCorrupt
)
