package watch

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/garagekit/garagekit/garage"
)

// Board renders each free-capacity total as a display line, the way an
// entrance board would show it to arriving drivers. Totals are formatted
// with English digit grouping, so large facilities read "12,480 slots
// free" rather than a bare integer.
//
// A Board attached to a single facility needs no locking; updates arrive
// serialized. Sharing one Board across facilities requires an external
// lock around the writer.
type Board struct {
	w io.Writer
	p *message.Printer
}

var _ garage.Watcher = (*Board)(nil)

// NewBoard returns a watcher that writes one line per update to w.
func NewBoard(w io.Writer) *Board {
	return &Board{w: w, p: message.NewPrinter(language.English)}
}

// Update writes the new free total. Write errors are dropped; a broken
// display must not fail the park or exit that triggered the broadcast.
func (b *Board) Update(free int) {
	if free == 1 {
		b.p.Fprintf(b.w, "1 slot free\n")
		return
	}
	b.p.Fprintf(b.w, "%d slots free\n", free)
}
