package garage

// TicketID identifies an outstanding claim on a slot. IDs start at 1,
// strictly increase, and are never reused for the lifetime of a Garage.
// int64 width is the overflow posture: no wraparound handling.
type TicketID int64

// claim records where a ticket's occupant is parked.
type claim struct {
	level int
	slot  int
}

// ticketBook mints ticket IDs and tracks outstanding claims. Not safe for
// concurrent use; the owning Garage serializes access.
type ticketBook struct {
	next TicketID
	open map[TicketID]claim
}

func newTicketBook() *ticketBook {
	return &ticketBook{next: 1, open: make(map[TicketID]claim)}
}

// issue records a claim and returns its freshly minted ticket ID.
// Only successful parks reach issue, so rejections never burn an ID.
func (b *ticketBook) issue(level, slot int) TicketID {
	id := b.next
	b.next++
	b.open[id] = claim{level: level, slot: slot}
	return id
}

// peek looks up an outstanding claim without redeeming it.
func (b *ticketBook) peek(id TicketID) (claim, bool) {
	c, ok := b.open[id]
	return c, ok
}

// drop redeems a ticket. The ID is retired permanently.
func (b *ticketBook) drop(id TicketID) {
	delete(b.open, id)
}

// outstanding returns the number of unredeemed tickets.
func (b *ticketBook) outstanding() int { return len(b.open) }

// issued returns the count of tickets ever minted.
func (b *ticketBook) issued() int64 { return int64(b.next - 1) }
