package orderbook

import "time"

// Side is which side of the book an order rests on.
type Side uint8

const (
	// Buy orders rest in the bid tree.
	Buy Side = iota
	// Sell orders rest in the ask tree.
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// Price is an integer tick count. Spec recommends ticks over floating point
// so that level keys compare exactly; a caller mapping a decimal price to
// Price is responsible for doing so at a single canonical scale before it
// ever reaches the book.
type Price int64

// Shares is a remaining order quantity. Always positive for a live order.
type Shares uint64

// Order is a single resting order, generic over the external id type a
// caller uses as an opaque handle (spec §3/§6 — "external_id: opaque handle
// used by callers"). Orders are owned by exactly one Limit at a time
// (invariant 7); the Prev/Next/Limit fields are maintained by OrderList
// (Prev/Next, and clearing Limit on removal) and Book (setting Limit on
// submit), and must not be mutated by callers.
type Order[ID comparable] struct {
	ID ID

	Side   Side
	Price  Price
	Shares Shares

	EntryTime time.Time
	EventTime time.Time

	Prev  *Order[ID]
	Next  *Order[ID]
	Limit *Limit[ID]
}
