package orderbook

import (
	"time"

	"github.com/rs/zerolog"
)

// LevelSnapshot is the read-only view LevelAt returns for a price
// level: enough to act on without exposing the live tree/list pointers
// (spec §6: level_at returns "{size, volume, count} or none").
type LevelSnapshot struct {
	Price  Price
	Size   Shares
	Volume int64
	Count  int
}

// CancelledOrder is the snapshot Cancel returns for the order it removed
// (spec §6: cancel returns "cancelled order snapshot").
type CancelledOrder[ID comparable] struct {
	ID     ID
	Side   Side
	Price  Price
	Shares Shares
}

// BookOpts configures optional, non-behavioral dependencies of a Book. The
// zero value is a fully usable Book with diagnostics disabled.
type BookOpts struct {
	// Logger receives structured diagnostics (level lifecycle, internal
	// contract violations). Nil disables logging entirely.
	Logger *zerolog.Logger
}

// Book is a two-sided limit order book: an AVL tree of price levels per
// side plus an index for O(1) cancel by external id (spec §4.4). Generic
// over ID, the caller's opaque external order handle type.
//
// Book is not safe for concurrent use; see ConcurrentBook for an
// external-lock wrapper (spec §5).
type Book[ID comparable] struct {
	bids *LimitTree[ID]
	asks *LimitTree[ID]

	index *OrderIndex[ID]

	log logger
}

// NewBook returns an empty Book.
func NewBook[ID comparable](opts BookOpts) *Book[ID] {
	return &Book[ID]{
		bids:  NewLimitTree[ID](),
		asks:  NewLimitTree[ID](),
		index: NewOrderIndex[ID](),
		log:   newLogger(opts.Logger),
	}
}

func (b *Book[ID]) side(s Side) *LimitTree[ID] {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

// Submit adds a new resting order to the book (spec §4.4, §6). price and
// shares must be positive; id must not already be live. On any error the
// book is left unchanged (spec §7's "partial-failure is disallowed").
func (b *Book[ID]) Submit(id ID, side Side, price Price, shares Shares, entryTime time.Time) error {
	if price <= 0 {
		return ErrBadPrice
	}
	if shares <= 0 {
		return ErrBadQuantity
	}
	if _, exists := b.index.Get(id); exists {
		return ErrDuplicateOrder
	}

	tree := b.side(side)
	level := tree.GetOrCreate(price)
	wasEmpty := level.Orders.Empty()

	order := &Order[ID]{
		ID:        id,
		Side:      side,
		Price:     price,
		Shares:    shares,
		EntryTime: entryTime,
		EventTime: entryTime,
	}

	if err := level.Orders.PushNew(order); err != nil {
		// Internal contract violation: GetOrCreate guarantees level.Price ==
		// price, so this should be unreachable for a correct caller.
		b.log.contractViolation("Submit.PushNew", err)
		if wasEmpty {
			_ = tree.Remove(level)
		}
		return err
	}
	order.Limit = level

	if err := b.index.Insert(id, order); err != nil {
		// Roll back the list insert so the failure path leaves the book
		// exactly as it was before Submit was called.
		_ = level.Orders.Unlink(order)
		if wasEmpty {
			_ = tree.Remove(level)
		}
		return err
	}

	if wasEmpty {
		b.log.levelCreated(side, price)
	}
	return nil
}

// Cancel removes the live order identified by id (spec §4.4, §6). Returns
// ErrUnknownOrder without mutating the book if id is not resting.
func (b *Book[ID]) Cancel(id ID) (CancelledOrder[ID], error) {
	order, err := b.index.Remove(id)
	if err != nil {
		return CancelledOrder[ID]{}, err
	}

	level := order.Limit
	snapshot := CancelledOrder[ID]{
		ID:     order.ID,
		Side:   order.Side,
		Price:  order.Price,
		Shares: order.Shares,
	}

	if err := level.Orders.Unlink(order); err != nil {
		b.log.contractViolation("Cancel.Unlink", err)
		return CancelledOrder[ID]{}, err
	}

	if level.Orders.Empty() {
		tree := b.side(order.Side)
		if err := tree.Remove(level); err != nil {
			b.log.contractViolation("Cancel.Remove", err)
			return CancelledOrder[ID]{}, err
		}
		b.log.levelCollapsed(order.Side, order.Price)
	}

	return snapshot, nil
}

// BestBid returns the highest resting buy price and true, or false if the
// bid side is empty (spec §4.4).
func (b *Book[ID]) BestBid() (Price, bool) {
	level := b.bids.Max()
	if level == nil {
		return 0, false
	}
	return level.Price, true
}

// BestAsk returns the lowest resting sell price and true, or false if the
// ask side is empty (spec §4.4).
func (b *Book[ID]) BestAsk() (Price, bool) {
	level := b.asks.Min()
	if level == nil {
		return 0, false
	}
	return level.Price, true
}

// LevelAt returns the aggregate state of the given side/price, or false if
// no orders rest there (spec §6).
func (b *Book[ID]) LevelAt(side Side, price Price) (LevelSnapshot, bool) {
	level := b.side(side).Find(price)
	if level == nil {
		return LevelSnapshot{}, false
	}
	return LevelSnapshot{
		Price:  level.Price,
		Size:   level.AggregateSize(),
		Volume: level.AggregateVolume(),
		Count:  level.OrderCount(),
	}, true
}

// PopOldest removes and returns the oldest resting order at side/price
// (the order FIFO matching would consume next), or false if the level does
// not exist. Exposed so a matching engine built on top of this package can
// consume time priority without reaching into package internals; Book
// itself never calls it (matching is out of scope, spec §1).
func (b *Book[ID]) PopOldest(side Side, price Price) (CancelledOrder[ID], bool) {
	tree := b.side(side)
	level := tree.Find(price)
	if level == nil {
		return CancelledOrder[ID]{}, false
	}

	order := level.Orders.PopOldest()
	if order == nil {
		return CancelledOrder[ID]{}, false
	}
	if _, err := b.index.Remove(order.ID); err != nil {
		b.log.contractViolation("PopOldest.index.Remove", err)
	}

	snapshot := CancelledOrder[ID]{
		ID:     order.ID,
		Side:   order.Side,
		Price:  order.Price,
		Shares: order.Shares,
	}

	if level.Orders.Empty() {
		if err := tree.Remove(level); err != nil {
			b.log.contractViolation("PopOldest.Remove", err)
		}
		b.log.levelCollapsed(side, price)
	}

	return snapshot, true
}

// OrderCount returns the number of live orders indexed across both sides.
func (b *Book[ID]) OrderCount() int { return b.index.Len() }
