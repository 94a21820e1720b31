package orderbook

// OrderList is the FIFO of Orders resting at one price level. New orders are
// spliced in at Head; the oldest order sits at Tail and is what matching
// would consume from first (spec §3 invariant 8, §4.1). Aggregates are
// maintained incrementally so a level's size/volume/count never requires a
// full list walk.
//
// Grounded on the C source's pushOrder/popOrder/removeOrder (orders.c),
// translated to head=newest/tail=oldest per spec §9's fix of the source's
// inconsistent convention.
type OrderList[ID comparable] struct {
	Head *Order[ID]
	Tail *Order[ID]

	Price Price

	OrderCount      int
	AggregateSize   Shares
	AggregateVolume int64
}

// PushNew splices order in as the new Head. Pre-condition: order.Price ==
// list.Price (the order belongs to this level). Returns ErrPriceMismatch
// without mutating the list if violated.
func (l *OrderList[ID]) PushNew(order *Order[ID]) error {
	if order.Price != l.Price {
		return ErrPriceMismatch
	}

	order.Prev = nil
	order.Next = l.Head

	if l.Head != nil {
		l.Head.Prev = order
	} else {
		l.Tail = order
	}
	l.Head = order

	l.OrderCount++
	l.AggregateSize += order.Shares
	l.AggregateVolume += int64(order.Shares) * int64(l.Price)

	return nil
}

// PopOldest removes and returns the order at Tail (the oldest order), or
// nil if the list is empty.
func (l *OrderList[ID]) PopOldest() *Order[ID] {
	popped := l.Tail
	if popped == nil {
		return nil
	}

	if popped.Prev != nil {
		l.Tail = popped.Prev
		l.Tail.Next = nil
		l.OrderCount--
		l.AggregateSize -= popped.Shares
		l.AggregateVolume -= int64(popped.Shares) * int64(l.Price)
	} else {
		l.Head = nil
		l.Tail = nil
		l.OrderCount = 0
		l.AggregateSize = 0
		l.AggregateVolume = 0
	}

	popped.Prev = nil
	popped.Next = nil
	popped.Limit = nil

	return popped
}

// Unlink removes order from wherever it sits in the list in O(1), given a
// direct handle. Returns ErrNotInThisList if order's parent limit's list is
// not this one, without mutating the list.
func (l *OrderList[ID]) Unlink(order *Order[ID]) error {
	if order.Limit == nil || &order.Limit.Orders != l {
		return ErrNotInThisList
	}

	switch {
	case l.Head == order && l.Tail == order:
		// Only order in the list: both ends go empty together.
		l.Head = nil
		l.Tail = nil
	case order.Prev != nil && order.Next != nil:
		// Middle of the list: splice neighbors together.
		order.Prev.Next = order.Next
		order.Next.Prev = order.Prev
	case order.Next == nil && l.Tail == order:
		// Tail: promote Prev to Tail.
		order.Prev.Next = nil
		l.Tail = order.Prev
	case order.Prev == nil && l.Head == order:
		// Head: promote Next to Head.
		order.Next.Prev = nil
		l.Head = order.Next
	default:
		return ErrNotInThisList
	}

	l.OrderCount--
	l.AggregateSize -= order.Shares
	l.AggregateVolume -= int64(order.Shares) * int64(l.Price)

	order.Prev = nil
	order.Next = nil
	order.Limit = nil

	return nil
}

// Empty reports whether the list currently holds no orders (invariant 4:
// Head == nil iff Tail == nil iff OrderCount == 0).
func (l *OrderList[ID]) Empty() bool {
	return l.OrderCount == 0
}
