package orderbook

// OrderIndex maps an external order handle to the live Order it names,
// giving Book.Cancel O(1) lookup instead of a tree/list walk (spec §4.5).
// Entries are non-owning: the index never decides when an Order is
// destroyed, it is just kept in sync with Book's attach/detach calls.
type OrderIndex[ID comparable] struct {
	byID map[ID]*Order[ID]
}

// NewOrderIndex returns an empty OrderIndex.
func NewOrderIndex[ID comparable]() *OrderIndex[ID] {
	return &OrderIndex[ID]{byID: make(map[ID]*Order[ID])}
}

// Insert records id -> order. Returns ErrDuplicateOrder without mutating
// the index if id is already live.
func (idx *OrderIndex[ID]) Insert(id ID, order *Order[ID]) error {
	if _, exists := idx.byID[id]; exists {
		return ErrDuplicateOrder
	}
	idx.byID[id] = order
	return nil
}

// Remove deletes and returns the order for id. Returns ErrUnknownOrder if
// id is not live, without mutating the index.
func (idx *OrderIndex[ID]) Remove(id ID) (*Order[ID], error) {
	order, exists := idx.byID[id]
	if !exists {
		return nil, ErrUnknownOrder
	}
	delete(idx.byID, id)
	return order, nil
}

// Get returns the order for id, read-only.
func (idx *OrderIndex[ID]) Get(id ID) (*Order[ID], bool) {
	order, exists := idx.byID[id]
	return order, exists
}

// Len returns the number of live orders indexed.
func (idx *OrderIndex[ID]) Len() int { return len(idx.byID) }
