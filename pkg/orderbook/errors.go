package orderbook

import "errors"

// User-facing errors. These are returned by value from Book methods and
// never mutate the book on the failure path.
var (
	// ErrBadPrice is returned when a submitted price is not positive.
	ErrBadPrice = errors.New("orderbook: price must be positive")
	// ErrBadQuantity is returned when a submitted share count is not positive.
	ErrBadQuantity = errors.New("orderbook: shares must be positive")
	// ErrDuplicateOrder is returned when submitting an id that is already resting.
	ErrDuplicateOrder = errors.New("orderbook: order id already exists")
	// ErrUnknownOrder is returned by Cancel when the id is not resting.
	ErrUnknownOrder = errors.New("orderbook: unknown order id")
)

// Internal contract violations. A correct caller using only Book's exported
// surface should never observe these; they indicate a bug in this package
// or in a caller that reached past the exported API (e.g. by holding onto a
// *Limit or *Order from a different book). They are returned rather than
// panicked so a release build can log-and-continue, per spec §7.
var (
	// ErrPriceMismatch means an Order's price does not equal its target
	// Limit's price at push time.
	ErrPriceMismatch = errors.New("orderbook: order price does not match limit price")
	// ErrNotInThisList means Unlink was called with an Order whose parent
	// limit does not match the list it was asked to unlink from.
	ErrNotInThisList = errors.New("orderbook: order does not belong to this list")
	// ErrNotInTree means Remove was called with a Limit that is not part of
	// the tree it was asked to be removed from.
	ErrNotInTree = errors.New("orderbook: limit does not belong to this tree")
)
