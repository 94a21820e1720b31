// Package orderbook implements the core data structure of a price-time
// priority limit order book: an AVL tree of price levels (Limit), each
// holding a doubly linked FIFO list of Orders, plus an index for O(1)
// cancellation by external id.
//
// Matching, persistence, networking, and multi-book orchestration are not
// part of this package; it only maintains the resting-order index that a
// matching engine would sit on top of.
package orderbook
