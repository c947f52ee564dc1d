// Package orderbook implements an in-memory limit order book with
// price-time priority matching. Each side is a red-black tree of price
// levels; every level is an intrusive FIFO queue of resident orders,
// and a lookup table maps order ids to their resting entry for O(1)
// cancellation.
//
// The book is single-writer: no method is safe for concurrent use.
// Serialization is the caller's job (see the service package).
package orderbook
