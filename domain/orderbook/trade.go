package orderbook

// Trade is a single fill event. Price is the maker's resting price:
// the taker trades at the price already in the book, never at its own.
type Trade struct {
	Qty     int64
	Price   int64
	MakerID uint64
	TakerID uint64
}
