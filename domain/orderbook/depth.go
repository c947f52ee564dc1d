package orderbook

// DepthLevel is one aggregated row of the book view.
type DepthLevel struct {
	Side   Side
	Price  int64
	Qty    int64
	Orders int
}

// Depth returns the aggregated book: bids best-first (descending by
// price), then asks ascending. The slice is a copy; it stays valid
// after further mutation.
func (b *OrderBook) Depth() []DepthLevel {
	out := make([]DepthLevel, 0, b.bids.Size()+b.asks.Size())
	b.bids.ForEachDescending(func(lvl *PriceLevel) bool {
		out = append(out, DepthLevel{Side: Bid, Price: lvl.Price, Qty: lvl.TotalQty, Orders: lvl.OrderCount})
		return true
	})
	b.asks.ForEachAscending(func(lvl *PriceLevel) bool {
		out = append(out, DepthLevel{Side: Ask, Price: lvl.Price, Qty: lvl.TotalQty, Orders: lvl.OrderCount})
		return true
	})
	return out
}

// BestBid returns the highest resident bid price.
func (b *OrderBook) BestBid() (int64, bool) {
	lvl := b.bids.MaxLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.Price, true
}

// BestAsk returns the lowest resident ask price.
func (b *OrderBook) BestAsk() (int64, bool) {
	lvl := b.asks.MinLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.Price, true
}

// RestingQty returns the remaining quantity of a resident order, or 0
// if the id is not resting.
func (b *OrderBook) RestingQty(id uint64) int64 {
	o, ok := b.orders[id]
	if !ok {
		return 0
	}
	return o.Qty
}

// RestingOrders returns the number of resident orders.
func (b *OrderBook) RestingOrders() int { return len(b.orders) }

// Levels returns the number of price levels across both sides.
func (b *OrderBook) Levels() int { return b.bids.Size() + b.asks.Size() }
