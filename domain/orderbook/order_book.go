package orderbook

import (
	"matchbook/infra/memory"
	"matchbook/infra/sequence"
)

// OrderBook is a two-sided book for one instrument. Single-writer and
// deterministic: every call runs to completion with no I/O.
type OrderBook struct {
	bids *RBTree
	asks *RBTree

	// orders holds every currently resting order, keyed by id. An id
	// is present iff it denotes a resident price-bearing order;
	// market/IOC/FOK flow never appears here.
	orders map[uint64]*Order

	pool *memory.Pool[Order]
	seq  *sequence.Sequencer
}

func New() *OrderBook {
	return &OrderBook{
		bids:   NewRBTree(),
		asks:   NewRBTree(),
		orders: make(map[uint64]*Order),
		pool:   memory.NewPool(func() *Order { return &Order{} }),
		seq:    sequence.New(0),
	}
}

// Submit validates, matches and possibly rests a new order, returning
// the fills it produced in execution order.
//
// Market, IOC and FOK orders never rest: any unmatched remainder is
// discarded. FOK kills before matching when the book cannot fill the
// whole quantity; post-only kills instead of taking liquidity. Both
// kills leave the book untouched and report a sentinel error.
func (b *OrderBook) Submit(id uint64, side Side, typ OrderType, price, qty int64) ([]Trade, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if _, ok := b.orders[id]; ok {
		return nil, ErrDuplicateID
	}

	if typ == FOK && !b.fillable(side, price, qty) {
		return nil, ErrNotFillable
	}
	if typ == PostOnly && b.wouldCross(side, price) {
		return nil, ErrWouldCross
	}

	o := b.pool.Get()
	*o = Order{
		ID:    id,
		Price: price,
		Qty:   qty,
		Seq:   b.seq.Next(),
		Side:  side,
		Type:  typ,
	}

	trades := b.match(o)

	if o.Qty > 0 && o.Type.rests() {
		b.sideTree(o.Side).UpsertLevel(o.Price).Enqueue(o)
		b.orders[o.ID] = o
		return trades, nil
	}

	// Fully filled, or a residual that must not rest. Only this one
	// order is discarded; resident orders at the same price are
	// untouched.
	b.recycle(o)
	return trades, nil
}

// Cancel removes a resting order. Unknown, filled and already
// cancelled ids all report ErrOrderNotFound; the book is unchanged.
func (b *OrderBook) Cancel(id uint64) error {
	o, ok := b.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	b.unlinkResident(o)
	b.recycle(o)
	return nil
}

// match trades the taker against the opposite side, best price first,
// FIFO within a level. One (maker, taker) pair per iteration; the loop
// ends when the taker is done, the opposite side empties, or prices no
// longer cross. The taker itself is never in a tree while matching.
func (b *OrderBook) match(taker *Order) []Trade {
	var trades []Trade
	for taker.Qty > 0 {
		best := b.bestOpposite(taker.Side)
		if best == nil || !taker.crosses(best.Price) {
			break
		}

		maker := best.Head()
		qty := min(taker.Qty, maker.Qty)

		taker.Qty -= qty
		taker.Filled += qty
		best.Reduce(maker, qty)

		trades = append(trades, Trade{
			Qty:     qty,
			Price:   maker.Price,
			MakerID: maker.ID,
			TakerID: taker.ID,
		})

		if maker.Qty == 0 {
			b.unlinkResident(maker)
			b.recycle(maker)
		}
	}
	return trades
}

// unlinkResident detaches a resting order from its level, drops the
// level the instant it empties, and clears the lookup entry.
func (b *OrderBook) unlinkResident(o *Order) {
	lvl := o.level
	lvl.Unlink(o)
	if lvl.Empty() {
		b.sideTree(o.Side).DeleteLevel(lvl.Price)
	}
	delete(b.orders, o.ID)
}

func (b *OrderBook) recycle(o *Order) {
	o.Reset()
	b.pool.Put(o)
}

// fillable reports whether qty can be fully matched at prices that
// cross price, without mutating anything.
func (b *OrderBook) fillable(side Side, price, qty int64) bool {
	probe := Order{Side: side, Type: Limit, Price: price}
	need := qty
	walk := b.asks.ForEachAscending
	if side == Ask {
		walk = b.bids.ForEachDescending
	}
	walk(func(lvl *PriceLevel) bool {
		if !probe.crosses(lvl.Price) {
			return false
		}
		need -= lvl.TotalQty
		return need > 0
	})
	return need <= 0
}

func (b *OrderBook) wouldCross(side Side, price int64) bool {
	best := b.bestOpposite(side)
	if best == nil {
		return false
	}
	probe := Order{Side: side, Type: Limit, Price: price}
	return probe.crosses(best.Price)
}

func (b *OrderBook) bestOpposite(side Side) *PriceLevel {
	if side == Bid {
		return b.asks.MinLevel()
	}
	return b.bids.MaxLevel()
}

func (b *OrderBook) sideTree(side Side) *RBTree {
	if side == Bid {
		return b.bids
	}
	return b.asks
}
