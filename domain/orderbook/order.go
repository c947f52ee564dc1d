package orderbook

type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "bid"
	}
	return "ask"
}

type OrderType int

const (
	Limit OrderType = iota
	Market
	IOC
	FOK
	PostOnly
)

func (t OrderType) String() string {
	switch t {
	case Limit:
		return "limit"
	case Market:
		return "market"
	case IOC:
		return "ioc"
	case FOK:
		return "fok"
	case PostOnly:
		return "post_only"
	default:
		return "unknown"
	}
}

// rests reports whether an unfilled remainder of this type stays in
// the book. Market, IOC and FOK remainders are always discarded.
func (t OrderType) rests() bool {
	return t == Limit || t == PostOnly
}

// Order is a pool-allocated order. While resting it is linked
// intrusively into its price level queue; the level back-pointer makes
// unlinking O(1) on cancellation and fill.
type Order struct {
	ID     uint64
	Price  int64 // minor currency unit; ignored for Market
	Qty    int64 // remaining, monotonically non-increasing
	Filled int64
	Seq    uint64
	Side   Side
	Type   OrderType

	level *PriceLevel
	next  *Order
	prev  *Order
}

func (o *Order) Reset() { *o = Order{} }

// Next returns the order behind o in its level queue, or nil.
func (o *Order) Next() *Order { return o.next }

// crosses reports whether o, as a taker, may trade at restingPrice.
// Market orders cross unconditionally; no sentinel price is involved.
func (o *Order) crosses(restingPrice int64) bool {
	if o.Type == Market {
		return true
	}
	if o.Side == Bid {
		return o.Price >= restingPrice
	}
	return o.Price <= restingPrice
}
