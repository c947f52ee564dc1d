package orderbook

// PriceLevel is the FIFO queue of resident orders at one price.
// Queue order is strict arrival order; nothing ever reorders it.
type PriceLevel struct {
	Price int64

	head *Order
	tail *Order

	TotalQty   int64
	OrderCount int
}

func (p *PriceLevel) Enqueue(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	o.level = p
	p.TotalQty += o.Qty
	p.OrderCount++
}

// Unlink removes o from the queue. TotalQty drops by o's remaining
// quantity only; partial fills are accounted through Reduce.
func (p *PriceLevel) Unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.next = nil
	o.prev = nil
	o.level = nil

	p.TotalQty -= o.Qty
	p.OrderCount--
}

// Reduce records a fill of qty against resident order o, keeping the
// level aggregate exact while the order is still queued.
func (p *PriceLevel) Reduce(o *Order, qty int64) {
	o.Qty -= qty
	o.Filled += qty
	p.TotalQty -= qty
}

func (p *PriceLevel) Empty() bool { return p.head == nil }

func (p *PriceLevel) Head() *Order { return p.head }
