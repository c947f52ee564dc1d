package feed

import "matchbook/domain/orderbook"

// Submitter is the slice of the service the feed needs.
type Submitter interface {
	Submit(id uint64, side orderbook.Side, typ orderbook.OrderType, price, qty int64) ([]orderbook.Trade, error)
}

type Stats struct {
	Orders   int
	Rejected int
	Trades   int
	Volume   int64
}

// Replay submits preloaded records sequentially as limit orders, the
// only type the record format carries. Rejections are counted, not
// fatal: one bad order must not poison the rest of the stream.
func Replay(s Submitter, recs []Record) Stats {
	var st Stats
	for _, rec := range recs {
		st.Orders++
		trades, err := s.Submit(rec.ID, rec.Side, orderbook.Limit, rec.Price, rec.Qty)
		if err != nil {
			st.Rejected++
			continue
		}
		st.Trades += len(trades)
		for _, t := range trades {
			st.Volume += t.Qty
		}
	}
	return st
}
