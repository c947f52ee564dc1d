// Package broadcaster drains the service trade outbox and publishes
// fill events to the broker, strictly outside the matching path.
package broadcaster

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"matchbook/domain/orderbook"
)

// Producer is satisfied by kafka.Producer; tests use a fake.
type Producer interface {
	Send(ctx context.Context, key, value []byte) error
	Close() error
}

// Event is the wire form of one fill.
type Event struct {
	V       int    `json:"v"`
	Type    string `json:"type"`
	Qty     int64  `json:"qty"`
	Price   int64  `json:"price"`
	MakerID uint64 `json:"maker_id"`
	TakerID uint64 `json:"taker_id"`
}

type Broadcaster struct {
	producer Producer
	trades   <-chan orderbook.Trade
	log      *zap.Logger
}

func New(p Producer, trades <-chan orderbook.Trade, log *zap.Logger) *Broadcaster {
	return &Broadcaster{producer: p, trades: trades, log: log}
}

// Run publishes until the context is cancelled or the outbox closes.
// Publish failures are logged and the event dropped; the engine never
// waits on the broker.
func (b *Broadcaster) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-b.trades:
			if !ok {
				return
			}
			b.publish(ctx, t)
		}
	}
}

func (b *Broadcaster) publish(ctx context.Context, t orderbook.Trade) {
	ev := Event{
		V:       1,
		Type:    "trade",
		Qty:     t.Qty,
		Price:   t.Price,
		MakerID: t.MakerID,
		TakerID: t.TakerID,
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		b.log.Error("encode trade event", zap.Error(err))
		return
	}
	key := []byte(strconv.FormatUint(t.TakerID, 10))
	if err := b.producer.Send(ctx, key, payload); err != nil {
		b.log.Warn("publish trade event",
			zap.Uint64("taker_id", t.TakerID),
			zap.Error(err),
		)
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
