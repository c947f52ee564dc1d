package service

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"matchbook/domain/orderbook"
	"matchbook/infra/metrics"
)

// BookService owns one OrderBook behind a mutex: one logical writer per
// book. Independent instruments get independent services and share
// nothing, so cross-book calls may run fully in parallel.
type BookService struct {
	mu   sync.Mutex
	book *orderbook.OrderBook

	log *zap.Logger
	met *metrics.Set

	trades chan orderbook.Trade
}

func New(book *orderbook.OrderBook, log *zap.Logger, met *metrics.Set) *BookService {
	return &BookService{
		book:   book,
		log:    log,
		met:    met,
		trades: make(chan orderbook.Trade, 1<<14),
	}
}

// Submit runs one order through the engine and returns its fills.
// Rejections (invalid quantity or price, duplicate id, FOK/post-only
// kills) come back as the book's sentinel errors with state unchanged.
func (s *BookService) Submit(id uint64, side orderbook.Side, typ orderbook.OrderType, price, qty int64) ([]orderbook.Trade, error) {
	s.mu.Lock()
	trades, err := s.book.Submit(id, side, typ, price, qty)
	resting, levels := s.book.RestingOrders(), s.book.Levels()
	s.mu.Unlock()

	if err != nil {
		s.met.OrdersRejected.WithLabelValues(rejectReason(err)).Inc()
		s.log.Warn("order rejected",
			zap.Uint64("id", id),
			zap.Stringer("side", side),
			zap.Stringer("type", typ),
			zap.Error(err),
		)
		return nil, err
	}

	s.met.OrdersSubmitted.WithLabelValues(side.String(), typ.String()).Inc()
	s.met.RestingOrders.Set(float64(resting))
	s.met.PriceLevels.Set(float64(levels))

	var volume int64
	for _, t := range trades {
		volume += t.Qty
		s.publish(t)
	}
	if n := len(trades); n > 0 {
		s.met.TradesTotal.Add(float64(n))
		s.met.VolumeTotal.Add(float64(volume))
	}

	s.log.Debug("order processed",
		zap.Uint64("id", id),
		zap.Stringer("side", side),
		zap.Stringer("type", typ),
		zap.Int64("price", price),
		zap.Int64("qty", qty),
		zap.Int("fills", len(trades)),
	)
	return trades, nil
}

// Cancel removes a resting order by id. ErrOrderNotFound is a benign
// outcome, reported but not logged as a failure.
func (s *BookService) Cancel(id uint64) error {
	s.mu.Lock()
	err := s.book.Cancel(id)
	resting, levels := s.book.RestingOrders(), s.book.Levels()
	s.mu.Unlock()

	if err != nil {
		s.met.CancelsTotal.WithLabelValues("not_found").Inc()
		return err
	}
	s.met.CancelsTotal.WithLabelValues("ok").Inc()
	s.met.RestingOrders.Set(float64(resting))
	s.met.PriceLevels.Set(float64(levels))
	s.log.Debug("order cancelled", zap.Uint64("id", id))
	return nil
}

// Depth returns an aggregated snapshot taken under the write lock.
// The result is a value; rendering it never touches the book.
func (s *BookService) Depth() []orderbook.DepthLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Depth()
}

// Trades exposes the outbox. Consumers run outside the critical
// section; a full outbox drops the event rather than stalling matching.
func (s *BookService) Trades() <-chan orderbook.Trade { return s.trades }

// Close closes the outbox once no more submissions will happen.
func (s *BookService) Close() { close(s.trades) }

func (s *BookService) publish(t orderbook.Trade) {
	select {
	case s.trades <- t:
	default:
		s.met.TradesDropped.Inc()
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, orderbook.ErrInvalidQuantity):
		return "invalid_qty"
	case errors.Is(err, orderbook.ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, orderbook.ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, orderbook.ErrNotFillable):
		return "not_fillable"
	case errors.Is(err, orderbook.ErrWouldCross):
		return "would_cross"
	default:
		return "other"
	}
}
