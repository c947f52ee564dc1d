// Package metrics exposes the engine's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Set holds all collectors for one book. Registering two Sets on the
// same registry is an error; tests should pass their own registry.
type Set struct {
	OrdersSubmitted *prometheus.CounterVec
	OrdersRejected  *prometheus.CounterVec
	TradesTotal     prometheus.Counter
	VolumeTotal     prometheus.Counter
	CancelsTotal    *prometheus.CounterVec
	TradesDropped   prometheus.Counter
	RestingOrders   prometheus.Gauge
	PriceLevels     prometheus.Gauge
}

func New(reg prometheus.Registerer) *Set {
	f := promauto.With(reg)
	return &Set{
		OrdersSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbook_orders_submitted_total",
			Help: "Orders accepted by the engine.",
		}, []string{"side", "type"}),
		OrdersRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbook_orders_rejected_total",
			Help: "Orders rejected before mutation.",
		}, []string{"reason"}),
		TradesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "matchbook_trades_total",
			Help: "Fill events produced by the crossing loop.",
		}),
		VolumeTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "matchbook_traded_volume_total",
			Help: "Total quantity traded.",
		}),
		CancelsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbook_cancels_total",
			Help: "Cancellation attempts by outcome.",
		}, []string{"result"}),
		TradesDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "matchbook_trade_events_dropped_total",
			Help: "Trade events dropped because the outbox was full.",
		}),
		RestingOrders: f.NewGauge(prometheus.GaugeOpts{
			Name: "matchbook_resting_orders",
			Help: "Currently resident orders.",
		}),
		PriceLevels: f.NewGauge(prometheus.GaugeOpts{
			Name: "matchbook_price_levels",
			Help: "Currently indexed price levels across both sides.",
		}),
	}
}
