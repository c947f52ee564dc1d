package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"matchbook/config"
	"matchbook/domain/orderbook"
	"matchbook/feed"
	"matchbook/infra/kafka"
	"matchbook/infra/metrics"
	"matchbook/jobs/broadcaster"
	"matchbook/reporter"
	"matchbook/service"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic("cannot load configuration: " + err.Error())
	}

	log := newLogger(cfg.Log.Dev)
	defer log.Sync()

	// ---------------- Engine ----------------

	book := orderbook.New()
	met := metrics.New(prometheus.DefaultRegisterer)
	svc := service.New(book, log, met)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---------------- Broadcaster ----------------

	done := make(chan struct{})
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		bc := broadcaster.New(producer, svc.Trades(), log)
		go func() {
			defer close(done)
			defer bc.Close()
			bc.Run(ctx)
		}()
	} else {
		go func() {
			defer close(done)
			for range svc.Trades() {
				// no sink configured; drain so the outbox never fills
			}
		}()
	}

	// ---------------- Metrics endpoint ----------------

	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				log.Error("metrics endpoint exited", zap.Error(err))
			}
		}()
		log.Info("metrics endpoint up", zap.String("addr", cfg.Metrics.Addr))
	}

	// ---------------- Feed replay ----------------

	recs, err := feed.ReadFile(cfg.Feed.Path)
	if err != nil {
		log.Fatal("feed load failed", zap.String("path", cfg.Feed.Path), zap.Error(err))
	}
	log.Info("feed loaded", zap.String("path", cfg.Feed.Path), zap.Int("orders", len(recs)))

	start := time.Now()
	stats := feed.Replay(svc, recs)
	elapsed := time.Since(start)

	log.Info("replay complete",
		zap.Int("orders", stats.Orders),
		zap.Int("rejected", stats.Rejected),
		zap.Int("trades", stats.Trades),
		zap.Int64("volume", stats.Volume),
		zap.Duration("elapsed", elapsed),
	)

	reporter.Render(os.Stdout, svc.Depth())

	svc.Close()
	<-done
}

func newLogger(dev bool) *zap.Logger {
	if dev {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}
