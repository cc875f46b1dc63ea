// Command queue-stress pushes tagged items through one queue from many
// producers to many consumers and checks that each is delivered once.
//
// Usage:
//
//	go run ./cmd/queue-stress -impl bounded -capacity 4 -producers 8 -consumers 8 -items 100000
//
// It exits 1 if an item is lost, duplicated or corrupted, or if the run
// does not finish within -timeout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/randomizedcoder/bounded-queue/internal/logging"
	"github.com/randomizedcoder/bounded-queue/internal/stress"
)

func main() {
	def := stress.DefaultConfig()

	impl := flag.String("impl", string(def.Impl), "queue implementation (bounded, channel)")
	capacity := flag.Int("capacity", def.Capacity, "queue capacity")
	producers := flag.Int("producers", def.Producers, "number of producer goroutines")
	consumers := flag.Int("consumers", def.Consumers, "number of consumer goroutines")
	items := flag.Int("items", def.ItemsPerProducer, "items sent by each producer")
	opTimeout := flag.Duration("op-timeout", 0, "per-operation timeout; 0 waits indefinitely")
	report := flag.Duration("report", def.ReportInterval, "progress log interval; 0 disables")
	timeout := flag.Duration("timeout", time.Minute, "overall run timeout; 0 disables")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	dev := flag.Bool("dev", false, "human-readable console logs")
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel, Development: *dev})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := stress.Config{
		Impl:             stress.Impl(*impl),
		Capacity:         *capacity,
		Producers:        *producers,
		Consumers:        *consumers,
		ItemsPerProducer: *items,
		OpTimeout:        *opTimeout,
		ReportInterval:   *report,
	}

	os.Exit(run(cfg, *timeout, logger))
}

func run(cfg stress.Config, timeout time.Duration, logger *zap.Logger) int {
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := stress.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("stress run failed",
			zap.Error(err),
			zap.Int64("sent", res.Sent),
			zap.Int64("received", res.Received),
		)
		return 1
	}

	logger.Info("all items delivered exactly once",
		zap.Int64("items", res.Received),
		zap.Duration("duration", res.Duration),
		zap.Float64("items_per_sec", float64(res.Received)/res.Duration.Seconds()),
	)
	return 0
}
