package stress

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/bounded-queue/internal/stats"
)

var (
	// ErrDuplicate means a consumer received an item another consumer
	// (or the same one) had already received.
	ErrDuplicate = errors.New("stress: item delivered more than once")
	// ErrMissing means the run ended without every item being received.
	ErrMissing = errors.New("stress: item never delivered")
	// ErrForeign means a consumer received a value no producer sent.
	ErrForeign = errors.New("stress: item was never sent")
)

// Result summarizes a run.
type Result struct {
	Sent     int64
	Received int64
	Duration time.Duration
	Stats    stats.Snapshot
}

// tag packs a producer index and sequence number into one item.
func tag(producer, seq int) uint64 {
	return uint64(producer)<<32 | uint64(uint32(seq))
}

func untag(v uint64) (producer, seq int) {
	return int(v >> 32), int(uint32(v))
}

// Run executes cfg and checks delivery. It returns when every item has
// been received, a delivery violation is found, or ctx ends.
//
// The returned Result is filled in on failure too, with whatever the run
// achieved before stopping.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(
		zap.String("impl", string(cfg.Impl)),
		zap.Int("capacity", cfg.Capacity),
	)

	meter := stats.NewMeter()
	q := stats.Instrument(cfg.newQueue(), meter)
	reporter := stats.NewReporter(logger, cfg.ReportInterval, meter, q.Len)
	received := xsync.NewMapOf[uint64, struct{}]()
	total := cfg.Total()

	logger.Info("stress run starting",
		zap.Int("producers", cfg.Producers),
		zap.Int("consumers", cfg.Consumers),
		zap.Int("items", total),
		zap.Duration("op_timeout", cfg.OpTimeout),
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	for p := 0; p < cfg.Producers; p++ {
		g.Go(func() error {
			for i := 0; i < cfg.ItemsPerProducer; i++ {
				// Ready operations succeed without looking at ctx.
				if err := gctx.Err(); err != nil {
					return errors.Wrapf(err, "producer %d at item %d", p, i)
				}
				v := tag(p, i)
				err := retry(gctx, cfg.OpTimeout, func(ctx context.Context) error {
					return q.EnqueueContext(ctx, v)
				})
				if err != nil {
					return errors.Wrapf(err, "producer %d at item %d", p, i)
				}
			}
			return nil
		})
	}

	for c := 0; c < cfg.Consumers; c++ {
		share := total / cfg.Consumers
		if c < total%cfg.Consumers {
			share++
		}
		g.Go(func() error {
			for i := 0; i < share; i++ {
				if err := gctx.Err(); err != nil {
					return errors.Wrapf(err, "consumer %d", c)
				}
				var v uint64
				err := retry(gctx, cfg.OpTimeout, func(ctx context.Context) error {
					var err error
					v, err = q.DequeueContext(ctx)
					return err
				})
				if err != nil {
					return errors.Wrapf(err, "consumer %d", c)
				}
				if err := record(received, cfg, v); err != nil {
					return errors.Wrapf(err, "consumer %d", c)
				}
				reporter.Poll()
			}
			return nil
		})
	}

	err := g.Wait()
	res := Result{
		Duration: time.Since(start),
		Stats:    reporter.Report("stress run finished"),
		Received: int64(received.Size()),
	}
	res.Sent = res.Stats.Enqueued
	if err != nil {
		return res, err
	}
	if res.Received != int64(total) {
		return res, errors.Wrapf(ErrMissing, "received %d of %d items", res.Received, total)
	}
	return res, nil
}

// record marks v as received, rejecting repeats and values outside the
// tag space of cfg.
func record(received *xsync.MapOf[uint64, struct{}], cfg Config, v uint64) error {
	p, seq := untag(v)
	if p >= cfg.Producers || seq >= cfg.ItemsPerProducer {
		return errors.Wrapf(ErrForeign, "producer %d seq %d", p, seq)
	}
	if _, loaded := received.LoadOrStore(v, struct{}{}); loaded {
		return errors.Wrapf(ErrDuplicate, "producer %d seq %d", p, seq)
	}
	return nil
}

// retry runs op until it succeeds or ctx ends. With a positive timeout each
// attempt gets its own deadline; otherwise op runs once against ctx.
func retry(ctx context.Context, timeout time.Duration, op func(context.Context) error) error {
	if timeout <= 0 {
		return op(ctx)
	}
	for {
		opCtx, cancel := context.WithTimeout(ctx, timeout)
		err := op(opCtx)
		cancel()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
