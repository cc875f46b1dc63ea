package stress

import (
	"time"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/bounded-queue/internal/queue"
)

// Impl selects the queue implementation under test.
type Impl string

const (
	ImplBounded Impl = "bounded"
	ImplChannel Impl = "channel"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("stress: invalid config")

// maxTagged bounds both the producer count and the items per producer:
// each item carries its producer index and sequence number in 32 bits.
const maxTagged = 1 << 32

// Config describes one stress run.
type Config struct {
	Impl             Impl
	Capacity         int
	Producers        int
	Consumers        int
	ItemsPerProducer int

	// OpTimeout, when positive, bounds each individual enqueue/dequeue.
	// Workers retry timed-out calls, so a run still delivers every item,
	// but waiters keep abandoning and re-entering the queue.
	OpTimeout time.Duration

	// ReportInterval is how often progress is logged. Zero disables it.
	ReportInterval time.Duration
}

// DefaultConfig returns a small many-producer many-consumer run.
func DefaultConfig() Config {
	return Config{
		Impl:             ImplBounded,
		Capacity:         4,
		Producers:        8,
		Consumers:        8,
		ItemsPerProducer: 10_000,
		ReportInterval:   time.Second,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch c.Impl {
	case ImplBounded, ImplChannel:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown impl %q", c.Impl)
	}
	if c.Capacity < 1 {
		// A zero-capacity queue never accepts, so the run could not finish.
		return errors.Wrapf(ErrInvalidConfig, "capacity must be positive, got %d", c.Capacity)
	}
	if c.Producers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "producers must be positive, got %d", c.Producers)
	}
	if int64(c.Producers) > maxTagged {
		return errors.Wrapf(ErrInvalidConfig, "producers must be at most %d, got %d", int64(maxTagged), c.Producers)
	}
	if c.Consumers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "consumers must be positive, got %d", c.Consumers)
	}
	if c.ItemsPerProducer < 0 {
		return errors.Wrapf(ErrInvalidConfig, "items per producer must not be negative, got %d", c.ItemsPerProducer)
	}
	if int64(c.ItemsPerProducer) > maxTagged {
		return errors.Wrapf(ErrInvalidConfig, "items per producer must be at most %d, got %d", int64(maxTagged), c.ItemsPerProducer)
	}
	if c.OpTimeout < 0 {
		return errors.Wrapf(ErrInvalidConfig, "op timeout must not be negative, got %v", c.OpTimeout)
	}
	return nil
}

// Total is the number of items the run sends.
func (c Config) Total() int {
	return c.Producers * c.ItemsPerProducer
}

func (c Config) newQueue() queue.BlockingQueue[uint64] {
	if c.Impl == ImplChannel {
		return queue.NewChannel[uint64](c.Capacity)
	}
	return queue.New[uint64](c.Capacity)
}
