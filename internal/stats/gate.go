package stats

import (
	"sync/atomic"
	"time"
)

// epoch anchors monotonic readings; time.Since uses the monotonic clock.
var epoch = time.Now()

func nanotime() int64 {
	return int64(time.Since(epoch))
}

// Gate opens at most once per interval.
//
// Ready is a single atomic load on the fast path, so it can be polled on
// every iteration of a producer or consumer loop. When several goroutines
// poll concurrently exactly one of them sees the gate open for a given
// interval.
type Gate struct {
	interval int64 // nanoseconds
	last     atomic.Int64
}

// NewGate creates a Gate with the specified interval.
// A non-positive interval yields a Gate that never opens.
func NewGate(interval time.Duration) *Gate {
	g := &Gate{
		interval: int64(interval),
	}
	g.last.Store(nanotime())
	return g
}

// Ready returns true if the interval has elapsed since the gate last
// opened, and re-arms it.
func (g *Gate) Ready() bool {
	if g.interval <= 0 {
		return false
	}
	now := nanotime()
	last := g.last.Load()

	if now-last >= g.interval {
		// CAS so only one poller wins this interval
		return g.last.CompareAndSwap(last, now)
	}
	return false
}

// Reset starts a new interval from now.
func (g *Gate) Reset() {
	g.last.Store(nanotime())
}

// Interval returns the gate's interval.
func (g *Gate) Interval() time.Duration {
	return time.Duration(g.interval)
}
