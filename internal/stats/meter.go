package stats

import "github.com/puzpuzpuz/xsync/v3"

// Meter counts queue operations. All methods are safe for concurrent use.
//
// Counters are striped (xsync.Counter), so many producers and consumers
// can record without contending on one cache line.
type Meter struct {
	enqueued  *xsync.Counter
	dequeued  *xsync.Counter
	rejected  *xsync.Counter
	empty     *xsync.Counter
	cancelled *xsync.Counter
}

// Snapshot is a point-in-time copy of a Meter.
//
// Counters are read one after another, so under load a snapshot is not
// atomic across fields.
type Snapshot struct {
	Enqueued   int64
	Dequeued   int64
	Rejected   int64 // Enqueue calls that returned ErrFull
	EmptyPolls int64 // Dequeue calls that found nothing
	Cancelled  int64 // context-bounded calls that gave up
}

// InFlight is the number of items accepted but not yet removed.
func (s Snapshot) InFlight() int64 {
	return s.Enqueued - s.Dequeued
}

// NewMeter returns a Meter with all counters at zero.
func NewMeter() *Meter {
	return &Meter{
		enqueued:  xsync.NewCounter(),
		dequeued:  xsync.NewCounter(),
		rejected:  xsync.NewCounter(),
		empty:     xsync.NewCounter(),
		cancelled: xsync.NewCounter(),
	}
}

// Enqueued records an item accepted by the queue.
func (m *Meter) Enqueued() { m.enqueued.Inc() }

// Dequeued records an item removed from the queue.
func (m *Meter) Dequeued() { m.dequeued.Inc() }

// Rejected records an Enqueue that returned ErrFull.
func (m *Meter) Rejected() { m.rejected.Inc() }

// EmptyPoll records a Dequeue that found the queue empty.
func (m *Meter) EmptyPoll() { m.empty.Inc() }

// Cancelled records a context-bounded call that gave up.
func (m *Meter) Cancelled() { m.cancelled.Inc() }

// Snapshot reads all counters.
func (m *Meter) Snapshot() Snapshot {
	return Snapshot{
		Enqueued:   m.enqueued.Value(),
		Dequeued:   m.dequeued.Value(),
		Rejected:   m.rejected.Value(),
		EmptyPolls: m.empty.Value(),
		Cancelled:  m.cancelled.Value(),
	}
}

// Reset zeroes all counters. Not safe to call concurrently with recording
// if exact totals matter.
func (m *Meter) Reset() {
	m.enqueued.Reset()
	m.dequeued.Reset()
	m.rejected.Reset()
	m.empty.Reset()
	m.cancelled.Reset()
}
