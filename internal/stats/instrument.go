package stats

import (
	"context"

	"github.com/randomizedcoder/bounded-queue/internal/queue"
)

var _ queue.BlockingQueue[int] = (*Instrumented[int])(nil)

// Instrumented wraps a BlockingQueue and records every outcome in a Meter.
//
// Counts are recorded after the wrapped call returns, so a consumer may be
// counted before the producer that fed it. Snapshot.InFlight can therefore
// dip below zero briefly under load.
type Instrumented[T any] struct {
	q queue.BlockingQueue[T]
	m *Meter
}

// Instrument returns q decorated with m.
func Instrument[T any](q queue.BlockingQueue[T], m *Meter) *Instrumented[T] {
	return &Instrumented[T]{q: q, m: m}
}

// Enqueue counts an accepted item or an ErrFull rejection.
func (i *Instrumented[T]) Enqueue(v T) error {
	err := i.q.Enqueue(v)
	if err != nil {
		i.m.Rejected()
		return err
	}
	i.m.Enqueued()
	return nil
}

// Dequeue counts a removed item or an empty poll.
func (i *Instrumented[T]) Dequeue() (T, bool) {
	v, ok := i.q.Dequeue()
	if ok {
		i.m.Dequeued()
	} else {
		i.m.EmptyPoll()
	}
	return v, ok
}

// EnqueueBlocking counts the item once it has been accepted.
func (i *Instrumented[T]) EnqueueBlocking(v T) {
	i.q.EnqueueBlocking(v)
	i.m.Enqueued()
}

// DequeueBlocking counts the item once it has been removed.
func (i *Instrumented[T]) DequeueBlocking() T {
	v := i.q.DequeueBlocking()
	i.m.Dequeued()
	return v
}

// EnqueueContext counts an accepted item, or a cancellation when ctx ends first.
func (i *Instrumented[T]) EnqueueContext(ctx context.Context, v T) error {
	if err := i.q.EnqueueContext(ctx, v); err != nil {
		i.m.Cancelled()
		return err
	}
	i.m.Enqueued()
	return nil
}

// DequeueContext counts a removed item, or a cancellation when ctx ends first.
func (i *Instrumented[T]) DequeueContext(ctx context.Context) (T, error) {
	v, err := i.q.DequeueContext(ctx)
	if err != nil {
		i.m.Cancelled()
		return v, err
	}
	i.m.Dequeued()
	return v, nil
}

// Len returns the wrapped queue's length.
func (i *Instrumented[T]) Len() int { return i.q.Len() }

// Cap returns the wrapped queue's capacity.
func (i *Instrumented[T]) Cap() int { return i.q.Cap() }

// Meter returns the meter this queue records into.
func (i *Instrumented[T]) Meter() *Meter { return i.m }
