package queue

import "context"

var _ BlockingQueue[int] = (*ChannelQueue[int])(nil)

// ChannelQueue wraps a buffered channel as a BlockingQueue.
//
// This is the standard library approach. Non-blocking calls use select
// with default; blocking calls are plain channel sends and receives.
//
// A capacity of 0 keeps ch nil rather than unbuffered. A nil channel is
// never ready, which gives the same always-empty, always-full behaviour as
// a zero-capacity BoundedQueue instead of a direct hand-off.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue with the specified capacity.
// It panics if capacity is negative.
func NewChannel[T any](capacity int) *ChannelQueue[T] {
	if capacity < 0 {
		panic("queue: negative capacity")
	}
	q := &ChannelQueue[T]{}
	if capacity > 0 {
		q.ch = make(chan T, capacity)
	}
	return q
}

// Enqueue adds an item to the queue.
// Returns ErrFull if the queue is full (non-blocking).
func (q *ChannelQueue[T]) Enqueue(v T) error {
	select {
	case q.ch <- v:
		return nil
	default:
		return ErrFull
	}
}

// Dequeue removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) Dequeue() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// EnqueueBlocking adds an item, waiting while the queue is full.
func (q *ChannelQueue[T]) EnqueueBlocking(v T) {
	q.ch <- v
}

// DequeueBlocking removes an item, waiting while the queue is empty.
func (q *ChannelQueue[T]) DequeueBlocking() T {
	return <-q.ch
}

// EnqueueContext is EnqueueBlocking bounded by ctx.
func (q *ChannelQueue[T]) EnqueueContext(ctx context.Context, v T) error {
	if q.Enqueue(v) == nil {
		return nil
	}
	select {
	case q.ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DequeueContext is DequeueBlocking bounded by ctx.
func (q *ChannelQueue[T]) DequeueContext(ctx context.Context) (T, error) {
	if v, ok := q.Dequeue(); ok {
		return v, nil
	}
	select {
	case v := <-q.ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Len returns the current number of items in the queue.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
