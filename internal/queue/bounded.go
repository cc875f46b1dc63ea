package queue

import (
	"context"
	"sync"
)

var _ BlockingQueue[int] = (*BoundedQueue[int])(nil)

// BoundedQueue is a fixed-capacity FIFO safe for any number of producers
// and consumers.
//
// One mutex guards the slot buffer and both cursors. Two condition
// variables on that mutex carry the wake-ups: notEmpty is signalled after
// each accepted item, notFull after each removed item. Every successful
// operation wakes at most one waiter of the opposite kind. Waiters always
// re-check the ring after waking, so spurious wake-ups and lost races put
// them back to sleep instead of corrupting state.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	notFull  sync.Cond
	notEmpty sync.Cond
	ring     ring[T]
}

// New creates a BoundedQueue holding at most capacity items.
//
// A capacity of 0 is allowed and yields a queue that is always both empty
// and full: Enqueue always fails and EnqueueBlocking never returns.
// New panics if capacity is negative.
func New[T any](capacity int) *BoundedQueue[T] {
	if capacity < 0 {
		panic("queue: negative capacity")
	}
	q := &BoundedQueue[T]{
		ring: newRing[T](capacity),
	}
	q.notFull.L = &q.mu
	q.notEmpty.L = &q.mu
	return q
}

// Enqueue adds an item to the queue.
// Returns ErrFull, leaving the queue unchanged, if no slot is free.
func (q *BoundedQueue[T]) Enqueue(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.ring.push(v) {
		return ErrFull
	}
	q.notEmpty.Signal()
	return nil
}

// Dequeue removes and returns the oldest item.
// Returns false if the queue is empty.
func (q *BoundedQueue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	v, ok := q.ring.pop()
	if ok {
		q.notFull.Signal()
	}
	return v, ok
}

// EnqueueBlocking adds an item, parking the caller while the queue is full.
// It returns only once the item has been accepted.
func (q *BoundedQueue[T]) EnqueueBlocking(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.ring.push(v) {
		q.notFull.Wait()
	}
	q.notEmpty.Signal()
}

// DequeueBlocking removes the oldest item, parking the caller while the
// queue is empty.
func (q *BoundedQueue[T]) DequeueBlocking() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if v, ok := q.ring.pop(); ok {
			q.notFull.Signal()
			return v
		}
		q.notEmpty.Wait()
	}
}

// EnqueueContext is EnqueueBlocking bounded by ctx.
//
// If a slot is free the item is accepted even when ctx is already done.
// Otherwise it returns ctx.Err() once ctx ends, without enqueueing.
func (q *BoundedQueue[T]) EnqueueContext(ctx context.Context, v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.ring.push(v) {
		q.notEmpty.Signal()
		return nil
	}

	stop := q.wakeOnDone(ctx, &q.notFull)
	defer stop()

	// A signalled waiter retries the ring before it looks at ctx, so a
	// cancelled return never discards a wake-up that had a slot behind it.
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.notFull.Wait()
		if q.ring.push(v) {
			q.notEmpty.Signal()
			return nil
		}
	}
}

// DequeueContext is DequeueBlocking bounded by ctx.
//
// If an item is queued it is returned even when ctx is already done.
// Otherwise it returns ctx.Err() once ctx ends, without dequeueing.
func (q *BoundedQueue[T]) DequeueContext(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if v, ok := q.ring.pop(); ok {
		q.notFull.Signal()
		return v, nil
	}

	stop := q.wakeOnDone(ctx, &q.notEmpty)
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.notEmpty.Wait()
		if v, ok := q.ring.pop(); ok {
			q.notFull.Signal()
			return v, nil
		}
	}
}

// wakeOnDone broadcasts on c when ctx ends so parked waiters notice the
// cancellation. The broadcast takes q.mu, so it cannot slip in between a
// waiter's ctx check and its Wait.
func (q *BoundedQueue[T]) wakeOnDone(ctx context.Context, c *sync.Cond) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		q.mu.Lock()
		c.Broadcast()
		q.mu.Unlock()
	})
}

// Len returns the number of queued items.
func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.len()
}

// Cap returns the capacity given to New.
func (q *BoundedQueue[T]) Cap() int {
	return q.ring.cap()
}
