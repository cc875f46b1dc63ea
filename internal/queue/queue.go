// Package queue provides bounded FIFO queues shared between goroutines.
//
// This package offers two implementations of the BlockingQueue interface:
//   - BoundedQueue: ring buffer guarded by a mutex, with one condition
//     variable per direction (space available, item available)
//   - ChannelQueue: buffered channel with the same contract
//
// # Access modes
//
// Every queue supports two modes that may be mixed freely on one instance:
//   - Non-blocking: Enqueue returns ErrFull when no slot is free,
//     Dequeue returns false when nothing is queued.
//   - Blocking: EnqueueBlocking and DequeueBlocking park the calling
//     goroutine until the operation can complete. They have no error path.
//
// EnqueueContext and DequeueContext are cancellable forms of the blocking
// calls. They return ctx.Err() if the context ends first.
//
// Any number of producers and consumers may use a queue concurrently.
// Items come out in the order they were accepted, and each accepted item is
// delivered to exactly one consumer.
package queue

import "context"

// Queue is a bounded FIFO queue with non-blocking access.
type Queue[T any] interface {
	// Enqueue adds an item to the queue.
	// Returns ErrFull if the queue is full.
	Enqueue(T) error

	// Dequeue removes and returns the oldest item.
	// Returns false if the queue is empty.
	Dequeue() (T, bool)

	// Len returns the number of queued items.
	Len() int

	// Cap returns the maximum number of queued items.
	Cap() int
}

// BlockingQueue is a Queue that can also park callers until the queue
// has room (producers) or an item (consumers).
type BlockingQueue[T any] interface {
	Queue[T]

	// EnqueueBlocking adds an item, waiting while the queue is full.
	EnqueueBlocking(T)

	// DequeueBlocking removes the oldest item, waiting while the queue is empty.
	DequeueBlocking() T

	// EnqueueContext is EnqueueBlocking bounded by ctx.
	EnqueueContext(context.Context, T) error

	// DequeueContext is DequeueBlocking bounded by ctx.
	DequeueContext(context.Context) (T, error)
}
