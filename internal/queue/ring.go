package queue

// ring is the slot storage behind BoundedQueue. It is not synchronized;
// the owner must serialize access.
//
// The buffer holds one more slot than the usable capacity so that full and
// empty can be told apart with two indices alone:
//
//	empty: front == rear
//	full:  (front+1) % len(buf) == rear
type ring[T any] struct {
	buf   []T
	front int // next free slot (write cursor)
	rear  int // next occupied slot (read cursor)
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{buf: make([]T, capacity+1)}
}

func (r *ring[T]) empty() bool {
	return r.front == r.rear
}

func (r *ring[T]) full() bool {
	return r.next(r.front) == r.rear
}

func (r *ring[T]) len() int {
	n := r.front - r.rear
	if n < 0 {
		n += len(r.buf)
	}
	return n
}

func (r *ring[T]) cap() int {
	return len(r.buf) - 1
}

func (r *ring[T]) next(i int) int {
	i++
	if i == len(r.buf) {
		return 0
	}
	return i
}

// push stores v at front. Returns false if full.
func (r *ring[T]) push(v T) bool {
	if r.full() {
		return false
	}
	r.buf[r.front] = v
	r.front = r.next(r.front)
	return true
}

// pop takes the value at rear. Returns false if empty.
// The vacated slot is zeroed so the ring does not pin dequeued values.
func (r *ring[T]) pop() (T, bool) {
	var zero T
	if r.empty() {
		return zero, false
	}
	v := r.buf[r.rear]
	r.buf[r.rear] = zero
	r.rear = r.next(r.rear)
	return v, true
}
