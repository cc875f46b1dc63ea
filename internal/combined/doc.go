// Package combined provides pipeline benchmarks that run queues under
// real producer/consumer traffic.
//
// These benchmarks are more representative of real-world performance
// than isolated micro-benchmarks, as they include goroutine hand-off,
// parking and wake-up costs. They also compare the bounded queues in
// internal/queue against outside designs: a sharded lock-free MPSC ring
// and a mutex-guarded growable deque.
package combined
