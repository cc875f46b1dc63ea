package combined_test

import (
	"context"
	"sync"
	"testing"

	"github.com/randomizedcoder/bounded-queue/internal/queue"
	"github.com/randomizedcoder/bounded-queue/internal/stats"
)

// Sink variables
var sinkInt int
var sinkBool bool

const pipelineCapacity = 1024

var implementations = []struct {
	name string
	new  func(capacity int) queue.BlockingQueue[int]
}{
	{"Bounded", func(c int) queue.BlockingQueue[int] { return queue.New[int](c) }},
	{"Channel", func(c int) queue.BlockingQueue[int] { return queue.NewChannel[int](c) }},
}

// ============================================================================
// Pipeline benchmarks (blocking producer/consumer)
// ============================================================================

// BenchmarkPipeline_SPSC_Blocking: one producer goroutine, one consumer
// goroutine, both parking when they get ahead of each other.
func BenchmarkPipeline_SPSC_Blocking(b *testing.B) {
	for _, impl := range implementations {
		b.Run(impl.name, func(b *testing.B) {
			q := impl.new(pipelineCapacity)
			done := make(chan struct{})

			go func() {
				defer close(done)
				var v int
				for i := 0; i < b.N; i++ {
					v = q.DequeueBlocking()
				}
				sinkInt = v
			}()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				q.EnqueueBlocking(i)
			}
			<-done
		})
	}
}

// BenchmarkPipeline_SPSC_Spin: the same pipeline using only the
// non-blocking calls, spinning when full or empty.
func BenchmarkPipeline_SPSC_Spin(b *testing.B) {
	for _, impl := range implementations {
		b.Run(impl.name, func(b *testing.B) {
			q := impl.new(pipelineCapacity)
			done := make(chan struct{})

			go func() {
				defer close(done)
				var ok bool
				for i := 0; i < b.N; {
					if _, ok = q.Dequeue(); ok {
						i++
					}
				}
				sinkBool = ok
			}()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for q.Enqueue(i) != nil {
					// Spin until enqueue succeeds
				}
			}
			<-done
		})
	}
}

// BenchmarkPipeline_MPMC_Blocking: GOMAXPROCS producers (RunParallel) and
// four consumers sharing a small queue.
func BenchmarkPipeline_MPMC_Blocking(b *testing.B) {
	const consumers = 4

	for _, impl := range implementations {
		b.Run(impl.name, func(b *testing.B) {
			q := impl.new(64)
			ctx, cancel := context.WithCancel(context.Background())
			var wg sync.WaitGroup

			for c := 0; c < consumers; c++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for {
						if _, err := q.DequeueContext(ctx); err != nil {
							return
						}
					}
				}()
			}

			b.ReportAllocs()
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					q.EnqueueBlocking(i)
					i++
				}
			})

			b.StopTimer()
			cancel()
			wg.Wait()
		})
	}
}

// BenchmarkPipeline_Instrumented measures the cost of the stats decorator
// on the blocking SPSC pipeline.
func BenchmarkPipeline_Instrumented(b *testing.B) {
	q := stats.Instrument[int](queue.New[int](pipelineCapacity), stats.NewMeter())
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < b.N; i++ {
			q.DequeueBlocking()
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.EnqueueBlocking(i)
	}
	<-done
	sinkInt = int(q.Meter().Snapshot().Dequeued)
}
