// Command queue-bench times the bounded queue implementations.
//
// Usage:
//
//	go run ./cmd/queue-bench -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/randomizedcoder/bounded-queue/internal/logging"
	"github.com/randomizedcoder/bounded-queue/internal/queue"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "queue capacity")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if *iterations < 1 || *size < 1 {
		logger.Error("invalid flags", zap.Int("n", *iterations), zap.Int("size", *size))
		os.Exit(2)
	}

	fmt.Printf("Benchmarking bounded queues (%d iterations, size=%d)\n", *iterations, *size)
	fmt.Println("─────────────────────────────────────────────────")

	impls := []struct {
		name string
		q    queue.BlockingQueue[int]
	}{
		{"Bounded", queue.New[int](*size)},
		{"Channel", queue.NewChannel[int](*size)},
	}

	type result struct {
		name               string
		nonBlocking, block time.Duration
	}
	results := make([]result, 0, len(impls))

	for _, impl := range impls {
		logger.Debug("running", zap.String("impl", impl.name))

		start := time.Now()
		for i := 0; i < *iterations; i++ {
			_ = impl.q.Enqueue(i)
			impl.q.Dequeue()
		}
		nb := time.Since(start)

		start = time.Now()
		for i := 0; i < *iterations; i++ {
			impl.q.EnqueueBlocking(i)
			impl.q.DequeueBlocking()
		}
		bl := time.Since(start)

		results = append(results, result{impl.name, nb, bl})
	}

	// Results
	perOp := func(d time.Duration) float64 {
		return float64(d.Nanoseconds()) / float64(*iterations)
	}

	fmt.Printf("\nResults (enqueue + dequeue per iteration):\n")
	fmt.Printf("  %-10s %14s %14s\n", "", "non-blocking", "blocking")
	for _, r := range results {
		fmt.Printf("  %-10s %11.2f ns %11.2f ns\n", r.name, perOp(r.nonBlocking), perOp(r.block))
	}

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max, non-blocking):\n")
	for _, r := range results {
		fmt.Printf("  %-10s %.2f M ops/sec\n", r.name, 1000/perOp(r.nonBlocking))
	}
}
