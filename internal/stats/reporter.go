package stats

import (
	"time"

	"go.uber.org/zap"
)

// Reporter logs Meter snapshots, at most once per interval.
//
// Poll is meant to be called from worker hot loops; the Gate keeps the
// cost to one atomic load when no report is due.
type Reporter struct {
	logger *zap.Logger
	gate   *Gate
	meter  *Meter
	depth  func() int
	start  time.Time
}

// NewReporter creates a Reporter. depth reports the current queue length
// and may be nil.
func NewReporter(logger *zap.Logger, interval time.Duration, m *Meter, depth func() int) *Reporter {
	return &Reporter{
		logger: logger,
		gate:   NewGate(interval),
		meter:  m,
		depth:  depth,
		start:  time.Now(),
	}
}

// Poll logs a progress line if the interval has elapsed.
// Returns true if it logged.
func (r *Reporter) Poll() bool {
	if !r.gate.Ready() {
		return false
	}
	r.Report("progress")
	return true
}

// Report logs the current snapshot unconditionally.
func (r *Reporter) Report(msg string) Snapshot {
	s := r.meter.Snapshot()
	elapsed := time.Since(r.start)

	fields := []zap.Field{
		zap.Int64("enqueued", s.Enqueued),
		zap.Int64("dequeued", s.Dequeued),
		zap.Int64("rejected", s.Rejected),
		zap.Int64("empty_polls", s.EmptyPolls),
		zap.Int64("cancelled", s.Cancelled),
		zap.Duration("elapsed", elapsed),
		zap.Float64("dequeue_per_sec", rate(s.Dequeued, elapsed)),
	}
	if r.depth != nil {
		fields = append(fields, zap.Int("depth", r.depth()))
	}
	r.logger.Info(msg, fields...)
	return s
}

func rate(n int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}
