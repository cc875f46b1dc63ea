// Package stats meters queue traffic and reports it periodically.
//
// It provides:
//   - Meter: lock-free counters for accepted, removed, rejected and
//     cancelled operations
//   - Instrumented: a BlockingQueue decorator that feeds a Meter
//   - Gate: an atomic interval check cheap enough for hot loops
//   - Reporter: logs Meter snapshots through zap when its Gate opens
package stats
