package queue

import "github.com/pkg/errors"

// ErrFull is returned by Enqueue when every slot is occupied.
//
// It is the only error the non-blocking API reports. An empty queue is not
// an error: Dequeue reports it through its boolean result.
var ErrFull = errors.New("queue: full")
