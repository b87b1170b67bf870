package model

import (
	"sync"
	"sync/atomic"
	"time"
)

// Completion is a one-shot signal published by the scan worker once all
// resolution and export work is over. It is safe for concurrent use.
type Completion struct {
	once     sync.Once
	done     chan struct{}
	finished atomic.Bool
}

// NewCompletion returns an unfinished Completion.
func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Finish marks the scan as complete. Calls after the first are no-ops.
func (c *Completion) Finish() {
	c.once.Do(func() {
		c.finished.Store(true)
		close(c.done)
	})
}

// Done returns a channel closed by Finish.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Finished reports whether Finish has been called.
func (c *Completion) Finished() bool {
	return c.finished.Load()
}

// Progress holds live counters written by the scan worker and read by the
// liveness monitor.
type Progress struct {
	Scanned atomic.Int64
	Skipped atomic.Int64
	Bytes   atomic.Int64
}

// ProgressSnapshot is a point-in-time copy of Progress.
type ProgressSnapshot struct {
	Scanned int64
	Skipped int64
	Bytes   int64
	Elapsed time.Duration
}

// Snapshot copies the current counters.
func (p *Progress) Snapshot(elapsed time.Duration) ProgressSnapshot {
	return ProgressSnapshot{
		Scanned: p.Scanned.Load(),
		Skipped: p.Skipped.Load(),
		Bytes:   p.Bytes.Load(),
		Elapsed: elapsed,
	}
}
