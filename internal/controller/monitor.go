package controller

import (
	"context"
	"time"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
)

// Heartbeat defaults: one tick per second, a status line every 15 ticks.
const (
	DefaultHeartbeat      = time.Second
	DefaultHeartbeatEvery = 15
)

// Monitor watches a running scan and asks the UI for a heartbeat line every
// few ticks until the scan completes.
type Monitor struct {
	interval time.Duration
	every    int
}

// NewMonitor creates a Monitor. Non-positive arguments select the defaults.
func NewMonitor(interval time.Duration, every int) *Monitor {
	if interval <= 0 {
		interval = DefaultHeartbeat
	}

	if every <= 0 {
		every = DefaultHeartbeatEvery
	}

	return &Monitor{interval: interval, every: every}
}

// Run blocks until done is finished or ctx is cancelled. It only reads the
// completion signal and the progress counters, and never fails: a cancelled
// scan is reported by the worker, not by the monitor.
func (mon *Monitor) Run(ctx context.Context, done *m.Completion, progress *m.Progress, ui UI) error {
	ticker := time.NewTicker(mon.interval)
	defer ticker.Stop()

	start := time.Now()
	ticks := 0

	for {
		select {
		case <-done.Done():
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			ticks++

			if ticks%mon.every == 0 && !done.Finished() {
				ui.DisplayHeartbeat(progress.Snapshot(time.Since(start)))
			}
		}
	}
}
