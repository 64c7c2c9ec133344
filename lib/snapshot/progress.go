// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package snapshot

import (
	"sync"
	"time"
)

// ThrottleInterval is the minimum interval between two progress updates
// of the value fetching.
const ThrottleInterval = 100 * time.Millisecond

// Progress tracks the progress of one stage of a snapshot.
// Implementations must be safe for concurrent use.
type Progress interface {
	Inc(n int)
	Finish()
}

// ProgressReporter creates the progress trackers of a snapshot.
type ProgressReporter interface {
	// Keys returns the progress of the key enumeration,
	// whose total is unknown.
	Keys() Progress
	// Values returns the progress of fetching total values.
	Values(total int) Progress
}

type throttledProgress struct {
	progress Progress
	interval time.Duration
	now      func() time.Time

	mutex     sync.Mutex
	pending   int
	lastFlush time.Time
}

// NewThrottledProgress returns a progress coalescing the increments
// given to it, forwarding them to progress at most once per interval.
// Finish forwards any pending increment before finishing progress.
func NewThrottledProgress(progress Progress, interval time.Duration) Progress {
	return &throttledProgress{
		progress: progress,
		interval: interval,
		now:      time.Now,
	}
}

func (t *throttledProgress) Inc(n int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.pending += n
	now := t.now()
	if now.Sub(t.lastFlush) < t.interval {
		return
	}
	t.lastFlush = now
	t.flush()
}

func (t *throttledProgress) Finish() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.flush()
	t.progress.Finish()
}

func (t *throttledProgress) flush() {
	if t.pending == 0 {
		return
	}
	t.progress.Inc(t.pending)
	t.pending = 0
}

// Logger logs the progress of a snapshot.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

type logProgressReporter struct {
	logger Logger
}

// NewLogProgressReporter returns a progress reporter logging
// the progress of each stage with the logger given.
func NewLogProgressReporter(logger Logger) ProgressReporter {
	return &logProgressReporter{logger: logger}
}

func (r *logProgressReporter) Keys() Progress {
	return &logProgress{logger: r.logger, name: "keys"}
}

func (r *logProgressReporter) Values(total int) Progress {
	return &logProgress{logger: r.logger, name: "values", total: total}
}

type logProgress struct {
	logger Logger
	name   string
	total  int

	mutex sync.Mutex
	count int
}

func (p *logProgress) Inc(n int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.count += n
	if p.total > 0 {
		p.logger.Debugf("%s: %d/%d", p.name, p.count, p.total)
		return
	}
	p.logger.Debugf("%s: %d", p.name, p.count)
}

func (p *logProgress) Finish() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.logger.Infof("%s: done with %d", p.name, p.count)
}

// NoopProgress is a progress reporter discarding all updates.
type NoopProgress struct{}

// Keys returns itself.
func (n NoopProgress) Keys() Progress { return n }

// Values returns itself.
func (n NoopProgress) Values(int) Progress { return n }

// Inc does nothing.
func (NoopProgress) Inc(int) {}

// Finish does nothing.
func (NoopProgress) Finish() {}
