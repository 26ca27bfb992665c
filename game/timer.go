package game

import "time"

// Timer fires at a fixed interval once started. The host polls Due every
// frame; a stopped timer never fires again until restarted.
type Timer struct {
	interval   time.Duration
	lastUpdate time.Time
	running    bool
}

func NewTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval}
}

// Start arms the timer; the first firing is one interval after now.
func (t *Timer) Start(now time.Time) {
	t.lastUpdate = now
	t.running = true
}

func (t *Timer) Stop() {
	t.running = false
}

func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Due reports whether a firing is due at now and, if so, consumes it.
func (t *Timer) Due(now time.Time) bool {
	if !t.running || now.Sub(t.lastUpdate) < t.interval {
		return false
	}
	t.lastUpdate = now
	return true
}
