package core

import "time"

// StepTimer is a repeating timer on simulated time. The fixed-tick loop
// advances it by one tick interval per step instead of reading the wall
// clock, so replays with the same seed and input are exact.
type StepTimer struct {
	interval time.Duration
	elapsed  time.Duration
	active   bool
}

// Start arms the timer, replacing any pending interval.
func (t *StepTimer) Start(interval time.Duration) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t.interval = interval
	t.elapsed = 0
	t.active = true
}

// Stop disarms the timer.
func (t *StepTimer) Stop() {
	t.active = false
	t.elapsed = 0
}

// Active reports whether the timer is armed.
func (t *StepTimer) Active() bool {
	return t.active
}

// Interval returns the interval the timer was last started with.
func (t *StepTimer) Interval() time.Duration {
	return t.interval
}

// Advance moves simulated time forward by dt, calling fire once per
// elapsed interval, and returns the number of calls. fire may restart or
// stop the timer; a restart begins a fresh interval, discarding the
// remainder of dt.
func (t *StepTimer) Advance(dt time.Duration, fire func()) int {
	if !t.active {
		return 0
	}
	t.elapsed += dt

	fired := 0
	for t.active && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		fired++
		fire()
	}
	return fired
}
