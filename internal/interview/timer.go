package interview

// TimerState is the lifecycle of a per-question countdown.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
)

// Timer is the per-question countdown. It has no goroutine of its own: the
// interview screen drives it with one Tick per second. Expiry is reported by
// Tick exactly once per arming; further ticks past zero are no-ops. Rearm
// fully resets the clock for the next question, and a prior expiry never
// suppresses a later one.
type Timer struct {
	total     int
	remaining int
	state     TimerState
}

// NewTimer returns a running timer with the given duration in seconds.
func NewTimer(seconds int) *Timer {
	t := &Timer{}
	t.Rearm(seconds)
	return t
}

// Tick advances the clock by one second. It returns true on the single tick
// that takes the timer to zero.
func (t *Timer) Tick() bool {
	if t.state != TimerRunning {
		return false
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = TimerExpired
		return true
	}
	return false
}

// Rearm resets the timer to a new duration and re-enables expiry firing.
func (t *Timer) Rearm(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	t.total = seconds
	t.remaining = seconds
	if seconds == 0 {
		t.state = TimerExpired
		return
	}
	t.state = TimerRunning
}

// Cancel stops the timer without firing. Used on unmount and when tearing
// down the previous question's clock during navigation.
func (t *Timer) Cancel() {
	if t.state == TimerRunning {
		t.state = TimerIdle
	}
}

// Remaining returns the seconds left on the clock.
func (t *Timer) Remaining() int { return t.remaining }

// Total returns the duration the timer was last armed with.
func (t *Timer) Total() int { return t.total }

// Expired reports whether the current arming has run out.
func (t *Timer) Expired() bool { return t.state == TimerExpired }

// Running reports whether the timer is counting down.
func (t *Timer) Running() bool { return t.state == TimerRunning }
