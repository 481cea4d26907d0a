package controller

const timerEpsilon = 1e-9

// Timer counts elapsed seconds toward a duration.
type Timer struct {
	Elapsed  float64
	Duration float64
}

// NewFinishedTimer returns a timer that already reports Finished.
func NewFinishedTimer(duration float64) Timer {
	return Timer{Elapsed: duration, Duration: duration}
}

func (t *Timer) Tick(dt float64) {
	if dt > 0 {
		t.Elapsed += dt
	}
}

func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Expire forces the timer into the finished state.
func (t *Timer) Expire() {
	if t.Elapsed < t.Duration {
		t.Elapsed = t.Duration
	}
}

// Finished tolerates the rounding that builds up from summing fixed steps.
func (t Timer) Finished() bool {
	return t.Elapsed+timerEpsilon >= t.Duration
}
