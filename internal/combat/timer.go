package combat

// Timer counts a fixed duration down to zero.
type Timer struct {
	remaining float64
}

func NewTimer(duration float64) Timer { return Timer{remaining: max(duration, 0)} }

func (t *Timer) Tick(dt float64) {
	t.remaining = max(t.remaining-dt, 0)
}

func (t *Timer) Done() bool { return t.remaining == 0 }
