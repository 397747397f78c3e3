package combat

import "math"

// Meter is a bounded resource (HP or PP) owned by a single actor.
type Meter interface {
	CurrentAndMax() (uint16, uint16)
	// Target is the value the meter is heading to. Instant meters are always there.
	Target() uint16
	// SetTarget clamps value to [0, max].
	SetTarget(value int)
	// Advance moves the meter forward by dt seconds.
	Advance(dt float64)
}

// ApplyDelta shifts the meter's target by amount, clamped to the meter range.
func ApplyDelta(m Meter, amount int) {
	m.SetTarget(int(m.Target()) + amount)
}

func Depleted(m Meter) bool {
	cur, _ := m.CurrentAndMax()
	return cur == 0
}

func clampToMax(value int, max uint16) uint16 {
	if value < 0 {
		return 0
	}
	if value > int(max) {
		return max
	}
	return uint16(value)
}

// InstantMeter has no time component: the current value is authoritative.
type InstantMeter struct {
	current uint16
	max     uint16
}

func NewInstantMeter(current, max uint16) *InstantMeter {
	if current > max {
		current = max
	}
	return &InstantMeter{current: current, max: max}
}

func (m *InstantMeter) CurrentAndMax() (uint16, uint16) { return m.current, m.max }
func (m *InstantMeter) Target() uint16                  { return m.current }
func (m *InstantMeter) SetTarget(value int)             { m.current = clampToMax(value, m.max) }
func (m *InstantMeter) Advance(float64)                 {}

// RollingMeter walks its current value toward the target at a fixed rate,
// one unit per second scaled by RateMultiplier.
type RollingMeter struct {
	current     uint16
	target      uint16
	max         uint16
	accumulator float64

	BaseRate       float64
	RateMultiplier float64
}

func NewRollingMeter(current, max uint16) *RollingMeter {
	if current > max {
		current = max
	}
	return &RollingMeter{
		current:        current,
		target:         current,
		max:            max,
		BaseRate:       1.0,
		RateMultiplier: 1.0,
	}
}

func (m *RollingMeter) CurrentAndMax() (uint16, uint16) { return m.current, m.max }
func (m *RollingMeter) Target() uint16                  { return m.target }
func (m *RollingMeter) SetTarget(value int)             { m.target = clampToMax(value, m.max) }

func (m *RollingMeter) rate() float64 { return m.BaseRate * m.RateMultiplier }

// Settled reports whether the displayed value has caught up with the target.
func (m *RollingMeter) Settled() bool { return m.current == m.target }

func (m *RollingMeter) Advance(dt float64) {
	if m.current == m.target {
		m.accumulator = 0
		return
	}
	if dt <= 0 {
		return
	}
	m.accumulator += dt * m.rate()
	if m.accumulator < 1 {
		return
	}
	whole := math.Floor(m.accumulator)
	m.accumulator -= whole

	// Overshoot in either direction snaps to the target and drops the remainder.
	if m.current < m.target {
		if whole >= float64(m.target-m.current) {
			m.current = m.target
			m.accumulator = 0
			return
		}
		m.current += uint16(whole)
		return
	}
	if whole >= float64(m.current-m.target) {
		m.current = m.target
		m.accumulator = 0
		return
	}
	m.current -= uint16(whole)
}
