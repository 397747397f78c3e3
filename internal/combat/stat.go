package combat

import (
	"fmt"
	"math"
)

const (
	MinModifier int16 = -3
	MaxModifier int16 = 3
)

// multipliers is indexed by modifier - MinModifier.
var multipliers = [...]float64{0.125, 0.25, 0.5, 1.0, 1.5, 1.75, 2.0}

func statMultiplier(modifier int16) float64 {
	if modifier < MinModifier || modifier > MaxModifier {
		panic(fmt.Sprintf("combat: stat modifier %d outside [%d, %d]", modifier, MinModifier, MaxModifier))
	}
	return multipliers[modifier-MinModifier]
}

// Stat is a base value with a buff level applied through the multiplier table.
type Stat struct {
	Base     uint16
	Modifier int16
}

func NewStat(base uint16) Stat { return Stat{Base: base} }

// Multiplied saturates at math.MaxUint16.
func (s Stat) Multiplied() uint16 {
	return uint16(min(statMultiplier(s.Modifier)*float64(s.Base), math.MaxUint16))
}

// Buff moves the modifier by levels, clamped, and returns the change of the
// multiplied value saturated to int16.
func (s *Stat) Buff(levels int16) int16 {
	before := int(s.Multiplied())
	s.Modifier = int16(min(max(int(s.Modifier)+int(levels), int(MinModifier)), int(MaxModifier)))
	delta := int(s.Multiplied()) - before
	return int16(min(max(delta, math.MinInt16), math.MaxInt16))
}

// Stats is copied by value whenever an action needs the caster's numbers.
type Stats struct {
	Offense Stat
	Defense Stat
	Speed   Stat
	IQ      Stat
}

// Stat returns a pointer to the named stat, or nil for an unknown name.
func (s *Stats) Stat(name string) *Stat {
	switch name {
	case "offense":
		return &s.Offense
	case "defense":
		return &s.Defense
	case "speed":
		return &s.Speed
	case "iq":
		return &s.IQ
	default:
		return nil
	}
}
