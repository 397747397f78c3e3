package combat

import (
	"math/rand"

	"github.com/Eiyeron/six/internal/config"
	"github.com/Eiyeron/six/internal/util"
)

const (
	MinDamageRoll = 0.75
	MaxDamageRoll = 1.25
)

// Damage computes (attackLevel*offense - defense) * roll, truncated. A
// defense above the attack clamps to zero instead of wrapping.
func Damage(offense, attackLevel, defense uint16, roll float64) uint16 {
	base := int(attackLevel)*int(offense) - int(defense)
	if base <= 0 {
		return 0
	}
	v := float64(base) * roll
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

func RollDamage(rng *rand.Rand, offense, attackLevel, defense uint16) uint16 {
	return Damage(offense, attackLevel, defense, util.Uniform(rng, MinDamageRoll, MaxDamageRoll))
}

// Effect is one applied change, reported back to whoever listens.
type Effect struct {
	Kind   string
	Source ActorID
	Target ActorID
	Amount int
	Stat   string
}

// applyMove lands a move's effect on every target, skipping the fallen unless
// the move is allowed to touch them.
func applyMove(move config.MoveDef, caster Stats, source ActorID, targets []*Actor, rng *rand.Rand, report func(Effect)) {
	for _, t := range targets {
		if t.KO() && !move.AllowFallen {
			continue
		}
		ef := Effect{Kind: move.Effect, Source: source, Target: t.ID}
		switch move.Effect {
		case config.EffectDamage:
			dmg := RollDamage(rng, caster.Offense.Multiplied(), move.Power, t.Stats.Defense.Multiplied())
			ApplyDelta(t.HP, -int(dmg))
			ef.Amount = int(dmg)
		case config.EffectHeal:
			amount := int(move.Power) * int(caster.IQ.Multiplied())
			ApplyDelta(t.HP, amount)
			ef.Amount = amount
		case config.EffectBuff:
			st := t.Stats.Stat(move.Stat)
			if st == nil {
				continue
			}
			ef.Amount = int(st.Buff(move.Levels))
			ef.Stat = move.Stat
		default:
			continue
		}
		if report != nil {
			report(ef)
		}
	}
}
