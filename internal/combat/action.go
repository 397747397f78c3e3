package combat

import (
	"fmt"
	"math/rand"

	"github.com/Eiyeron/six/internal/config"
)

type Status int

const (
	Pending Status = iota
	Done
)

func (s Status) String() string {
	if s == Done {
		return "done"
	}
	return "pending"
}

// Action is one unit of combat effect. Execute is called every frame until it
// reports Done; the effect lands at most once.
type Action interface {
	Name() string
	Execute(caster Stats, targets []*Actor, dt float64) Status
	// Cancel aborts the action; the next Execute finishes without an effect.
	Cancel()
}

// Coster is implemented by actions that spend PP when they land.
type Coster interface {
	Cost() uint16
}

// Strike is the baseline physical attack.
type Strike struct {
	Level    uint16
	Source   ActorID
	OnEffect func(Effect)

	name      string
	timer     Timer
	rng       *rand.Rand
	cancelled bool
	landed    bool
}

func NewStrike(name string, level uint16, cast float64, rng *rand.Rand) *Strike {
	return &Strike{name: name, Level: level, timer: NewTimer(cast), rng: rng}
}

func (s *Strike) Name() string { return s.name }
func (s *Strike) Cancel()      { s.cancelled = true }

func (s *Strike) Execute(caster Stats, targets []*Actor, dt float64) Status {
	if s.cancelled || s.landed {
		return Done
	}
	s.timer.Tick(dt)
	if !s.timer.Done() {
		return Pending
	}
	s.landed = true
	for _, t := range targets {
		dmg := RollDamage(s.rng, caster.Offense.Multiplied(), s.Level, t.Stats.Defense.Multiplied())
		ApplyDelta(t.HP, -int(dmg))
		if s.OnEffect != nil {
			s.OnEffect(Effect{Kind: config.EffectDamage, Source: s.Source, Target: t.ID, Amount: int(dmg)})
		}
	}
	return Done
}

// Special runs a configured move: special moves and guard.
type Special struct {
	Move     config.MoveDef
	Source   ActorID
	OnEffect func(Effect)

	timer     Timer
	rng       *rand.Rand
	cancelled bool
	landed    bool
}

func NewSpecial(move config.MoveDef, cast float64, rng *rand.Rand) *Special {
	return &Special{Move: move, timer: NewTimer(cast), rng: rng}
}

func (s *Special) Name() string { return s.Move.Name }
func (s *Special) Cancel()      { s.cancelled = true }
func (s *Special) Cost() uint16 { return s.Move.PPCost }

func (s *Special) Execute(caster Stats, targets []*Actor, dt float64) Status {
	if s.cancelled || s.landed {
		return Done
	}
	s.timer.Tick(dt)
	if !s.timer.Done() {
		return Pending
	}
	s.landed = true
	applyMove(s.Move, caster, s.Source, targets, s.rng, s.OnEffect)
	return Done
}

// ActionBook knows the move table and turns move ids into fresh actions.
type ActionBook struct {
	OnEffect func(Effect)

	moves map[string]config.MoveDef
	cast  float64
	rng   *rand.Rand
}

func NewActionBook(cfg *config.BattleConfig, rng *rand.Rand) *ActionBook {
	b := &ActionBook{
		moves: map[string]config.MoveDef{},
		cast:  cfg.Timing.Cast,
		rng:   rng,
	}
	for _, m := range cfg.Moves {
		b.moves[m.ID] = m
	}
	return b
}

func (b *ActionBook) Move(id string) (config.MoveDef, bool) {
	m, ok := b.moves[id]
	return m, ok
}

// Menu lists what an ally can pick, in display order: strike, its special
// moves, then guard.
func (b *ActionBook) Menu(a *Actor) []config.MoveDef {
	var out []config.MoveDef
	if m, ok := b.moves[config.StrikeID]; ok {
		out = append(out, m)
	}
	for _, id := range a.Moves {
		if m, ok := b.moves[id]; ok && m.Kind == config.KindSpecial {
			out = append(out, m)
		}
	}
	if m, ok := b.moves[config.GuardID]; ok {
		out = append(out, m)
	}
	return out
}

func (b *ActionBook) Instantiate(moveID string, source ActorID) (Action, error) {
	m, ok := b.moves[moveID]
	if !ok {
		return nil, fmt.Errorf("move %q: %w", moveID, config.ErrUnknownMove)
	}
	switch m.Kind {
	case config.KindStrike:
		s := NewStrike(m.Name, max(m.Power, 1), b.cast, b.rng)
		s.Source = source
		s.OnEffect = b.OnEffect
		return s, nil
	case config.KindSpecial, config.KindGuard:
		s := NewSpecial(m, b.cast, b.rng)
		s.Source = source
		s.OnEffect = b.OnEffect
		return s, nil
	default:
		return nil, fmt.Errorf("move %q kind %q: %w", moveID, m.Kind, config.ErrUnimplementedAction)
	}
}
