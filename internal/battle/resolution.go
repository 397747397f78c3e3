package battle

import (
	"fmt"

	"github.com/Eiyeron/six/internal/combat"
	"github.com/Eiyeron/six/internal/config"
)

// TurnItem carries one queued action from Announce into DoIt. The action is
// owned by whichever of the two phases is active.
type TurnItem struct {
	Caster combat.ActorID
	Move   config.MoveDef
	Action combat.Action
	Target combat.Target
}

type ResolutionTransitionKind int

const (
	ResolutionNone ResolutionTransitionKind = iota
	ResolutionNext
	ResolutionEndOfTurn
)

type ResolutionTransition struct {
	Kind ResolutionTransitionKind
	Next ResolutionStep
}

func nextStep(s ResolutionStep) ResolutionTransition {
	return ResolutionTransition{Kind: ResolutionNext, Next: s}
}

// turnEnv is what the resolution steps read and mutate.
type turnEnv struct {
	roster  *combat.Roster
	book    *combat.ActionBook
	policy  combat.EnemyPolicy
	timing  config.Timing
	decided func() bool
	emit    func(typ string, payload map[string]any)
}

// ResolutionStep is one of *NextAction, *Announce or *DoIt.
type ResolutionStep interface {
	Name() string
	// MarkFallen raises the KO flag if caster is the one acting in this step.
	MarkFallen(caster combat.ActorID)
	update(dt float64, res *Resolution, env *turnEnv) ResolutionTransition
}

// Resolution unrolls one turn's queue front to back.
type Resolution struct {
	Queue   []TurnQueueEntry
	Records map[int]ActionRecord
	Step    ResolutionStep
}

func NewResolution(queue []TurnQueueEntry, records map[int]ActionRecord) *Resolution {
	return &Resolution{Queue: queue, Records: records, Step: &NextAction{}}
}

func (r *Resolution) pop() TurnQueueEntry {
	if len(r.Queue) == 0 {
		panic("battle: pop from empty turn queue")
	}
	e := r.Queue[0]
	r.Queue = r.Queue[1:]
	return e
}

func (r *Resolution) update(dt float64, env *turnEnv) ResolutionTransition {
	return r.Step.update(dt, r, env)
}

type NextAction struct{}

func (*NextAction) Name() string { return "next_action" }

// MarkFallen is a no-op: nobody is acting between two queue entries.
func (*NextAction) MarkFallen(combat.ActorID) {}

func (n *NextAction) update(_ float64, res *Resolution, env *turnEnv) ResolutionTransition {
	if len(res.Queue) == 0 || env.decided() {
		return ResolutionTransition{Kind: ResolutionEndOfTurn}
	}
	entry := res.pop()
	id := combat.ActorID{Team: entry.Team, Index: entry.Index}
	actor := env.roster.Actor(id)
	if actor.KO() {
		env.emit(EventSkip, map[string]any{"actor": actor.Name, "id": id.String(), "reason": "ko"})
		return nextStep(&NextAction{})
	}

	var moveID string
	var target combat.Target
	if entry.Team == combat.TeamAlly {
		rec, ok := res.Records[entry.Index]
		if !ok {
			panic(fmt.Sprintf("battle: no action record for queued ally %d", entry.Index))
		}
		moveID, target = rec.Move, rec.Target
	} else {
		var ok bool
		moveID, target, ok = env.policy.Choose(env.roster, entry.Index)
		if !ok {
			env.emit(EventSkip, map[string]any{"actor": actor.Name, "id": id.String(), "reason": "no target"})
			return nextStep(&NextAction{})
		}
	}

	action, err := env.book.Instantiate(moveID, id)
	if err != nil {
		panic(fmt.Sprintf("battle: %s cannot act: %v", actor.Name, err))
	}
	move, _ := env.book.Move(moveID)
	env.emit(EventAnnounce, map[string]any{
		"actor": actor.Name, "id": id.String(), "move": move.Name, "target": target.String(),
	})
	return nextStep(&Announce{Item: TurnItem{Caster: id, Move: move, Action: action, Target: target}})
}

// Announce is the wind-up before an action lands. It has no effect of its own.
type Announce struct {
	Item    TurnItem
	Elapsed float64
	KO      bool
}

func (*Announce) Name() string { return "announce" }

func (a *Announce) MarkFallen(caster combat.ActorID) {
	if a.Item.Caster == caster {
		a.KO = true
	}
}

func (a *Announce) update(dt float64, _ *Resolution, env *turnEnv) ResolutionTransition {
	if a.KO {
		a.Item.Action.Cancel()
		env.emit(EventFizzle, map[string]any{"id": a.Item.Caster.String(), "move": a.Item.Move.Name, "reason": "caster fell"})
		return nextStep(&NextAction{})
	}
	a.Elapsed += dt
	if a.Elapsed >= env.timing.Announce {
		return nextStep(&DoIt{Item: a.Item})
	}
	return ResolutionTransition{}
}

// DoIt runs the action until it reports Done. Caster stats and targets are
// read fresh every frame so buffs landing after the announce still count.
type DoIt struct {
	Item    TurnItem
	KO      bool
	started bool
}

func (*DoIt) Name() string { return "do_it" }

func (d *DoIt) MarkFallen(caster combat.ActorID) {
	if d.Item.Caster == caster {
		d.KO = true
	}
}

func (d *DoIt) fizzle(env *turnEnv, reason string) ResolutionTransition {
	d.Item.Action.Cancel()
	env.emit(EventFizzle, map[string]any{"id": d.Item.Caster.String(), "move": d.Item.Move.Name, "reason": reason})
	return nextStep(&NextAction{})
}

func (d *DoIt) update(dt float64, _ *Resolution, env *turnEnv) ResolutionTransition {
	if d.KO {
		return d.fizzle(env, "caster fell")
	}
	caster := env.roster.Actor(d.Item.Caster)
	if !d.started {
		d.started = true
		if c, ok := d.Item.Action.(combat.Coster); ok && caster.PP.Target() < c.Cost() {
			return d.fizzle(env, "not enough PP")
		}
		env.emit(EventAct, map[string]any{"actor": caster.Name, "id": d.Item.Caster.String(), "move": d.Item.Move.Name})
	}

	targets, ok := d.targets(env.roster, caster)
	if !ok {
		return d.fizzle(env, "no target")
	}
	if d.Item.Action.Execute(caster.Stats, targets, dt) == combat.Pending {
		return ResolutionTransition{}
	}
	if c, ok := d.Item.Action.(combat.Coster); ok && c.Cost() > 0 {
		combat.ApplyDelta(caster.PP, -int(c.Cost()))
	}
	return nextStep(&NextAction{})
}

// targets resolves the item's target into actors. A single target that fell
// is swapped for the first living member of its team unless the move may
// touch the fallen. Moves without a target act on their caster.
func (d *DoIt) targets(r *combat.Roster, caster *combat.Actor) ([]*combat.Actor, bool) {
	switch d.Item.Target.Kind {
	case combat.TargetSingle:
		if r.Actor(d.Item.Target.ActorID()).KO() && !d.Item.Move.AllowFallen {
			i, ok := r.FirstLiving(d.Item.Target.Team, 0)
			if !ok {
				return nil, false
			}
			d.Item.Target.Index = i
		}
		return r.Resolve(d.Item.Target), true
	case combat.TargetWholeTeam:
		return r.Resolve(d.Item.Target), true
	default:
		return []*combat.Actor{caster}, true
	}
}
