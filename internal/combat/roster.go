package combat

import (
	"fmt"

	"github.com/Eiyeron/six/internal/config"
)

// Roster holds both sides of a battle. KO'd actors stay in place so ActorIDs
// remain stable for the whole fight.
type Roster struct {
	Allies  []*Actor
	Enemies []*Actor
}

func NewRoster(cfg *config.BattleConfig) *Roster {
	r := &Roster{}
	for i, def := range cfg.Allies {
		r.Allies = append(r.Allies, NewAlly(i, def, cfg.Timing.MeterRate))
	}
	for i, def := range cfg.Enemies {
		r.Enemies = append(r.Enemies, NewEnemy(i, def))
	}
	return r
}

func (r *Roster) Team(t Team) []*Actor {
	if t == TeamAlly {
		return r.Allies
	}
	return r.Enemies
}

// Actor resolves an id. Unknown ids are a broken invariant upstream.
func (r *Roster) Actor(id ActorID) *Actor {
	team := r.Team(id.Team)
	if id.Index < 0 || id.Index >= len(team) {
		panic(fmt.Sprintf("combat: no actor %s in roster", id))
	}
	return team[id.Index]
}

func (r *Roster) AllKO(t Team) bool {
	for _, a := range r.Team(t) {
		if !a.KO() {
			return false
		}
	}
	return true
}

// FirstLiving returns the first index at or after from whose actor is still
// standing.
func (r *Roster) FirstLiving(t Team, from int) (int, bool) {
	team := r.Team(t)
	for i := max(from, 0); i < len(team); i++ {
		if !team[i].KO() {
			return i, true
		}
	}
	return 0, false
}

// LastLivingBefore scans backward from before-1.
func (r *Roster) LastLivingBefore(t Team, before int) (int, bool) {
	team := r.Team(t)
	for i := min(before, len(team)) - 1; i >= 0; i-- {
		if !team[i].KO() {
			return i, true
		}
	}
	return 0, false
}

// Resolve turns a target into the slice an action operates on.
func (r *Roster) Resolve(t Target) []*Actor {
	switch t.Kind {
	case TargetSingle:
		return []*Actor{r.Actor(t.ActorID())}
	case TargetWholeTeam:
		return r.Team(t.Team)
	default:
		return nil
	}
}

func (r *Roster) Summaries(t Team) []Summary {
	team := r.Team(t)
	out := make([]Summary, len(team))
	for i, a := range team {
		out[i] = a.Summary()
	}
	return out
}

// AdvanceMeters ticks every meter of both sides.
func (r *Roster) AdvanceMeters(dt float64) {
	for _, a := range r.Allies {
		a.AdvanceMeters(dt)
	}
	for _, a := range r.Enemies {
		a.AdvanceMeters(dt)
	}
}
