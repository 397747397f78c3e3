package battle

import (
	"github.com/Eiyeron/six/internal/combat"
	"github.com/Eiyeron/six/internal/config"
)

type DecisionTransitionKind int

const (
	DecisionNone DecisionTransitionKind = iota
	// DecisionSwitch replaces the sub-state with Next.
	DecisionSwitch
	// DecisionCommit hands Record to the session and moves to the next ally.
	DecisionCommit
	// DecisionSkip moves on without a record (the acting ally fell).
	DecisionSkip
	// DecisionBack returns to a previous ally, whose record is dropped.
	DecisionBack
)

type DecisionTransition struct {
	Kind   DecisionTransitionKind
	Next   DecisionState
	Record ActionRecord
	// Refused is set when a confirm was ignored, with the reason.
	Refused string
}

// DecisionState is one of *Menu or *TargetSelection.
type DecisionState interface {
	Acting() int
	Fallen() bool
	// MarkFallen raises the side-band KO flag; the next update skips the ally.
	MarkFallen()
	Update(in Input, r *combat.Roster, book *combat.ActionBook) DecisionTransition
}

// NewDecisionTurn opens the menu of the first living ally, if any.
func NewDecisionTurn(r *combat.Roster) (DecisionState, bool) {
	i, ok := r.FirstLiving(combat.TeamAlly, 0)
	if !ok {
		return nil, false
	}
	return &Menu{Character: i}, true
}

type Menu struct {
	Character int
	Cursor    int
	KO        bool
}

func (m *Menu) Acting() int  { return m.Character }
func (m *Menu) Fallen() bool { return m.KO }
func (m *Menu) MarkFallen()  { m.KO = true }

// usable reports whether the ally can pay for the move right now.
func usable(a *combat.Actor, move config.MoveDef) bool {
	return move.PPCost == 0 || a.PP.Target() >= move.PPCost
}

func (m *Menu) Update(in Input, r *combat.Roster, book *combat.ActionBook) DecisionTransition {
	if m.KO {
		return DecisionTransition{Kind: DecisionSkip}
	}
	ally := r.Actor(combat.ActorID{Team: combat.TeamAlly, Index: m.Character})
	items := book.Menu(ally)
	last := len(items) - 1
	m.Cursor = min(max(m.Cursor, 0), max(last, 0))

	if in.Has(InputLeft) && m.Cursor > 0 {
		m.Cursor--
	}
	if in.Has(InputRight) && m.Cursor < last {
		m.Cursor++
	}
	if in.Has(InputPageStart) {
		m.Cursor = 0
	}
	if in.Has(InputPageEnd) && last >= 0 {
		m.Cursor = last
	}

	if in.Has(InputConfirm) && last >= 0 {
		return m.confirm(ally, items[m.Cursor], r)
	}
	if in.Has(InputCancel) {
		if prev, ok := r.LastLivingBefore(combat.TeamAlly, m.Character); ok {
			return DecisionTransition{Kind: DecisionBack, Next: &Menu{Character: prev}}
		}
	}
	return DecisionTransition{}
}

func (m *Menu) confirm(ally *combat.Actor, move config.MoveDef, r *combat.Roster) DecisionTransition {
	if !usable(ally, move) {
		return DecisionTransition{Refused: "not enough PP for " + move.Name}
	}
	if move.NeedsTarget() {
		ts := &TargetSelection{Character: m.Character, Cursor: m.Cursor, Move: move}
		sel, ok := ts.firstValid(r)
		if !ok {
			return DecisionTransition{Refused: "no target for " + move.Name}
		}
		ts.Selected = sel
		return DecisionTransition{Kind: DecisionSwitch, Next: ts}
	}
	var target combat.Target
	if move.WholeTeam() {
		side := combat.TeamAlly
		if move.OnEnemies() {
			side = combat.TeamEnemy
		}
		target = combat.WholeTeam(side)
	}
	return DecisionTransition{Kind: DecisionCommit, Record: ActionRecord{
		Actor:  m.Character,
		Speed:  ally.Stats.Speed.Multiplied(),
		Move:   move.ID,
		Target: target,
	}}
}

// TargetSelection picks a single target for the move chosen in the menu.
// Cursor remembers the menu position to restore on cancel.
type TargetSelection struct {
	Character int
	Cursor    int
	Selected  int
	Move      config.MoveDef
	KO        bool
}

func (t *TargetSelection) Acting() int  { return t.Character }
func (t *TargetSelection) Fallen() bool { return t.KO }
func (t *TargetSelection) MarkFallen()  { t.KO = true }

func (t *TargetSelection) Side() combat.Team {
	if t.Move.OnEnemies() {
		return combat.TeamEnemy
	}
	return combat.TeamAlly
}

func (t *TargetSelection) valid(r *combat.Roster, i int) bool {
	team := r.Team(t.Side())
	if i < 0 || i >= len(team) {
		return false
	}
	return t.Move.AllowFallen || !team[i].KO()
}

func (t *TargetSelection) firstValid(r *combat.Roster) (int, bool) {
	for i := range r.Team(t.Side()) {
		if t.valid(r, i) {
			return i, true
		}
	}
	return 0, false
}

func (t *TargetSelection) lastValid(r *combat.Roster) (int, bool) {
	for i := len(r.Team(t.Side())) - 1; i >= 0; i-- {
		if t.valid(r, i) {
			return i, true
		}
	}
	return 0, false
}

// step walks dir (+1/-1) from the current selection to the next valid
// candidate, wrapping around.
func (t *TargetSelection) step(r *combat.Roster, dir int) (int, bool) {
	n := len(r.Team(t.Side()))
	for k := 1; k <= n; k++ {
		i := ((t.Selected+dir*k)%n + n) % n
		if t.valid(r, i) {
			return i, true
		}
	}
	return 0, false
}

func (t *TargetSelection) Update(in Input, r *combat.Roster, book *combat.ActionBook) DecisionTransition {
	if t.KO {
		return DecisionTransition{Kind: DecisionSkip}
	}
	if !t.valid(r, t.Selected) {
		// The highlighted candidate fell while we were looking at it.
		if i, ok := t.step(r, 1); ok {
			t.Selected = i
		}
	}
	if in.Has(InputLeft) {
		if i, ok := t.step(r, -1); ok {
			t.Selected = i
		}
	}
	if in.Has(InputRight) {
		if i, ok := t.step(r, 1); ok {
			t.Selected = i
		}
	}
	if in.Has(InputPageStart) {
		if i, ok := t.firstValid(r); ok {
			t.Selected = i
		}
	}
	if in.Has(InputPageEnd) {
		if i, ok := t.lastValid(r); ok {
			t.Selected = i
		}
	}

	if in.Has(InputConfirm) {
		if !t.valid(r, t.Selected) {
			return DecisionTransition{Refused: "no target for " + t.Move.Name}
		}
		ally := r.Actor(combat.ActorID{Team: combat.TeamAlly, Index: t.Character})
		return DecisionTransition{Kind: DecisionCommit, Record: ActionRecord{
			Actor:  t.Character,
			Speed:  ally.Stats.Speed.Multiplied(),
			Move:   t.Move.ID,
			Target: combat.Single(combat.ActorID{Team: t.Side(), Index: t.Selected}),
		}}
	}
	if in.Has(InputCancel) {
		return DecisionTransition{Kind: DecisionSwitch, Next: &Menu{Character: t.Character, Cursor: t.Cursor}}
	}
	return DecisionTransition{}
}
