package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eiyeron/six/internal/combat"
)

func TestMenu_CursorMovement(t *testing.T) {
	r, book := newRosterAndBook(t)
	m := &Menu{Character: 0}

	steps := []struct {
		in   Input
		want int
	}{
		{InputLeft, 0},
		{InputRight, 1},
		{InputRight, 2},
		{InputPageEnd, 3},
		{InputRight, 3},
		{InputPageStart, 0},
	}
	for _, st := range steps {
		tr := m.Update(st.in, r, book)
		assert.Equal(t, DecisionNone, tr.Kind, "input %s", st.in)
		assert.Equal(t, st.want, m.Cursor, "input %s", st.in)
	}
}

func TestMenu_ConfirmByTargetKind(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		kind   DecisionTransitionKind
		target combat.Target
	}{
		{name: "single enemy opens target selection", cursor: 0, kind: DecisionSwitch},
		{name: "whole team commits", cursor: 1, kind: DecisionCommit, target: combat.WholeTeam(combat.TeamEnemy)},
		{name: "single ally opens target selection", cursor: 2, kind: DecisionSwitch},
		{name: "self commits without target", cursor: 3, kind: DecisionCommit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, book := newRosterAndBook(t)
			m := &Menu{Character: 0, Cursor: tt.cursor}
			tr := m.Update(InputConfirm, r, book)
			require.Equal(t, tt.kind, tr.Kind)
			if tt.kind == DecisionSwitch {
				ts, ok := tr.Next.(*TargetSelection)
				require.True(t, ok)
				assert.Equal(t, tt.cursor, ts.Cursor)
				assert.Equal(t, 0, ts.Selected)
				return
			}
			assert.Equal(t, tt.target, tr.Record.Target)
			assert.Equal(t, 0, tr.Record.Actor)
			assert.Equal(t, uint16(16), tr.Record.Speed)
		})
	}
}

func TestMenu_CancelReturnsToPreviousLivingAlly(t *testing.T) {
	r, book := newRosterAndBook(t)
	knockOut(r.Allies[1])

	tr := (&Menu{Character: 2}).Update(InputCancel, r, book)
	require.Equal(t, DecisionBack, tr.Kind)
	assert.Equal(t, 0, tr.Next.Acting())

	tr = (&Menu{Character: 0}).Update(InputCancel, r, book)
	assert.Equal(t, DecisionNone, tr.Kind, "nothing before the first ally")
}

func TestMenu_RefusesUnaffordableMove(t *testing.T) {
	r, book := newRosterAndBook(t)
	r.Allies[0].PP.SetTarget(5)

	m := &Menu{Character: 0, Cursor: 1}
	tr := m.Update(InputConfirm, r, book)
	assert.Equal(t, DecisionNone, tr.Kind)
	assert.NotEmpty(t, tr.Refused)
}

func TestDecisionStates_SkipWhenFallen(t *testing.T) {
	r, book := newRosterAndBook(t)
	states := []DecisionState{
		&Menu{Character: 0},
		&TargetSelection{Character: 0, Move: mustMove(t, book, "strike")},
	}
	for _, st := range states {
		assert.False(t, st.Fallen())
		st.MarkFallen()
		assert.True(t, st.Fallen())
		tr := st.Update(InputConfirm, r, book)
		assert.Equal(t, DecisionSkip, tr.Kind)
	}
}

func TestTargetSelection_SkipsFallenAndWraps(t *testing.T) {
	r, book := newRosterAndBook(t)
	strike := mustMove(t, book, "strike")
	knockOut(r.Enemies[0])

	tr := (&Menu{Character: 0}).Update(InputConfirm, r, book)
	ts := tr.Next.(*TargetSelection)
	assert.Equal(t, 1, ts.Selected)

	ts.Update(InputRight, r, book)
	assert.Equal(t, 1, ts.Selected, "only one candidate left")
	ts.Update(InputLeft, r, book)
	assert.Equal(t, 1, ts.Selected)

	tr = ts.Update(InputConfirm, r, book)
	require.Equal(t, DecisionCommit, tr.Kind)
	assert.Equal(t, ActionRecord{
		Actor:  0,
		Speed:  16,
		Move:   strike.ID,
		Target: combat.Single(enemy(1)),
	}, tr.Record)
}

func TestTargetSelection_AllyCycling(t *testing.T) {
	r, book := newRosterAndBook(t)
	ts := &TargetSelection{Character: 2, Move: mustMove(t, book, "lifeup")}
	knockOut(r.Allies[1])

	ts.Update(InputRight, r, book)
	assert.Equal(t, 2, ts.Selected)
	ts.Update(InputPageEnd, r, book)
	assert.Equal(t, 3, ts.Selected)
	ts.Update(InputRight, r, book)
	assert.Equal(t, 0, ts.Selected, "wraps to the front")
	ts.Update(InputLeft, r, book)
	assert.Equal(t, 3, ts.Selected)

	revive := &TargetSelection{Character: 2, Move: mustMove(t, book, "revive")}
	revive.Update(InputRight, r, book)
	assert.Equal(t, 1, revive.Selected, "revive may pick the fallen")
}

func TestTargetSelection_SelectionFallsWhileOpen(t *testing.T) {
	r, book := newRosterAndBook(t)
	ts := &TargetSelection{Character: 0, Move: mustMove(t, book, "strike")}
	knockOut(r.Enemies[0])

	tr := ts.Update(InputConfirm, r, book)
	require.Equal(t, DecisionCommit, tr.Kind)
	assert.Equal(t, combat.Single(enemy(1)), tr.Record.Target)
}

func TestTargetSelection_CancelRestoresMenuCursor(t *testing.T) {
	r, book := newRosterAndBook(t)
	m := &Menu{Character: 0, Cursor: 2}
	tr := m.Update(InputConfirm, r, book)
	require.Equal(t, DecisionSwitch, tr.Kind)

	tr = tr.Next.Update(InputCancel, r, book)
	require.Equal(t, DecisionSwitch, tr.Kind)
	back, ok := tr.Next.(*Menu)
	require.True(t, ok)
	assert.Equal(t, 2, back.Cursor)
	assert.Equal(t, 0, back.Character)
}

func TestTargetSelection_SpeedSnapshotAtCommit(t *testing.T) {
	r, book := newRosterAndBook(t)
	ts := &TargetSelection{Character: 0, Move: mustMove(t, book, "strike")}
	r.Allies[0].Stats.Speed.Buff(1)

	tr := ts.Update(InputConfirm, r, book)
	assert.Equal(t, uint16(24), tr.Record.Speed)
}

func TestNewDecisionTurn_StartsAtFirstLiving(t *testing.T) {
	r, _ := newRosterAndBook(t)
	knockOut(r.Allies[0])
	st, ok := NewDecisionTurn(r)
	require.True(t, ok)
	assert.Equal(t, 1, st.Acting())

	for _, a := range r.Allies {
		knockOut(a)
	}
	_, ok = NewDecisionTurn(r)
	assert.False(t, ok)
}
