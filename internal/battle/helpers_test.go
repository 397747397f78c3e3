package battle

import (
	"math/rand"
	"testing"

	"github.com/Eiyeron/six/internal/combat"
	"github.com/Eiyeron/six/internal/config"
)

func newRosterAndBook(t *testing.T) (*combat.Roster, *combat.ActionBook) {
	t.Helper()
	cfg := config.DefaultBattle()
	return combat.NewRoster(&cfg), combat.NewActionBook(&cfg, rand.New(rand.NewSource(5)))
}

func knockOut(a *combat.Actor) {
	a.HP.SetTarget(0)
	a.HP.Advance(1e6)
}

func ally(i int) combat.ActorID  { return combat.ActorID{Team: combat.TeamAlly, Index: i} }
func enemy(i int) combat.ActorID { return combat.ActorID{Team: combat.TeamEnemy, Index: i} }

// recorder collects emitted events for assertions.
type recorder struct {
	events []Event
}

func (r *recorder) emit(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) types() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func mustMove(t *testing.T, book *combat.ActionBook, id string) config.MoveDef {
	t.Helper()
	m, ok := book.Move(id)
	if !ok {
		t.Fatalf("move %q missing from the default table", id)
	}
	return m
}
