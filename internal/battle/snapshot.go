package battle

import "github.com/Eiyeron/six/internal/combat"

type MenuEntry struct {
	Name   string `json:"name"`
	Usable bool   `json:"usable"`
}

// Snapshot is the read-only view handed to a renderer or an input driver.
type Snapshot struct {
	Phase    Phase            `json:"phase"`
	Turn     int              `json:"turn"`
	Clock    float64          `json:"clock"`
	Acting   string           `json:"acting,omitempty"`
	Step     string           `json:"step,omitempty"`
	Cursor   int              `json:"cursor"`
	Menu     []MenuEntry      `json:"menu,omitempty"`
	Selected string           `json:"selected,omitempty"`
	Queue    int              `json:"queue"`
	Allies   []combat.Summary `json:"allies"`
	Enemies  []combat.Summary `json:"enemies"`
}

// menuEntries marks an entry usable only if confirming it would not be refused.
func menuEntries(r *combat.Roster, book *combat.ActionBook, ally *combat.Actor) []MenuEntry {
	var out []MenuEntry
	for _, m := range book.Menu(ally) {
		ok := usable(ally, m)
		if ok && m.NeedsTarget() {
			_, ok = (&TargetSelection{Move: m}).firstValid(r)
		}
		out = append(out, MenuEntry{Name: m.Name, Usable: ok})
	}
	return out
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:   s.phase,
		Turn:    s.turn,
		Clock:   s.clock,
		Allies:  s.roster.Summaries(combat.TeamAlly),
		Enemies: s.roster.Summaries(combat.TeamEnemy),
	}
	switch st := s.decision.(type) {
	case *Menu:
		ally := s.roster.Allies[st.Character]
		snap.Acting = ally.Name
		snap.Step = "menu"
		snap.Cursor = st.Cursor
		snap.Menu = menuEntries(s.roster, s.book, ally)
	case *TargetSelection:
		snap.Acting = s.roster.Allies[st.Character].Name
		snap.Step = "target"
		snap.Cursor = st.Cursor
		snap.Selected = s.roster.Actor(combat.ActorID{Team: st.Side(), Index: st.Selected}).Name
	}
	if s.resolution != nil {
		snap.Step = s.resolution.Step.Name()
		snap.Queue = len(s.resolution.Queue)
		switch st := s.resolution.Step.(type) {
		case *Announce:
			snap.Acting = s.roster.Actor(st.Item.Caster).Name
		case *DoIt:
			snap.Acting = s.roster.Actor(st.Item.Caster).Name
		}
	}
	return snap
}
