package combat

import (
	"fmt"

	"github.com/Eiyeron/six/internal/config"
)

type Team int

const (
	TeamAlly Team = iota
	TeamEnemy
)

func (t Team) String() string {
	switch t {
	case TeamAlly:
		return "ally"
	case TeamEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamAlly {
		return TeamEnemy
	}
	return TeamAlly
}

// ActorID points into a roster. It never owns the actor.
type ActorID struct {
	Team  Team
	Index int
}

func (id ActorID) String() string { return fmt.Sprintf("%s#%d", id.Team, id.Index) }

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetSingle
	TargetWholeTeam
)

// Target is either one actor or a whole side. The zero value targets nobody.
type Target struct {
	Kind  TargetKind
	Team  Team
	Index int
}

func Single(id ActorID) Target { return Target{Kind: TargetSingle, Team: id.Team, Index: id.Index} }
func WholeTeam(t Team) Target  { return Target{Kind: TargetWholeTeam, Team: t} }

func (t Target) ActorID() ActorID { return ActorID{Team: t.Team, Index: t.Index} }

func (t Target) String() string {
	switch t.Kind {
	case TargetSingle:
		return t.ActorID().String()
	case TargetWholeTeam:
		return "all " + t.Team.String()
	default:
		return "none"
	}
}

type Actor struct {
	Name  string
	ID    ActorID
	HP    Meter
	PP    Meter
	Stats Stats
	Moves []string
}

func statsFrom(def config.ActorDef) Stats {
	return Stats{
		Offense: NewStat(def.Offense),
		Defense: NewStat(def.Defense),
		Speed:   NewStat(def.Speed),
		IQ:      NewStat(def.IQ),
	}
}

// NewAlly builds a character with rolling meters. rate scales how fast the
// meters roll.
func NewAlly(index int, def config.ActorDef, rate float64) *Actor {
	hp := NewRollingMeter(def.HP, def.MaxHP)
	pp := NewRollingMeter(def.PP, def.MaxPP)
	if rate > 0 {
		hp.RateMultiplier = rate
		pp.RateMultiplier = rate
	}
	return &Actor{
		Name:  def.Name,
		ID:    ActorID{Team: TeamAlly, Index: index},
		HP:    hp,
		PP:    pp,
		Stats: statsFrom(def),
		Moves: append([]string(nil), def.Moves...),
	}
}

// NewEnemy builds an enemy. Enemies use instant meters.
func NewEnemy(index int, def config.ActorDef) *Actor {
	return &Actor{
		Name:  def.Name,
		ID:    ActorID{Team: TeamEnemy, Index: index},
		HP:    NewInstantMeter(def.HP, def.MaxHP),
		PP:    NewInstantMeter(def.PP, def.MaxPP),
		Stats: statsFrom(def),
		Moves: append([]string(nil), def.Moves...),
	}
}

// KO reports whether the displayed HP has reached zero. An actor with a
// mortal wound still rolling down is not KO yet.
func (a *Actor) KO() bool { return Depleted(a.HP) }

func (a *Actor) AdvanceMeters(dt float64) {
	a.HP.Advance(dt)
	a.PP.Advance(dt)
}

// Summary is the read-only view a renderer needs.
type Summary struct {
	Name  string `json:"name"`
	HP    uint16 `json:"hp"`
	MaxHP uint16 `json:"max_hp"`
	PP    uint16 `json:"pp"`
	MaxPP uint16 `json:"max_pp"`
	KO    bool   `json:"ko"`
}

func (a *Actor) Summary() Summary {
	hp, maxHP := a.HP.CurrentAndMax()
	pp, maxPP := a.PP.CurrentAndMax()
	return Summary{Name: a.Name, HP: hp, MaxHP: maxHP, PP: pp, MaxPP: maxPP, KO: hp == 0}
}
