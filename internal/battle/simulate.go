package battle

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Eiyeron/six/internal/config"
)

// InputSource plays the part of the input device for a headless run.
type InputSource interface {
	Next(s Snapshot) Input
}

// Autopilot confirms whatever is offered. With an Rng it first walks the menu
// cursor to a random usable entry.
type Autopilot struct {
	Rng  *rand.Rand
	plan map[string]int
}

func (a *Autopilot) Next(s Snapshot) Input {
	if s.Phase != PhaseDecision || s.Step != "menu" || a.Rng == nil {
		return InputConfirm
	}
	if a.plan == nil {
		a.plan = map[string]int{}
	}
	key := fmt.Sprintf("%d/%s", s.Turn, s.Acting)
	want, ok := a.plan[key]
	if !ok {
		var usable []int
		for i, m := range s.Menu {
			if m.Usable {
				usable = append(usable, i)
			}
		}
		if len(usable) > 0 {
			want = usable[a.Rng.Intn(len(usable))]
		}
		a.plan[key] = want
	}
	switch {
	case s.Cursor < want:
		return InputRight
	case s.Cursor > want:
		return InputLeft
	}
	return InputConfirm
}

type Env struct {
	Time    float64
	Delta   float64
	MaxTime float64
	Rng     *rand.Rand
	Logger  *slog.Logger
}

type SimResult struct {
	Outcome       string         `json:"outcome"`
	Win           bool           `json:"win"`
	Timeout       bool           `json:"timeout,omitempty"`
	Duration      float64        `json:"duration"`
	Turns         int            `json:"turns"`
	Frames        int            `json:"frames"`
	Events        []Event        `json:"events,omitempty"`
	DamageByActor map[string]int `json:"damage_by_actor,omitempty"`
	HealByActor   map[string]int `json:"heal_by_actor,omitempty"`
	Meta          SimMeta        `json:"meta"`
}

type SimMeta struct {
	Allies  []SimActorMeta `json:"allies"`
	Enemies []SimActorMeta `json:"enemies"`
}

type SimActorMeta struct {
	Name  string `json:"name"`
	MaxHP uint16 `json:"max_hp"`
	MaxPP uint16 `json:"max_pp"`
	Speed uint16 `json:"speed"`
	Note  string `json:"note,omitempty"`
}

func metaOf(defs []config.ActorDef) []SimActorMeta {
	out := make([]SimActorMeta, len(defs))
	for i, d := range defs {
		out[i] = SimActorMeta{Name: d.Name, MaxHP: d.MaxHP, MaxPP: d.MaxPP, Speed: d.Speed, Note: d.Note}
	}
	return out
}

// RunSingle plays one battle to its end with a fixed timestep, feeding the
// session from pilot. The run stops when the session asks to be popped or
// env.MaxTime is reached.
func RunSingle(cfg *config.BattleConfig, env *Env, pilot InputSource, record bool) SimResult {
	if env.Delta <= 0 {
		env.Delta = 1.0 / 60
	}
	if env.MaxTime <= 0 {
		env.MaxTime = 600
	}

	var events []Event
	damage := map[string]int{}
	heal := map[string]int{}
	emit := func(ev Event) {
		switch ev.Type {
		case EventHit, EventHeal:
			key := fmt.Sprintf("%v (%v)", ev.Payload["source"], ev.Payload["source_id"])
			amount, _ := ev.Payload["amount"].(int)
			if ev.Type == EventHit {
				damage[key] += amount
			} else {
				heal[key] += amount
			}
		}
		if record {
			events = append(events, ev)
		}
	}

	s := NewSession(cfg, Options{Rng: env.Rng, Emit: emit, Logger: env.Logger})
	frames := 0
	for env.Time = 0; env.Time < env.MaxTime; env.Time += env.Delta {
		frames++
		if s.Update(env.Delta, pilot.Next(s.Snapshot())) == TransitionPop {
			break
		}
	}

	outcome := s.Phase()
	return SimResult{
		Outcome:       outcome.String(),
		Win:           outcome == PhaseWin,
		Timeout:       !outcome.Terminal(),
		Duration:      s.Clock(),
		Turns:         s.Turn(),
		Frames:        frames,
		Events:        events,
		DamageByActor: damage,
		HealByActor:   heal,
		Meta: SimMeta{
			Allies:  metaOf(cfg.Allies),
			Enemies: metaOf(cfg.Enemies),
		},
	}
}
