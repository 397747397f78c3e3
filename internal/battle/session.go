package battle

import (
	"log/slog"
	"math/rand"

	"github.com/Eiyeron/six/internal/combat"
	"github.com/Eiyeron/six/internal/config"
)

// Phase is the discriminant of the macro battle state.
type Phase int

const (
	PhaseDecision Phase = iota
	PhaseScheduling
	PhaseResolution
	PhaseWin
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDecision:
		return "DECISION"
	case PhaseScheduling:
		return "SCHEDULING"
	case PhaseResolution:
		return "RESOLUTION"
	case PhaseWin:
		return "WIN"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

func (p Phase) Terminal() bool { return p == PhaseWin || p == PhaseGameOver }

// Transition tells the host what to do with its scene stack.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionPush
	TransitionSwitch
	TransitionPop
)

func (t Transition) String() string {
	switch t {
	case TransitionPush:
		return "push"
	case TransitionSwitch:
		return "switch"
	case TransitionPop:
		return "pop"
	default:
		return "none"
	}
}

type Options struct {
	Rng    *rand.Rand
	Policy combat.EnemyPolicy
	Emit   func(Event)
	Logger *slog.Logger
}

// Session owns the roster and arbitrates between decision, scheduling and
// resolution. It is driven by one Update call per frame.
type Session struct {
	roster  *combat.Roster
	book    *combat.ActionBook
	policy  combat.EnemyPolicy
	timing  config.Timing
	emit    func(Event)
	log     *slog.Logger
	records []ActionRecord

	phase      Phase
	decision   DecisionState
	resolution *Resolution

	standing [2][]bool
	clock    float64
	turn     int
	outro    combat.Timer
	popped   bool
	refused  string
}

func NewSession(cfg *config.BattleConfig, opts Options) *Session {
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	policy := opts.Policy
	if policy == nil {
		policy = combat.StrikeFirstLiving{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		roster: combat.NewRoster(cfg),
		book:   combat.NewActionBook(cfg, rng),
		policy: policy,
		timing: cfg.Timing,
		emit:   opts.Emit,
		log:    logger,
		turn:   1,
	}
	s.book.OnEffect = s.onEffect
	for _, t := range []combat.Team{combat.TeamAlly, combat.TeamEnemy} {
		team := s.roster.Team(t)
		s.standing[t] = make([]bool, len(team))
		for i, a := range team {
			s.standing[t][i] = !a.KO()
		}
	}
	if end, ok := s.endState(); ok {
		s.enterTerminal(end)
		return s
	}
	s.decision, _ = NewDecisionTurn(s.roster)
	s.emitEvent(EventTurn, map[string]any{"turn": s.turn})
	return s
}

func (s *Session) Roster() *combat.Roster         { return s.roster }
func (s *Session) Phase() Phase                   { return s.phase }
func (s *Session) Turn() int                      { return s.turn }
func (s *Session) Clock() float64                 { return s.clock }
func (s *Session) Decision() DecisionState        { return s.decision }
func (s *Session) Resolution() *Resolution        { return s.resolution }
func (s *Session) PendingRecords() []ActionRecord { return s.records }

func (s *Session) Summaries(t combat.Team) []combat.Summary { return s.roster.Summaries(t) }

// endState reports the terminal phase if one side is fully depleted. Allies
// are checked first, so a double KO is a game over.
func (s *Session) endState() (Phase, bool) {
	if s.roster.AllKO(combat.TeamAlly) {
		return PhaseGameOver, true
	}
	if s.roster.AllKO(combat.TeamEnemy) {
		return PhaseWin, true
	}
	return 0, false
}

func (s *Session) decided() bool {
	_, ok := s.endState()
	return ok
}

// Update advances the battle by dt seconds with the buttons pressed this
// frame: meters roll first, fresh KOs are signalled, then the active state
// gets exactly one update.
func (s *Session) Update(dt float64, in Input) Transition {
	s.clock += dt
	if !s.phase.Terminal() {
		s.roster.AdvanceMeters(dt)
		s.signalKOs()
	}

	switch s.phase {
	case PhaseWin, PhaseGameOver:
		return s.updateTerminal(dt, in)
	}
	if end, ok := s.endState(); ok {
		s.enterTerminal(end)
		return TransitionNone
	}
	switch s.phase {
	case PhaseDecision:
		s.updateDecision(in)
	case PhaseScheduling:
		s.updateScheduling()
	case PhaseResolution:
		s.updateResolution(dt)
	}
	return TransitionNone
}

// signalKOs compares every actor against the previous frame and routes
// freshly fallen ones into whichever sub-state is active.
func (s *Session) signalKOs() {
	for _, t := range []combat.Team{combat.TeamAlly, combat.TeamEnemy} {
		for i, a := range s.roster.Team(t) {
			was := s.standing[t][i]
			now := !a.KO()
			s.standing[t][i] = now
			if !was || now {
				continue
			}
			s.emitEvent(EventKO, map[string]any{"actor": a.Name, "id": a.ID.String()})
			s.logLine(t.String(), "%s is K.O.", a.Name)
			s.log.Debug("actor knocked out", "actor", a.Name, "id", a.ID.String(), "phase", s.phase.String())
			s.signalKO(a.ID)
		}
	}
}

func (s *Session) signalKO(id combat.ActorID) {
	switch s.phase {
	case PhaseDecision:
		if id.Team == combat.TeamAlly && s.decision != nil && s.decision.Acting() == id.Index {
			s.decision.MarkFallen()
		}
	case PhaseResolution:
		if s.resolution != nil {
			s.resolution.Step.MarkFallen(id)
		}
	}
}

func (s *Session) updateDecision(in Input) {
	tr := s.decision.Update(in, s.roster, s.book)
	if tr.Refused != "" && tr.Refused != s.refused {
		s.emitEvent(EventRefuse, map[string]any{"reason": tr.Refused})
	}
	s.refused = tr.Refused

	switch tr.Kind {
	case DecisionSwitch:
		s.decision = tr.Next
	case DecisionCommit:
		s.records = append(s.records, tr.Record)
		ally := s.roster.Allies[tr.Record.Actor]
		s.emitEvent(EventDecide, map[string]any{
			"actor": ally.Name, "move": tr.Record.Move, "target": tr.Record.Target.String(), "speed": tr.Record.Speed,
		})
		s.nextAlly(tr.Record.Actor)
	case DecisionSkip:
		acting := s.decision.Acting()
		s.emitEvent(EventSkip, map[string]any{"actor": s.roster.Allies[acting].Name, "reason": "ko"})
		s.nextAlly(acting)
	case DecisionBack:
		back := tr.Next.Acting()
		kept := s.records[:0]
		for _, rec := range s.records {
			if rec.Actor < back {
				kept = append(kept, rec)
			}
		}
		s.records = kept
		s.decision = tr.Next
		s.emitEvent(EventBack, map[string]any{"actor": s.roster.Allies[back].Name})
	}
}

// nextAlly opens the menu of the next living ally after the one who just
// finished, or hands over to scheduling when nobody is left.
func (s *Session) nextAlly(after int) {
	if end, ok := s.endState(); ok {
		s.enterTerminal(end)
		return
	}
	if i, ok := s.roster.FirstLiving(combat.TeamAlly, after+1); ok {
		s.decision = &Menu{Character: i}
		return
	}
	s.decision = nil
	s.phase = PhaseScheduling
	s.log.Debug("decision complete", "turn", s.turn, "records", len(s.records))
}

func (s *Session) updateScheduling() {
	queue, records := Schedule(s.roster, s.records)
	s.records = nil
	s.resolution = NewResolution(queue, records)
	s.phase = PhaseResolution

	order := make([]string, len(queue))
	for i, e := range queue {
		order[i] = s.roster.Actor(combat.ActorID{Team: e.Team, Index: e.Index}).Name
	}
	s.logLine("system", "turn %d order: %v", s.turn, order)
	s.log.Debug("turn scheduled", "turn", s.turn, "entries", len(queue))
}

func (s *Session) turnEnv() *turnEnv {
	return &turnEnv{
		roster:  s.roster,
		book:    s.book,
		policy:  s.policy,
		timing:  s.timing,
		decided: s.decided,
		emit:    s.emitEvent,
	}
}

func (s *Session) updateResolution(dt float64) {
	tr := s.resolution.update(dt, s.turnEnv())
	switch tr.Kind {
	case ResolutionNext:
		s.resolution.Step = tr.Next
		if end, ok := s.endState(); ok {
			s.enterTerminal(end)
		}
	case ResolutionEndOfTurn:
		s.endOfTurn()
	}
}

func (s *Session) endOfTurn() {
	s.emitEvent(EventEndOfTurn, map[string]any{"turn": s.turn})
	s.resolution = nil
	s.records = nil
	if end, ok := s.endState(); ok {
		s.enterTerminal(end)
		return
	}
	d, ok := NewDecisionTurn(s.roster)
	if !ok {
		s.enterTerminal(PhaseGameOver)
		return
	}
	s.turn++
	s.decision = d
	s.phase = PhaseDecision
	s.emitEvent(EventTurn, map[string]any{"turn": s.turn})
}

func (s *Session) enterTerminal(p Phase) {
	s.phase = p
	s.decision = nil
	s.resolution = nil
	s.records = nil
	s.outro = combat.NewTimer(s.timing.Outro)
	if p == PhaseWin {
		s.emitEvent(EventWin, map[string]any{"turn": s.turn})
	} else {
		s.emitEvent(EventGameOver, map[string]any{"turn": s.turn})
	}
	s.log.Info("battle decided", "outcome", p.String(), "turn", s.turn, "clock", s.clock)
}

func (s *Session) updateTerminal(dt float64, in Input) Transition {
	if s.popped {
		return TransitionNone
	}
	s.outro.Tick(dt)
	if s.outro.Done() || in.Has(InputConfirm) {
		s.popped = true
		return TransitionPop
	}
	return TransitionNone
}

func (s *Session) onEffect(ef combat.Effect) {
	target := s.roster.Actor(ef.Target)
	source := s.roster.Actor(ef.Source)
	payload := map[string]any{
		"source": source.Name, "source_id": ef.Source.String(),
		"target": target.Name, "target_id": ef.Target.String(),
		"amount": ef.Amount,
	}
	switch ef.Kind {
	case config.EffectDamage:
		payload["hp"] = target.HP.Target()
		s.emitEvent(EventHit, payload)
		s.logLine(ef.Source.Team.String(), "%s hits %s for %d", source.Name, target.Name, ef.Amount)
	case config.EffectHeal:
		payload["hp"] = target.HP.Target()
		s.emitEvent(EventHeal, payload)
		s.logLine(ef.Source.Team.String(), "%s heals %s for %d", source.Name, target.Name, ef.Amount)
	case config.EffectBuff:
		payload["stat"] = ef.Stat
		s.emitEvent(EventBuff, payload)
		s.logLine(ef.Source.Team.String(), "%s %s of %s changes by %d", source.Name, ef.Stat, target.Name, ef.Amount)
	}
}
