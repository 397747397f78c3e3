package battle

import (
	"encoding/json"
	"fmt"
)

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventDecide    = "Decide"
	EventBack      = "Back"
	EventRefuse    = "Refuse"
	EventSkip      = "Skip"
	EventTurn      = "TurnStart"
	EventAnnounce  = "Announce"
	EventAct       = "Act"
	EventHit       = "Hit"
	EventHeal      = "Heal"
	EventBuff      = "Buff"
	EventFizzle    = "Fizzle"
	EventKO        = "KO"
	EventEndOfTurn = "EndOfTurn"
	EventWin       = "Win"
	EventGameOver  = "GameOver"
	EventLogLine   = "LogLine"
)

func (s *Session) emitEvent(typ string, payload map[string]any) {
	if s.emit == nil {
		return
	}
	s.emit(Event{T: s.clock, Type: typ, Payload: payload})
}

func (s *Session) logLine(source, format string, args ...any) {
	if s.emit == nil {
		return
	}
	payload := map[string]any{"text": fmt.Sprintf(format, args...)}
	if source != "" {
		payload["source"] = source
	}
	s.emit(Event{T: s.clock, Type: EventLogLine, Payload: payload})
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
