package report

import (
	"sort"

	"github.com/Eiyeron/six/internal/battle"
)

type Share struct {
	Total int     `json:"total"`
	Ratio float64 `json:"ratio"`
}

// Summary aggregates a batch of simulated battles.
type Summary struct {
	Runs        int              `json:"runs"`
	Wins        int              `json:"wins"`
	Timeouts    int              `json:"timeouts"`
	WinRate     float64          `json:"win_rate"`
	AvgTime     float64          `json:"avg_time"`
	AvgTurns    float64          `json:"avg_turns"`
	TotalDamage int              `json:"total_damage"`
	ByActor     map[string]Share `json:"by_actor"`

	sumTime  float64
	sumTurns int
	damage   map[string]int
}

func NewSummary() *Summary {
	return &Summary{ByActor: map[string]Share{}, damage: map[string]int{}}
}

// Add folds one result in. Not safe for concurrent use.
func (s *Summary) Add(res battle.SimResult) {
	s.Runs++
	switch {
	case res.Win:
		s.Wins++
	case res.Timeout:
		s.Timeouts++
	}
	s.sumTime += res.Duration
	s.sumTurns += res.Turns
	for k, v := range res.DamageByActor {
		s.damage[k] += v
		s.TotalDamage += v
	}
	s.finish()
}

func (s *Summary) finish() {
	if s.Runs == 0 {
		return
	}
	n := float64(s.Runs)
	s.WinRate = float64(s.Wins) / n
	s.AvgTime = s.sumTime / n
	s.AvgTurns = float64(s.sumTurns) / n
	for k, v := range s.damage {
		share := 0.0
		if s.TotalDamage > 0 {
			share = float64(v) / float64(s.TotalDamage)
		}
		s.ByActor[k] = Share{Total: v, Ratio: share}
	}
}

// Actors returns the actor keys, biggest damage dealer first.
func (s *Summary) Actors() []string {
	keys := make([]string, 0, len(s.ByActor))
	for k := range s.ByActor {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := s.ByActor[keys[i]], s.ByActor[keys[j]]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return keys[i] < keys[j]
	})
	return keys
}
