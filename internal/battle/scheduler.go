package battle

import (
	"sort"

	"github.com/Eiyeron/six/internal/combat"
)

// ActionRecord is what an ally committed to during decision. Speed is the
// snapshot taken at commit time and is never re-read.
type ActionRecord struct {
	Actor  int           `json:"actor"`
	Speed  uint16        `json:"speed"`
	Move   string        `json:"move"`
	Target combat.Target `json:"target"`
}

type TurnQueueEntry struct {
	Team  combat.Team `json:"team"`
	Index int         `json:"index"`
	Speed uint16      `json:"speed"`
}

// Schedule merges committed ally records with every living enemy into one
// queue, fastest first. Ties keep allies before enemies, then roster order.
// Records of allies that fell after committing are dropped. The returned map
// holds the records the resolution will look up, keyed by ally index.
func Schedule(r *combat.Roster, records []ActionRecord) ([]TurnQueueEntry, map[int]ActionRecord) {
	byActor := make(map[int]ActionRecord, len(records))
	for _, rec := range records {
		byActor[rec.Actor] = rec
	}

	queue := make([]TurnQueueEntry, 0, len(byActor)+len(r.Enemies))
	for i, ally := range r.Allies {
		rec, ok := byActor[i]
		if !ok {
			continue
		}
		if ally.KO() {
			delete(byActor, i)
			continue
		}
		queue = append(queue, TurnQueueEntry{Team: combat.TeamAlly, Index: i, Speed: rec.Speed})
	}
	for i, enemy := range r.Enemies {
		if enemy.KO() {
			continue
		}
		queue = append(queue, TurnQueueEntry{Team: combat.TeamEnemy, Index: i, Speed: enemy.Stats.Speed.Multiplied()})
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Speed > queue[j].Speed
	})
	return queue, byActor
}
