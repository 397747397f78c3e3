package combat

import "github.com/Eiyeron/six/internal/config"

// EnemyPolicy picks what an enemy does when its queue entry comes up.
type EnemyPolicy interface {
	Choose(r *Roster, enemy int) (moveID string, target Target, ok bool)
}

// StrikeFirstLiving always bashes the first ally still standing.
type StrikeFirstLiving struct{}

func (StrikeFirstLiving) Choose(r *Roster, enemy int) (string, Target, bool) {
	i, ok := r.FirstLiving(TeamAlly, 0)
	if !ok {
		return "", Target{}, false
	}
	return config.StrikeID, Single(ActorID{Team: TeamAlly, Index: i}), true
}
