package config

const (
	StrikeID = "strike"
	GuardID  = "guard"
)

// Move kinds. Anything else in a battle file is rejected.
const (
	KindStrike  = "strike"
	KindSpecial = "special"
	KindGuard   = "guard"
)

const (
	TargetEnemy   = "enemy"
	TargetEnemies = "enemies"
	TargetAlly    = "ally"
	TargetAllies  = "allies"
	TargetSelf    = "self"
)

const (
	EffectDamage = "damage"
	EffectHeal   = "heal"
	EffectBuff   = "buff"
)

const (
	StatOffense = "offense"
	StatDefense = "defense"
	StatSpeed   = "speed"
	StatIQ      = "iq"
)

type MoveDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	PPCost      uint16 `yaml:"pp_cost"`
	Power       uint16 `yaml:"power"`
	Target      string `yaml:"target"`
	Effect      string `yaml:"effect"`
	Stat        string `yaml:"stat"`
	Levels      int16  `yaml:"levels"`
	AllowFallen bool   `yaml:"allow_fallen"`
	Note        string `yaml:"note"`
}

// WholeTeam reports whether the move hits every member of a side at once.
func (m MoveDef) WholeTeam() bool {
	return m.Target == TargetEnemies || m.Target == TargetAllies
}

// NeedsTarget reports whether the player has to pick a single target.
func (m MoveDef) NeedsTarget() bool {
	return m.Target == TargetEnemy || m.Target == TargetAlly
}

// OnEnemies reports whether the move is aimed at the opposing side.
func (m MoveDef) OnEnemies() bool {
	return m.Target == TargetEnemy || m.Target == TargetEnemies
}
