package config

// ActorDef is one row of the fixed stat table a battle is built from.
type ActorDef struct {
	Name    string   `yaml:"name"`
	HP      uint16   `yaml:"hp"`
	MaxHP   uint16   `yaml:"max_hp"`
	PP      uint16   `yaml:"pp"`
	MaxPP   uint16   `yaml:"max_pp"`
	Offense uint16   `yaml:"offense"`
	Defense uint16   `yaml:"defense"`
	Speed   uint16   `yaml:"speed"`
	IQ      uint16   `yaml:"iq"`
	Moves   []string `yaml:"moves"`
	Note    string   `yaml:"note"`
}

type Timing struct {
	Announce  float64 `yaml:"announce"`
	Cast      float64 `yaml:"cast"`
	Outro     float64 `yaml:"outro"`
	MeterRate float64 `yaml:"meter_rate"`
}

// BattleConfig describes a whole encounter: both rosters, the move table and
// the pacing of the turn unroll.
type BattleConfig struct {
	Timing  Timing     `yaml:"timing"`
	Allies  []ActorDef `yaml:"allies"`
	Enemies []ActorDef `yaml:"enemies"`
	Moves   []MoveDef  `yaml:"moves"`
}

func (c *BattleConfig) Move(id string) (MoveDef, bool) {
	for _, m := range c.Moves {
		if m.ID == id {
			return m, true
		}
	}
	return MoveDef{}, false
}

// DefaultBattle returns the built-in encounter: four characters against two robots.
func DefaultBattle() BattleConfig {
	return BattleConfig{
		Timing: Timing{
			Announce:  1.0,
			Cast:      1.0,
			Outro:     2.0,
			MeterRate: 1.0,
		},
		Allies: []ActorDef{
			{Name: "One", HP: 98, MaxHP: 98, PP: 46, MaxPP: 46, Offense: 45, Defense: 22, Speed: 16, IQ: 10, Moves: []string{"psi_fire", "offense_up"}},
			{Name: "Two", HP: 115, MaxHP: 115, PP: 0, MaxPP: 0, Offense: 35, Defense: 27, Speed: 12, IQ: 21},
			{Name: "Three", HP: 82, MaxHP: 82, PP: 73, MaxPP: 73, Offense: 28, Defense: 29, Speed: 20, IQ: 16, Moves: []string{"lifeup", "revive"}},
			{Name: "Four", HP: 67, MaxHP: 67, PP: 0, MaxPP: 0, Offense: 32, Defense: 20, Speed: 9, IQ: 23},
		},
		Enemies: []ActorDef{
			{Name: "Robot", HP: 53, MaxHP: 53, Offense: 35, Defense: 10, Speed: 17, IQ: 8},
			{Name: "Robot", HP: 53, MaxHP: 53, Offense: 35, Defense: 10, Speed: 17, IQ: 8},
		},
		Moves: []MoveDef{
			{ID: StrikeID, Name: "Bash", Kind: KindStrike, Power: 1, Target: TargetEnemy, Effect: EffectDamage},
			{ID: GuardID, Name: "Guard", Kind: KindGuard, Target: TargetSelf, Effect: EffectBuff, Stat: StatDefense, Levels: 1},
			{ID: "psi_fire", Name: "PSI Fire", Kind: KindSpecial, PPCost: 6, Power: 1, Target: TargetEnemies, Effect: EffectDamage},
			{ID: "offense_up", Name: "Offense Up", Kind: KindSpecial, PPCost: 10, Target: TargetAlly, Effect: EffectBuff, Stat: StatOffense, Levels: 1},
			{ID: "lifeup", Name: "Lifeup", Kind: KindSpecial, PPCost: 5, Power: 2, Target: TargetAlly, Effect: EffectHeal},
			{ID: "revive", Name: "Healing", Kind: KindSpecial, PPCost: 20, Power: 1, Target: TargetAlly, Effect: EffectHeal, AllowFallen: true},
		},
	}
}
