package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnimplementedAction = errors.New("unimplemented action kind")
	ErrUnknownMove         = errors.New("unknown move")
	ErrEmptyTeam           = errors.New("empty team")
	ErrInvalidActor        = errors.New("invalid actor")
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadBattle reads a battle definition from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func LoadBattle(path string) (BattleConfig, error) {
	cfg := DefaultBattle()
	if err := loadYAML(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("loading battle %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating battle %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the rosters and the move table. Move kinds the engine cannot
// execute are refused here so they never reach a menu.
func (c *BattleConfig) Validate() error {
	if len(c.Allies) == 0 {
		return fmt.Errorf("allies: %w", ErrEmptyTeam)
	}
	if len(c.Enemies) == 0 {
		return fmt.Errorf("enemies: %w", ErrEmptyTeam)
	}
	for _, m := range c.Moves {
		switch m.Kind {
		case KindStrike, KindSpecial, KindGuard:
		default:
			return fmt.Errorf("move %q kind %q: %w", m.ID, m.Kind, ErrUnimplementedAction)
		}
		switch m.Target {
		case TargetEnemy, TargetEnemies, TargetAlly, TargetAllies, TargetSelf:
		default:
			return fmt.Errorf("move %q target %q: %w", m.ID, m.Target, ErrUnimplementedAction)
		}
		switch m.Effect {
		case EffectDamage, EffectHeal:
		case EffectBuff:
			if m.Levels == 0 || !validStat(m.Stat) {
				return fmt.Errorf("move %q buff %q/%d: %w", m.ID, m.Stat, m.Levels, ErrUnimplementedAction)
			}
		default:
			return fmt.Errorf("move %q effect %q: %w", m.ID, m.Effect, ErrUnimplementedAction)
		}
	}
	for _, id := range []string{StrikeID, GuardID} {
		if _, ok := c.Move(id); !ok {
			return fmt.Errorf("%s: %w", id, ErrUnknownMove)
		}
	}
	check := func(team string, defs []ActorDef) error {
		for i, a := range defs {
			if a.HP > a.MaxHP || a.PP > a.MaxPP {
				return fmt.Errorf("%s[%d] %s: meter above max: %w", team, i, a.Name, ErrInvalidActor)
			}
			for _, id := range a.Moves {
				m, ok := c.Move(id)
				if !ok {
					return fmt.Errorf("%s[%d] %s: %q: %w", team, i, a.Name, id, ErrUnknownMove)
				}
				if m.Kind != KindSpecial {
					return fmt.Errorf("%s[%d] %s: %q is not a special move: %w", team, i, a.Name, id, ErrUnknownMove)
				}
			}
		}
		return nil
	}
	if err := check("allies", c.Allies); err != nil {
		return err
	}
	return check("enemies", c.Enemies)
}

func validStat(s string) bool {
	switch s {
	case StatOffense, StatDefense, StatSpeed, StatIQ:
		return true
	}
	return false
}
