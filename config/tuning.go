package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure in a tuning file.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is a partial override of the gameplay defaults. Nil fields keep the
// value set in init().
type Tuning struct {
	Goblin *GoblinTuning `yaml:"goblin"`
	Player *PlayerTuning `yaml:"player"`
	Combat *CombatTuning `yaml:"combat"`
	Wave   *WaveTuning   `yaml:"wave"`
}

type GoblinTuning struct {
	WalkSpeed      *float64 `yaml:"walkSpeed"`
	LungeSpeed     *float64 `yaml:"lungeSpeed"`
	ChaseDistance  *float64 `yaml:"chaseDistance"`
	AttackDistance *float64 `yaml:"attackDistance"`
	Health         *uint    `yaml:"health"`
	Damage         *uint    `yaml:"damage"`
}

type PlayerTuning struct {
	WalkSpeed *float64 `yaml:"walkSpeed"`
	Health    *uint    `yaml:"health"`
	Damage    *uint    `yaml:"damage"`
}

type CombatTuning struct {
	KnockbackSpeed  *float64 `yaml:"knockbackSpeed"`
	StaggerDuration *float64 `yaml:"staggerDuration"`
}

type WaveTuning struct {
	Threshold *float64 `yaml:"threshold"`
}

// ParseTuning decodes and validates a YAML tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTuning reads a tuning file from disk.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

type floatField struct {
	name string
	v    *float64
}

func (t *Tuning) validate() error {
	var fields []floatField
	if g := t.Goblin; g != nil {
		fields = append(fields,
			floatField{"goblin.walkSpeed", g.WalkSpeed},
			floatField{"goblin.lungeSpeed", g.LungeSpeed},
			floatField{"goblin.chaseDistance", g.ChaseDistance},
			floatField{"goblin.attackDistance", g.AttackDistance},
		)
		if g.Health != nil && *g.Health == 0 {
			return fmt.Errorf("goblin.health must be at least 1: %w", ErrInvalidTuning)
		}
	}
	if p := t.Player; p != nil {
		fields = append(fields, floatField{"player.walkSpeed", p.WalkSpeed})
		if p.Health != nil && *p.Health == 0 {
			return fmt.Errorf("player.health must be at least 1: %w", ErrInvalidTuning)
		}
	}
	if c := t.Combat; c != nil {
		fields = append(fields,
			floatField{"combat.knockbackSpeed", c.KnockbackSpeed},
			floatField{"combat.staggerDuration", c.StaggerDuration},
		)
	}
	if w := t.Wave; w != nil {
		fields = append(fields, floatField{"wave.threshold", w.Threshold})
	}
	for _, f := range fields {
		if f.v != nil && *f.v < 0 {
			return fmt.Errorf("%s cannot be negative, got %v: %w", f.name, *f.v, ErrInvalidTuning)
		}
	}
	return nil
}

// Apply copies every set field over the package defaults.
func (t *Tuning) Apply() {
	if g := t.Goblin; g != nil {
		setFloat(&Goblin.WalkSpeed, g.WalkSpeed)
		setFloat(&Goblin.LungeSpeed, g.LungeSpeed)
		setFloat(&Goblin.ChaseDistance, g.ChaseDistance)
		setFloat(&Goblin.AttackDistance, g.AttackDistance)
		setUint(&Goblin.Health, g.Health)
		setUint(&Goblin.Hitbox.Damage, g.Damage)
	}
	if p := t.Player; p != nil {
		setFloat(&Player.WalkSpeed, p.WalkSpeed)
		setUint(&Player.Health, p.Health)
		setUint(&Player.Hitbox.Damage, p.Damage)
	}
	if c := t.Combat; c != nil {
		setFloat(&Combat.KnockbackSpeed, c.KnockbackSpeed)
		setFloat(&Combat.StaggerDuration, c.StaggerDuration)
	}
	if w := t.Wave; w != nil {
		setFloat(&Wave.Threshold, w.Threshold)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setUint(dst *uint, v *uint) {
	if v != nil {
		*dst = *v
	}
}
