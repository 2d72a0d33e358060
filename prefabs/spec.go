package prefabs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// TuningFile is the embedded tuning prefab name.
const TuningFile = "tuning.yaml"

type PhysicsSpec struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

type CombatSpec struct {
	StompThreshold    float64 `yaml:"stomp_threshold"`
	BounceVelocity    float64 `yaml:"bounce_velocity"`
	TouchGraceSeconds float64 `yaml:"touch_grace_seconds"`
}

type ProjectileSpec struct {
	Speed    float64 `yaml:"speed"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	SpawnGap float64 `yaml:"spawn_gap"`
}

type ScoringSpec struct {
	Coin           int `yaml:"coin"`
	ProjectileKill int `yaml:"projectile_kill"`
}

type EnemySpec struct {
	PatrolScript string `yaml:"patrol_script"`
}

// Tuning holds every gameplay constant that is not part of the level layout.
type Tuning struct {
	Physics    PhysicsSpec    `yaml:"physics"`
	Combat     CombatSpec     `yaml:"combat"`
	Projectile ProjectileSpec `yaml:"projectile"`
	Scoring    ScoringSpec    `yaml:"scoring"`
	Enemy      EnemySpec      `yaml:"enemy"`
}

// DefaultTuning mirrors the embedded tuning.yaml.
func DefaultTuning() *Tuning {
	return &Tuning{
		Physics:    PhysicsSpec{Gravity: 0.8, MaxFallSpeed: 20},
		Combat:     CombatSpec{StompThreshold: 20, BounceVelocity: 8},
		Projectile: ProjectileSpec{Speed: 10, Width: 10, Height: 10, SpawnGap: 5},
		Scoring:    ScoringSpec{Coin: 1, ProjectileKill: 5},
		Enemy:      EnemySpec{PatrolScript: "patrol.tengo"},
	}
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTuning reads tuning from path, or from the tuning prefab when path is
// empty, and validates it.
func LoadTuning(path string) (*Tuning, error) {
	var (
		t   Tuning
		err error
	)
	if path == "" {
		t, err = LoadSpec[Tuning](TuningFile)
		if err != nil {
			return nil, err
		}
	} else {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, fmt.Errorf("prefabs: load %s: %w", path, rerr)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) Validate() error {
	switch {
	case t == nil:
		return fmt.Errorf("%w: nil", ErrInvalidTuning)
	case t.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be > 0, got %v", ErrInvalidTuning, t.Physics.Gravity)
	case t.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: physics.max_fall_speed must be > 0, got %v", ErrInvalidTuning, t.Physics.MaxFallSpeed)
	case t.Combat.StompThreshold <= 0:
		return fmt.Errorf("%w: combat.stomp_threshold must be > 0, got %v", ErrInvalidTuning, t.Combat.StompThreshold)
	case t.Combat.BounceVelocity < 0:
		return fmt.Errorf("%w: combat.bounce_velocity must be >= 0, got %v", ErrInvalidTuning, t.Combat.BounceVelocity)
	case t.Combat.TouchGraceSeconds < 0:
		return fmt.Errorf("%w: combat.touch_grace_seconds must be >= 0, got %v", ErrInvalidTuning, t.Combat.TouchGraceSeconds)
	case t.Projectile.Speed <= 0 || t.Projectile.Width <= 0 || t.Projectile.Height <= 0:
		return fmt.Errorf("%w: projectile speed and size must be > 0", ErrInvalidTuning)
	case t.Scoring.Coin < 0 || t.Scoring.ProjectileKill < 0:
		return fmt.Errorf("%w: scoring values must be >= 0", ErrInvalidTuning)
	case t.Enemy.PatrolScript == "":
		return fmt.Errorf("%w: enemy.patrol_script is empty", ErrInvalidTuning)
	}
	return nil
}
