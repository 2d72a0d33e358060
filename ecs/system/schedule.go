package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/ecs/entity"
	"github.com/milk9111/miniplatformer/levels"
	"github.com/milk9111/miniplatformer/prefabs"
)

var ErrNoPlayer = errors.New("simulation: no player")

// Simulation is the whole game state plus the ordered systems that advance
// it by one frame.
type Simulation struct {
	World     *ecs.World
	Level     *levels.Level
	Tuning    *prefabs.Tuning
	Input     *InputSystem
	Patrol    *EnemyPatrolSystem
	Scheduler *ecs.Scheduler
}

// NewSimulation spawns lvl into a fresh world and wires the frame order:
// clock, input, player control, physics, timers, enemies, projectiles,
// coins, items, enemy contact, fall death and respawn. The tuning is copied
// so later reloads can swap it in place.
func NewSimulation(lvl *levels.Level, tuning *prefabs.Tuning, keys KeySource, delta func() float64) (*Simulation, error) {
	if tuning == nil {
		tuning = prefabs.DefaultTuning()
	}
	t := *tuning

	w := ecs.NewWorld()
	if err := entity.SpawnLevel(w, lvl, &t); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	patrol := NewEnemyPatrolSystem()
	if err := patrol.Prepare(t.Enemy.PatrolScript); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	input := NewInputSystem(keys)
	sim := &Simulation{
		World:  w,
		Level:  lvl,
		Tuning: &t,
		Input:  input,
		Patrol: patrol,
	}
	sim.Scheduler = ecs.NewScheduler(
		NewClockSystem(delta),
		input,
		NewPlayerControllerSystem(sim.Tuning),
		NewPhysicsSystem(sim.Tuning),
		NewPowerTimerSystem(),
		patrol,
		NewProjectileSystem(sim.Tuning, lvl.Width),
		NewCoinPickupSystem(sim.Tuning),
		NewItemPickupSystem(),
		NewEnemyContactSystem(sim.Tuning),
		NewFallDeathSystem(lvl.Height),
		NewRespawnSystem(lvl, sim.Tuning),
	)
	return sim, nil
}

// Step advances the simulation by one frame and returns the events it
// produced.
func (s *Simulation) Step() []ecs.Event {
	s.Scheduler.Update(s.World)
	return s.World.Events().Drain()
}

// SetTuning validates t and swaps it in for every system. Enemies spawned
// after the swap use the new patrol script.
func (s *Simulation) SetTuning(t *prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	*s.Tuning = *t
	s.Patrol.Invalidate()
	return nil
}

// GivePower applies kind to the player as if an item had been collected,
// without spawning or announcing one.
func (s *Simulation) GivePower(kind component.PowerKind, duration float64) error {
	pr, ok := findPlayer(s.World)
	if !ok {
		return ErrNoPlayer
	}
	if err := pr.power.Apply(pr.player, kind, duration); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}

// Quit reports whether the last input snapshot asked to leave.
func (s *Simulation) Quit() bool {
	return s.Input.QuitRequested()
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return Score(s.World)
}
