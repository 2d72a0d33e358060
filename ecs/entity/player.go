package entity

import (
	"fmt"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/levels"
)

// NewPlayer spawns a fresh player with no power and cleared timers.
func NewPlayer(w *ecs.World, spawn levels.PlayerSpawn) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := buildPlayer(w, e, spawn); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

func buildPlayer(w *ecs.World, e ecs.Entity, spawn levels.PlayerSpawn) error {
	if err := addBox(w, e, "player", spawn.Rect, common.ColorPlayer, component.LayerPlayer); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent, component.NewPlayer(spawn.Speed, spawn.JumpPower)); err != nil {
		return fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.PowerComponent, &component.Power{}); err != nil {
		return fmt.Errorf("player: add power: %w", err)
	}
	if err := ecs.Add(w, e, component.InvulnerableComponent, &component.Invulnerable{}); err != nil {
		return fmt.Errorf("player: add invulnerable: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{}); err != nil {
		return fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.ResetOnDeathComponent, &component.ResetOnDeath{}); err != nil {
		return fmt.Errorf("player: add reset tag: %w", err)
	}
	return nil
}
