package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/levels"
	"github.com/milk9111/miniplatformer/prefabs"
)

// NewEnemy spawns a patrolling enemy driven by the tuning's patrol script.
func NewEnemy(w *ecs.World, spawn levels.EnemySpawn, tuning *prefabs.Tuning) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := buildEnemy(w, e, spawn, tuning); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

func buildEnemy(w *ecs.World, e ecs.Entity, spawn levels.EnemySpawn, tuning *prefabs.Tuning) error {
	if err := addBox(w, e, "enemy", spawn.Rect, common.ColorEnemy, component.LayerEnemy); err != nil {
		return err
	}

	enemy := &component.Enemy{}
	if spawn.LeftBound != nil {
		enemy.LeftBound = *spawn.LeftBound
		enemy.HasLeftBound = true
	}
	if spawn.RightBound != nil {
		enemy.RightBound = *spawn.RightBound
		enemy.HasRightBound = true
	}
	if err := ecs.Add(w, e, component.EnemyComponent, enemy); err != nil {
		return fmt.Errorf("enemy: add enemy: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{Vector: cp.Vector{X: spawn.VelocityX}}); err != nil {
		return fmt.Errorf("enemy: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.PatrolComponent, &component.Patrol{ScriptPath: tuning.Enemy.PatrolScript}); err != nil {
		return fmt.Errorf("enemy: add patrol: %w", err)
	}
	if err := ecs.Add(w, e, component.ResetOnDeathComponent, &component.ResetOnDeath{}); err != nil {
		return fmt.Errorf("enemy: add reset tag: %w", err)
	}
	return nil
}
