package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/prefabs"
)

// NewProjectile spawns a shot just ahead of shooter in the facing direction.
// The shot's top-left corner sits at the shooter's vertical center.
func NewProjectile(w *ecs.World, shooter common.Rect, facing component.Facing, kind component.PowerKind, tuning *prefabs.Tuning) (ecs.Entity, error) {
	if !kind.Shoots() {
		return 0, fmt.Errorf("projectile: power %v cannot shoot", kind)
	}

	spec := tuning.Projectile
	dir := cp.Vector{X: facing.Sign()}
	center := cp.Vector{X: shooter.CenterX(), Y: shooter.CenterY()}
	origin := center.Add(dir.Mult(shooter.Width/2 + spec.SpawnGap))

	e := ecs.CreateEntity(w)
	r := common.Rect{X: origin.X, Y: origin.Y, Width: spec.Width, Height: spec.Height}
	if err := addBox(w, e, "projectile", r, ProjectileColor(kind), component.LayerProjectile); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{Kind: kind}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{Vector: dir.Mult(spec.Speed)}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: add velocity: %w", err)
	}
	return e, nil
}
