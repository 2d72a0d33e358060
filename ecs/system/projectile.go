package system

import (
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/prefabs"
)

// ProjectileSystem flies every shot, drops shots that left the playfield
// and resolves hits. A shot kills the first live enemy it overlaps, in
// enemy creation order, and both disappear. Removal waits until every shot
// has moved so an enemy can only be killed once.
type ProjectileSystem struct {
	tuning *prefabs.Tuning
	width  float64
}

func NewProjectileSystem(tuning *prefabs.Tuning, width float64) *ProjectileSystem {
	return &ProjectileSystem{tuning: tuning, width: width}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	enemies := ecs.Query(w, component.EnemyComponent)
	killed := make(map[ecs.Entity]bool)
	var doomed []ecs.Entity

	ecs.ForEach3(w, component.ProjectileComponent, component.TransformComponent, component.VelocityComponent,
		func(e ecs.Entity, shot *component.Projectile, t *component.Transform, v *component.Velocity) {
			t.X += v.X
			t.Y += v.Y

			r, ok := entityBounds(w, e)
			if !ok {
				return
			}
			if r.Right() < 0 || r.Left() > s.width {
				doomed = append(doomed, e)
				return
			}

			for _, en := range enemies {
				if killed[en] {
					continue
				}
				er, ok := entityBounds(w, en)
				if !ok || !r.Intersects(er) {
					continue
				}
				killed[en] = true
				doomed = append(doomed, e, en)
				addScore(w, s.tuning.Scoring.ProjectileKill)
				push(w, ecs.EventEnemyShot, en, shot.Kind)
				break
			}
		})

	ecs.DestroyAll(w, doomed)
}
