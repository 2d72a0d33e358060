package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/prefabs"
)

// PhysicsSystem moves the player one axis at a time and pushes it out of
// platforms along the axis it just moved on. Horizontal movement is
// resolved before gravity is applied.
type PhysicsSystem struct {
	tuning    *prefabs.Tuning
	platforms []common.Rect
}

func NewPhysicsSystem(tuning *prefabs.Tuning) *PhysicsSystem {
	return &PhysicsSystem{tuning: tuning}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.platforms = s.platforms[:0]
	ecs.ForEach(w, component.PlatformComponent, func(e ecs.Entity, _ *component.Platform) {
		if r, ok := entityBounds(w, e); ok {
			s.platforms = append(s.platforms, r)
		}
	})

	ecs.ForEach3(w, component.PlayerComponent, component.TransformComponent, component.VelocityComponent,
		func(e ecs.Entity, p *component.Player, t *component.Transform, v *component.Velocity) {
			c, ok := ecs.Get(w, e, component.ColliderComponent)
			if !ok {
				return
			}

			t.X += v.X
			s.collide(p, t, c, v, v.X, 0)

			v.Vector = v.Add(cp.Vector{Y: s.tuning.Physics.Gravity})
			v.Y = math.Min(v.Y, s.tuning.Physics.MaxFallSpeed)
			t.Y += v.Y
			p.OnGround = false
			s.collide(p, t, c, v, 0, v.Y)
		})
}

func (s *PhysicsSystem) collide(p *component.Player, t *component.Transform, c *component.Collider, v *component.Velocity, dx, dy float64) {
	for _, plat := range s.platforms {
		if !component.Bounds(t, c).Intersects(plat) {
			continue
		}
		switch {
		case dx > 0:
			component.SetRight(t, c, plat.Left())
		case dx < 0:
			t.X = plat.Right()
		}
		switch {
		case dy > 0:
			component.SetBottom(t, c, plat.Top())
			v.Y = 0
			p.OnGround = true
		case dy < 0:
			t.Y = plat.Bottom()
			v.Y = 0
		}
	}
}
