package system

import (
	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
)

// playerRefs bundles the player's components for systems that touch most of
// them.
type playerRefs struct {
	entity    ecs.Entity
	player    *component.Player
	power     *component.Power
	inv       *component.Invulnerable
	transform *component.Transform
	collider  *component.Collider
	velocity  *component.Velocity
}

func findPlayer(w *ecs.World) (playerRefs, bool) {
	var refs playerRefs
	e, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return refs, false
	}
	refs.entity = e
	if refs.player, ok = ecs.Get(w, e, component.PlayerComponent); !ok {
		return refs, false
	}
	if refs.power, ok = ecs.Get(w, e, component.PowerComponent); !ok {
		return refs, false
	}
	if refs.inv, ok = ecs.Get(w, e, component.InvulnerableComponent); !ok {
		return refs, false
	}
	if refs.transform, ok = ecs.Get(w, e, component.TransformComponent); !ok {
		return refs, false
	}
	if refs.collider, ok = ecs.Get(w, e, component.ColliderComponent); !ok {
		return refs, false
	}
	if refs.velocity, ok = ecs.Get(w, e, component.VelocityComponent); !ok {
		return refs, false
	}
	return refs, true
}

func (p playerRefs) bounds() common.Rect {
	return component.Bounds(p.transform, p.collider)
}

// entityBounds returns the world rectangle of e, if it has one.
func entityBounds(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return common.Rect{}, false
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent)
	if !ok {
		return common.Rect{}, false
	}
	return component.Bounds(t, c), true
}

// Score returns the current score, or 0 when the world has no counter.
func Score(w *ecs.World) int {
	e, ok := ecs.First(w, component.ScoreComponent)
	if !ok {
		return 0
	}
	s, ok := ecs.Get(w, e, component.ScoreComponent)
	if !ok {
		return 0
	}
	return s.Value
}

func addScore(w *ecs.World, n int) {
	e, ok := ecs.First(w, component.ScoreComponent)
	if !ok {
		return
	}
	if s, ok := ecs.Get(w, e, component.ScoreComponent); ok {
		s.Value += n
	}
}

func setScore(w *ecs.World, n int) {
	e, ok := ecs.First(w, component.ScoreComponent)
	if !ok {
		return
	}
	if s, ok := ecs.Get(w, e, component.ScoreComponent); ok {
		s.Value = n
	}
}

func worldClock(w *ecs.World) *component.Clock {
	e, ok := ecs.First(w, component.ClockComponent)
	if !ok {
		return nil
	}
	c, _ := ecs.Get(w, e, component.ClockComponent)
	return c
}

func push(w *ecs.World, t ecs.EventType, e ecs.Entity, data any) {
	w.Events().Push(ecs.Event{Type: t, Entity: e, Data: data})
}
