package system

import (
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
)

// FallDeathSystem kills the player once its top edge drops below the
// bottom of the playfield.
type FallDeathSystem struct {
	height float64
}

func NewFallDeathSystem(height float64) *FallDeathSystem {
	return &FallDeathSystem{height: height}
}

func (s *FallDeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	if pr.bounds().Top() > s.height {
		killPlayer(w, pr.entity, component.DeathReasonFall)
	}
}
