package system

import (
	"log"

	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/ecs/entity"
	"github.com/milk9111/miniplatformer/levels"
	"github.com/milk9111/miniplatformer/prefabs"
)

// RespawnSystem handles a pending death: every resettable entity is thrown
// away and rebuilt from the level's spawn tables, and the score goes back
// to zero. Platforms and shots in flight are left alone.
type RespawnSystem struct {
	level  *levels.Level
	tuning *prefabs.Tuning
}

func NewRespawnSystem(level *levels.Level, tuning *prefabs.Tuning) *RespawnSystem {
	return &RespawnSystem{level: level, tuning: tuning}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var reason string
	var dead ecs.Entity
	found := false
	ecs.ForEach(w, component.DeathRequestComponent, func(e ecs.Entity, req *component.DeathRequest) {
		if !found {
			dead, reason, found = e, req.Reason, true
		}
	})
	if !found {
		return
	}

	push(w, ecs.EventPlayerDied, dead, reason)
	ecs.DestroyAll(w, ecs.Query(w, component.ResetOnDeathComponent))
	setScore(w, 0)

	if err := entity.SpawnActors(w, s.level, s.tuning); err != nil {
		log.Printf("respawn: %v", err)
		return
	}
	if e, ok := ecs.First(w, component.PlayerTagComponent); ok {
		push(w, ecs.EventPlayerRespawned, e, nil)
	}
}
