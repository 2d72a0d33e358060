package system

import (
	"log"

	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/ecs/entity"
	"github.com/milk9111/miniplatformer/prefabs"
)

// PlayerControllerSystem turns the input snapshot into player intent: a
// shot on the frame fire goes down, then horizontal speed, facing and
// jumps.
type PlayerControllerSystem struct {
	tuning *prefabs.Tuning
}

func NewPlayerControllerSystem(tuning *prefabs.Tuning) *PlayerControllerSystem {
	return &PlayerControllerSystem{tuning: tuning}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	in, ok := ecs.Get(w, pr.entity, component.InputComponent)
	if !ok {
		return
	}

	if in.FirePressed && pr.power.Kind.Shoots() {
		shot, err := entity.NewProjectile(w, pr.bounds(), pr.player.Facing, pr.power.Kind, s.tuning)
		if err != nil {
			log.Printf("player: fire: %v", err)
		} else {
			push(w, ecs.EventProjectileFired, shot, pr.power.Kind)
		}
	}

	pr.player.HandleInput(in, pr.velocity)
}
