package entity

import (
	"fmt"

	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
)

// NewScore creates the score counter singleton.
func NewScore(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScoreComponent, &component.Score{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("score: add score: %w", err)
	}
	return e, nil
}

// NewClock creates the frame clock singleton.
func NewClock(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ClockComponent, &component.Clock{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("clock: add clock: %w", err)
	}
	return e, nil
}
