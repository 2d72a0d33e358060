package entity

import (
	"fmt"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
)

func NewPlatform(w *ecs.World, r common.Rect) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addBox(w, e, "platform", r, common.ColorPlatform, component.LayerPlatform); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlatformComponent, &component.Platform{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	return e, nil
}
