package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
)

// addBox gives e a position, a collider and a flat-colored sprite on layer.
func addBox(w *ecs.World, e ecs.Entity, label string, r common.Rect, c color.RGBA, layer int) error {
	if !r.Valid() {
		return fmt.Errorf("%s: invalid size %vx%v", label, r.Width, r.Height)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return fmt.Errorf("%s: add transform: %w", label, err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent, &component.Collider{Width: r.Width, Height: r.Height}); err != nil {
		return fmt.Errorf("%s: add collider: %w", label, err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Color: c}); err != nil {
		return fmt.Errorf("%s: add sprite: %w", label, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("%s: add render layer: %w", label, err)
	}
	return nil
}

// ItemColor is the pickup color for a power.
func ItemColor(kind component.PowerKind) color.RGBA {
	switch kind {
	case component.PowerFire:
		return common.ColorFire
	case component.PowerIce:
		return common.ColorIce
	case component.PowerJump:
		return common.ColorGold
	case component.PowerSlippery:
		return common.ColorSlippery
	case component.PowerInvincible:
		return common.ColorInvincible
	}
	return color.RGBA{R: 200, G: 200, B: 200, A: 255}
}

// ProjectileColor is the color of a shot fired with kind.
func ProjectileColor(kind component.PowerKind) color.RGBA {
	if kind == component.PowerFire {
		return common.ColorFire
	}
	return common.ColorIce
}
