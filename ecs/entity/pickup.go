package entity

import (
	"fmt"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/levels"
)

func NewCoin(w *ecs.World, r common.Rect) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addBox(w, e, "coin", r, common.ColorCoin, component.LayerCoin); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.CoinComponent, &component.Coin{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("coin: add coin: %w", err)
	}
	if err := ecs.Add(w, e, component.ResetOnDeathComponent, &component.ResetOnDeath{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("coin: add reset tag: %w", err)
	}
	return e, nil
}

func NewItem(w *ecs.World, spawn levels.ItemSpawn) (ecs.Entity, error) {
	if _, ok := spawn.Kind.Effect(); !ok {
		return 0, fmt.Errorf("item: %w: %v", component.ErrUnknownPower, spawn.Kind)
	}
	e := ecs.CreateEntity(w)
	if err := addBox(w, e, "item", spawn.Rect, ItemColor(spawn.Kind), component.LayerItem); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.ItemComponent, &component.Item{Kind: spawn.Kind, Duration: spawn.Duration}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("item: add item: %w", err)
	}
	if err := ecs.Add(w, e, component.ResetOnDeathComponent, &component.ResetOnDeath{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("item: add reset tag: %w", err)
	}
	return e, nil
}
