package system

import (
	"log"

	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
)

// ItemPickupSystem applies the power of every item the player overlaps.
// When several items are touched on one frame the last one in creation
// order wins.
type ItemPickupSystem struct{}

func NewItemPickupSystem() *ItemPickupSystem { return &ItemPickupSystem{} }

func (s *ItemPickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	body := pr.bounds()

	var taken []ecs.Entity
	ecs.ForEach(w, component.ItemComponent, func(e ecs.Entity, item *component.Item) {
		r, ok := entityBounds(w, e)
		if !ok || !body.Intersects(r) {
			return
		}
		if err := pr.power.Apply(pr.player, item.Kind, item.Duration); err != nil {
			log.Printf("pickup: entity=%d: %v", e, err)
			return
		}
		taken = append(taken, e)
		push(w, ecs.EventItemCollected, e, item.Kind)
	})
	ecs.DestroyAll(w, taken)
}
