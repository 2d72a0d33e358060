package system

import (
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/prefabs"
)

// CoinPickupSystem removes every coin the player overlaps and scores it.
type CoinPickupSystem struct {
	tuning *prefabs.Tuning
}

func NewCoinPickupSystem(tuning *prefabs.Tuning) *CoinPickupSystem {
	return &CoinPickupSystem{tuning: tuning}
}

func (s *CoinPickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	body := pr.bounds()

	var taken []ecs.Entity
	ecs.ForEach(w, component.CoinComponent, func(e ecs.Entity, _ *component.Coin) {
		r, ok := entityBounds(w, e)
		if !ok || !body.Intersects(r) {
			return
		}
		taken = append(taken, e)
		addScore(w, s.tuning.Scoring.Coin)
		push(w, ecs.EventCoinCollected, e, nil)
	})
	ecs.DestroyAll(w, taken)
}
