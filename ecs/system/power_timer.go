package system

import "github.com/milk9111/miniplatformer/ecs"

// PowerTimerSystem counts down the active power and the touch grace timer
// using the frame clock.
type PowerTimerSystem struct{}

func NewPowerTimerSystem() *PowerTimerSystem { return &PowerTimerSystem{} }

func (s *PowerTimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	clock := worldClock(w)
	if clock == nil {
		return
	}

	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	kind := pr.power.Kind
	if pr.power.Tick(pr.player, pr.inv, clock.Delta) {
		push(w, ecs.EventPowerExpired, pr.entity, kind)
	}
}
