package system

import "github.com/milk9111/miniplatformer/ecs"

// ClockSystem advances the world clock by one frame. Delta is asked for
// every frame so the rate can follow the game loop's tick rate.
type ClockSystem struct {
	delta func() float64
}

func NewClockSystem(delta func() float64) *ClockSystem {
	return &ClockSystem{delta: delta}
}

// FixedDelta returns a delta source for a constant tick rate.
func FixedDelta(tps int) func() float64 {
	dt := 0.0
	if tps > 0 {
		dt = 1 / float64(tps)
	}
	return func() float64 { return dt }
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil || s.delta == nil {
		return
	}
	if c := worldClock(w); c != nil {
		c.Advance(s.delta())
	}
}
