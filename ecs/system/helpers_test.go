package system

import (
	"math"
	"testing"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/levels"
	"github.com/milk9111/miniplatformer/prefabs"
)

// flatLevel is a floor with the player standing on it and nothing else.
func flatLevel() *levels.Level {
	return &levels.Level{
		Name:      "test",
		Width:     common.BaseWidth,
		Height:    common.BaseHeight,
		Platforms: []common.Rect{{X: 0, Y: 560, Width: 900, Height: 40}},
		Player: levels.PlayerSpawn{
			Rect:      common.Rect{X: 50, Y: 510, Width: 40, Height: 50},
			Speed:     5,
			JumpPower: 14,
		},
	}
}

func newSim(t *testing.T, lvl *levels.Level, tuning *prefabs.Tuning) *Simulation {
	t.Helper()
	sim, err := NewSimulation(lvl, tuning, KeyState{}, FixedDelta(common.TargetTPS))
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

func step(sim *Simulation, keys KeyState) []ecs.Event {
	sim.Input.SetSource(keys)
	return sim.Step()
}

func mustPlayer(t *testing.T, w *ecs.World) playerRefs {
	t.Helper()
	pr, ok := findPlayer(w)
	if !ok {
		t.Fatal("player not found")
	}
	return pr
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
