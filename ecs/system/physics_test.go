package system

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/levels"
)

func TestPlayerRestsOnGround(t *testing.T) {
	sim := newSim(t, flatLevel(), nil)
	for i := 0; i < 3; i++ {
		step(sim, KeyState{})
	}
	pr := mustPlayer(t, sim.World)
	if pr.transform.Y != 510 || pr.velocity.Y != 0 || !pr.player.OnGround {
		t.Fatalf("y=%v vy=%v onGround=%v", pr.transform.Y, pr.velocity.Y, pr.player.OnGround)
	}
}

func TestHorizontalMovement(t *testing.T) {
	tests := []struct {
		name       string
		keys       KeyState
		wantX      float64
		wantFacing component.Facing
	}{
		{"idle", KeyState{}, 50, component.FacingRight},
		{"right", KeyState{ActionMoveRight: true}, 55, component.FacingRight},
		{"left", KeyState{ActionMoveLeft: true}, 45, component.FacingLeft},
		{"both, right wins", KeyState{ActionMoveLeft: true, ActionMoveRight: true}, 55, component.FacingRight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := newSim(t, flatLevel(), nil)
			step(sim, tc.keys)
			pr := mustPlayer(t, sim.World)
			if pr.transform.X != tc.wantX {
				t.Fatalf("x=%v, want %v", pr.transform.X, tc.wantX)
			}
			if pr.player.Facing != tc.wantFacing {
				t.Fatalf("facing=%v, want %v", pr.player.Facing, tc.wantFacing)
			}
		})
	}
}

func TestFacingKeptWhenIdle(t *testing.T) {
	sim := newSim(t, flatLevel(), nil)
	step(sim, KeyState{ActionMoveLeft: true})
	step(sim, KeyState{})
	if got := mustPlayer(t, sim.World).player.Facing; got != component.FacingLeft {
		t.Fatalf("facing=%v after idle frame, want left", got)
	}
}

func TestJump(t *testing.T) {
	sim := newSim(t, flatLevel(), nil)
	step(sim, KeyState{})
	step(sim, KeyState{ActionJump: true})

	pr := mustPlayer(t, sim.World)
	if !approx(pr.velocity.Y, -14+0.8) {
		t.Fatalf("vy=%v, want %v", pr.velocity.Y, -14+0.8)
	}
	if !approx(pr.transform.Y, 510-13.2) {
		t.Fatalf("y=%v", pr.transform.Y)
	}
	if pr.player.OnGround {
		t.Fatal("still on ground after jump")
	}

	// No double jump while airborne.
	vy := pr.velocity.Y
	step(sim, KeyState{ActionJump: true})
	if !approx(pr.velocity.Y, vy+0.8) {
		t.Fatalf("airborne jump changed vy to %v", pr.velocity.Y)
	}
}

func TestWallStopsHorizontalMove(t *testing.T) {
	lvl := flatLevel()
	lvl.Platforms = append(lvl.Platforms, common.Rect{X: 100, Y: 400, Width: 20, Height: 160})
	lvl.Player.Rect.X = 58
	sim := newSim(t, lvl, nil)

	step(sim, KeyState{ActionMoveRight: true})
	pr := mustPlayer(t, sim.World)
	if pr.transform.X != 60 {
		t.Fatalf("x=%v, want flush against wall at 60", pr.transform.X)
	}
	if !pr.player.OnGround {
		t.Fatal("wall contact cleared ground contact")
	}

	lvl = flatLevel()
	lvl.Platforms = append(lvl.Platforms, common.Rect{X: 0, Y: 400, Width: 40, Height: 160})
	lvl.Player.Rect.X = 42
	sim = newSim(t, lvl, nil)
	step(sim, KeyState{ActionMoveLeft: true})
	if x := mustPlayer(t, sim.World).transform.X; x != 40 {
		t.Fatalf("x=%v, want flush against wall at 40", x)
	}
}

func TestCeilingStopsJump(t *testing.T) {
	lvl := flatLevel()
	lvl.Platforms = append(lvl.Platforms, common.Rect{X: 0, Y: 490, Width: 300, Height: 10})
	sim := newSim(t, lvl, nil)

	step(sim, KeyState{})
	step(sim, KeyState{ActionJump: true})
	pr := mustPlayer(t, sim.World)
	if pr.transform.Y != 500 || pr.velocity.Y != 0 {
		t.Fatalf("y=%v vy=%v, want 500 and 0", pr.transform.Y, pr.velocity.Y)
	}
}

func TestFallSpeedIsCapped(t *testing.T) {
	lvl := flatLevel()
	lvl.Platforms = nil
	lvl.Player.Rect.Y = -2000
	sim := newSim(t, lvl, nil)
	for i := 0; i < 60; i++ {
		step(sim, KeyState{})
	}
	if vy := mustPlayer(t, sim.World).velocity.Y; vy != sim.Tuning.Physics.MaxFallSpeed {
		t.Fatalf("vy=%v, want %v", vy, sim.Tuning.Physics.MaxFallSpeed)
	}
}

// randomKeys holds a random mix of the gameplay actions; quit is never held.
func randomKeys(rng *rand.Rand) KeyState {
	keys := KeyState{}
	for _, a := range []Action{ActionMoveLeft, ActionMoveRight, ActionJump, ActionFire} {
		if rng.Intn(3) == 0 {
			keys[a] = true
		}
	}
	return keys
}

func TestRandomRunKeepsInvariants(t *testing.T) {
	const frames = 3000
	// touching within rounding error is not an overlap
	const eps = 1e-9

	for _, seed := range []int64{1, 7, 12345, 2024} {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			sim := newSim(t, levels.Default(), nil)

			var platforms []common.Rect
			for _, e := range ecs.Query(sim.World, component.PlatformComponent) {
				r, ok := entityBounds(sim.World, e)
				if !ok {
					t.Fatalf("platform %s has no bounds", e)
				}
				platforms = append(platforms, common.Rect{
					X: r.X + eps, Y: r.Y + eps,
					Width: r.Width - 2*eps, Height: r.Height - 2*eps,
				})
			}

			coins := ecs.Count(sim.World, component.CoinComponent)
			var keys KeyState
			hold := 0
			for i := 0; i < frames; i++ {
				// hold each key mix for a few frames so the player gets somewhere
				if hold == 0 {
					keys, hold = randomKeys(rng), 1+rng.Intn(12)
				}
				hold--
				events := step(sim, keys)

				body := mustPlayer(t, sim.World).bounds()
				for _, plat := range platforms {
					if body.Intersects(plat) {
						t.Fatalf("frame %d: player %+v overlaps platform %+v", i, body, plat)
					}
				}

				now := ecs.Count(sim.World, component.CoinComponent)
				if now > coins && countEvents(events, ecs.EventPlayerDied) == 0 {
					t.Fatalf("frame %d: coins went %d -> %d without a death", i, coins, now)
				}
				coins = now
			}
		})
	}
}
