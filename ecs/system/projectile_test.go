package system

import (
	"testing"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/ecs/entity"
	"github.com/milk9111/miniplatformer/levels"
	"github.com/milk9111/miniplatformer/prefabs"
)

func armedSim(t *testing.T, lvl *levels.Level, kind component.PowerKind) *Simulation {
	t.Helper()
	sim := newSim(t, lvl, nil)
	pr := mustPlayer(t, sim.World)
	if err := pr.power.Apply(pr.player, kind, 8); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return sim
}

func TestFireNeedsShootingPower(t *testing.T) {
	tests := []struct {
		name  string
		kind  component.PowerKind
		shots int
	}{
		{"none", component.PowerNone, 0},
		{"fire", component.PowerFire, 1},
		{"ice", component.PowerIce, 1},
		{"jump", component.PowerJump, 0},
		{"slippery", component.PowerSlippery, 0},
		{"invincible", component.PowerInvincible, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := newSim(t, flatLevel(), nil)
			if tc.kind != component.PowerNone {
				pr := mustPlayer(t, sim.World)
				_ = pr.power.Apply(pr.player, tc.kind, 8)
			}
			events := step(sim, KeyState{ActionFire: true})
			if n := ecs.Count(sim.World, component.ProjectileComponent); n != tc.shots {
				t.Fatalf("projectiles=%d, want %d", n, tc.shots)
			}
			if countEvents(events, ecs.EventProjectileFired) != tc.shots {
				t.Fatalf("events %+v", events)
			}
		})
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	sim := armedSim(t, flatLevel(), component.PowerFire)
	step(sim, KeyState{ActionFire: true})
	step(sim, KeyState{ActionFire: true})
	step(sim, KeyState{ActionFire: true})
	if n := ecs.Count(sim.World, component.ProjectileComponent); n != 1 {
		t.Fatalf("projectiles=%d while holding fire, want 1", n)
	}
	step(sim, KeyState{})
	step(sim, KeyState{ActionFire: true})
	if n := ecs.Count(sim.World, component.ProjectileComponent); n != 2 {
		t.Fatalf("projectiles=%d after a second press, want 2", n)
	}
}

func TestProjectileFliesInFacingDirection(t *testing.T) {
	sim := armedSim(t, flatLevel(), component.PowerIce)
	step(sim, KeyState{ActionMoveLeft: true})
	step(sim, KeyState{ActionFire: true})

	shot, ok := ecs.First(sim.World, component.ProjectileComponent)
	if !ok {
		t.Fatal("no projectile")
	}
	proj, _ := ecs.Get(sim.World, shot, component.ProjectileComponent)
	v, _ := ecs.Get(sim.World, shot, component.VelocityComponent)
	if proj.Kind != component.PowerIce || v.X != -10 || v.Y != 0 {
		t.Fatalf("kind=%v velocity=%+v", proj.Kind, v.Vector)
	}

	// Top-left starts at center(65) - half width(20) - gap(5), then moves
	// once at -10.
	r, _ := entityBounds(sim.World, shot)
	if r.X != 30 || r.Y != 535 {
		t.Fatalf("projectile at %v,%v", r.X, r.Y)
	}
}

func TestProjectileKillsFirstEnemyOnly(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []levels.EnemySpawn{
		{Rect: common.Rect{X: 110, Y: 530, Width: 40, Height: 40}},
		{Rect: common.Rect{X: 112, Y: 530, Width: 40, Height: 40}},
	}
	sim := armedSim(t, lvl, component.PowerFire)
	first := ecs.Query(sim.World, component.EnemyComponent)[0]

	events := step(sim, KeyState{ActionFire: true})
	if Score(sim.World) != 5 {
		t.Fatalf("score=%d, want 5", Score(sim.World))
	}
	if ecs.IsAlive(sim.World, first) {
		t.Fatal("first enemy in creation order survived")
	}
	if n := ecs.Count(sim.World, component.EnemyComponent); n != 1 {
		t.Fatalf("enemies=%d, want 1", n)
	}
	if n := ecs.Count(sim.World, component.ProjectileComponent); n != 0 {
		t.Fatalf("projectiles=%d, want 0", n)
	}
	if countEvents(events, ecs.EventEnemyShot) != 1 {
		t.Fatalf("events %+v", events)
	}
}

func TestTwoProjectilesCannotKillOneEnemyTwice(t *testing.T) {
	w := ecs.NewWorld()
	tuning := prefabs.DefaultTuning()
	if _, err := entity.NewScore(w); err != nil {
		t.Fatal(err)
	}
	if _, err := entity.NewEnemy(w, levels.EnemySpawn{Rect: common.Rect{X: 100, Y: 100, Width: 40, Height: 40}}, tuning); err != nil {
		t.Fatal(err)
	}
	shooter := common.Rect{X: 50, Y: 90, Width: 40, Height: 50}
	for i := 0; i < 2; i++ {
		if _, err := entity.NewProjectile(w, shooter, component.FacingRight, component.PowerFire, tuning); err != nil {
			t.Fatal(err)
		}
	}

	NewProjectileSystem(tuning, common.BaseWidth).Update(w)
	if Score(w) != 5 {
		t.Fatalf("score=%d, want a single kill", Score(w))
	}
	if n := ecs.Count(w, component.ProjectileComponent); n != 1 {
		t.Fatalf("projectiles=%d, want the second shot still flying", n)
	}
}

func TestProjectileLeavesPlayfield(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		facing component.Facing
		alive  bool
	}{
		{"right edge, still inside", 880, component.FacingRight, true},
		{"past right edge", 895, component.FacingRight, false},
		{"left edge, partly inside", 5, component.FacingLeft, true},
		{"past left edge", -1, component.FacingLeft, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			tuning := prefabs.DefaultTuning()
			e, err := entity.NewProjectile(w, common.Rect{Width: 40, Height: 50}, tc.facing, component.PowerFire, tuning)
			if err != nil {
				t.Fatal(err)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			tr.X = tc.x

			NewProjectileSystem(tuning, common.BaseWidth).Update(w)
			if got := ecs.IsAlive(w, e); got != tc.alive {
				t.Fatalf("alive=%v, want %v", got, tc.alive)
			}
		})
	}
}
