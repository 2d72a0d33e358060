package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/prefabs"
)

// EnemyPatrolSystem runs each enemy's patrol script once per frame. Scripts
// are compiled once per path and shared between enemies. An enemy whose
// script cannot be loaded or run falls back to Enemy.Step so it never
// freezes in place.
type EnemyPatrolSystem struct {
	scripts map[string]*tengo.Compiled
	failed  map[string]bool
}

func NewEnemyPatrolSystem() *EnemyPatrolSystem {
	return &EnemyPatrolSystem{
		scripts: make(map[string]*tengo.Compiled),
		failed:  make(map[string]bool),
	}
}

// Prepare compiles the script at path so load errors surface at startup.
func (s *EnemyPatrolSystem) Prepare(path string) error {
	_, err := s.compiled(path)
	return err
}

// Invalidate drops every compiled script; the next frame recompiles from
// disk or the embedded copy.
func (s *EnemyPatrolSystem) Invalidate() {
	clear(s.scripts)
	clear(s.failed)
}

func (s *EnemyPatrolSystem) compiled(path string) (*tengo.Compiled, error) {
	if c, ok := s.scripts[path]; ok {
		return c, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for _, name := range []string{"x", "width", "vx", "left_bound", "right_bound"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("ai: %s: add %s: %w", path, name, err)
		}
	}
	for _, name := range []string{"has_left", "has_right"} {
		if err := script.Add(name, false); err != nil {
			return nil, fmt.Errorf("ai: %s: add %s: %w", path, name, err)
		}
	}

	c, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile %s: %w", path, err)
	}
	s.scripts[path] = c
	return c, nil
}

func (s *EnemyPatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.EnemyComponent, component.TransformComponent, component.VelocityComponent,
		func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, v *component.Velocity) {
			c, ok := ecs.Get(w, e, component.ColliderComponent)
			if !ok {
				return
			}
			patrol, ok := ecs.Get(w, e, component.PatrolComponent)
			if !ok || patrol.ScriptPath == "" {
				t.X, v.X = enemy.Step(t.X, c.Width, v.X)
				return
			}

			x, vx, err := s.run(patrol.ScriptPath, enemy, t.X, c.Width, v.X)
			if err != nil {
				if !s.failed[patrol.ScriptPath] {
					log.Printf("ai: entity=%d script=%s: %v", e, patrol.ScriptPath, err)
					s.failed[patrol.ScriptPath] = true
				}
				x, vx = enemy.Step(t.X, c.Width, v.X)
			}
			t.X, v.X = x, vx
		})
}

func (s *EnemyPatrolSystem) run(path string, enemy *component.Enemy, x, width, vx float64) (float64, float64, error) {
	if s.failed[path] {
		return 0, 0, fmt.Errorf("ai: %s disabled after an earlier failure", path)
	}
	c, err := s.compiled(path)
	if err != nil {
		return 0, 0, err
	}

	inputs := map[string]any{
		"x":           x,
		"width":       width,
		"vx":          vx,
		"left_bound":  enemy.LeftBound,
		"right_bound": enemy.RightBound,
		"has_left":    enemy.HasLeftBound,
		"has_right":   enemy.HasRightBound,
	}
	for name, value := range inputs {
		if err := c.Set(name, value); err != nil {
			return 0, 0, fmt.Errorf("set %s: %w", name, err)
		}
	}
	if err := c.Run(); err != nil {
		return 0, 0, err
	}
	return c.Get("x").Float(), c.Get("vx").Float(), nil
}
