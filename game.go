package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/system"
	"github.com/milk9111/miniplatformer/levels"
	"github.com/milk9111/miniplatformer/prefabs"
)

type Game struct {
	sim        *system.Simulation
	render     *system.RenderSystem
	hud        *HUD
	watcher    *prefabs.Watcher
	tuningPath string
	debug      bool
}

func NewGame(tuningPath string, debug, watch bool) (*Game, error) {
	tuning, err := prefabs.LoadTuning(tuningPath)
	if err != nil {
		return nil, err
	}

	sim, err := system.NewSimulation(levels.Default(), tuning, system.NewEbitenKeys(), system.FixedDelta(common.TargetTPS))
	if err != nil {
		return nil, err
	}

	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}

	g := &Game{
		sim:        sim,
		render:     system.NewRenderSystem(),
		hud:        hud,
		tuningPath: tuningPath,
		debug:      debug,
	}

	if watch {
		dirs := []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")}
		if tuningPath != "" {
			dirs = append(dirs, filepath.Dir(tuningPath))
		}
		w, err := prefabs.NewWatcher(dedupe(dirs)...)
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func dedupe(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := dirs[:0]
	for _, d := range dirs {
		d = filepath.Clean(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func (g *Game) Update() error {
	g.reload()

	events := g.sim.Step()
	if g.debug {
		for _, evt := range events {
			logEvent(evt)
		}
	}

	if g.sim.Quit() {
		return ebiten.Termination
	}

	g.hud.SetScore(g.sim.Score())
	g.hud.Update()
	return nil
}

func logEvent(evt ecs.Event) {
	if evt.Data != nil {
		log.Printf("game: %s entity=%s %v", evt.Type, evt.Entity, evt.Data)
		return
	}
	log.Printf("game: %s entity=%s", evt.Type, evt.Entity)
}

// reload applies prefab changes picked up by the watcher since last frame.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	for _, path := range g.watcher.Poll() {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".tengo":
			g.sim.Patrol.Invalidate()
			log.Printf("prefabs: reloaded script %s", path)
		case ".yaml", ".yml":
			if g.tuningPath != "" && filepath.Clean(path) != filepath.Clean(g.tuningPath) {
				continue
			}
			if g.tuningPath == "" && filepath.Base(path) != prefabs.TuningFile {
				continue
			}
			tuning, err := prefabs.LoadTuning(g.tuningPath)
			if err != nil {
				log.Printf("prefabs: reload %s: %v", path, err)
				continue
			}
			if err := g.sim.SetTuning(tuning); err != nil {
				log.Printf("prefabs: reload %s: %v", path, err)
				continue
			}
			log.Printf("prefabs: reloaded tuning %s", path)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.sim.World, screen)
	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.2f", ebiten.ActualTPS()), common.BaseWidth-90, 4)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops the prefab watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
