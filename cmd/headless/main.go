package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/ecs/system"
	"github.com/milk9111/miniplatformer/levels"
	"github.com/milk9111/miniplatformer/prefabs"
)

var errBadScript = errors.New("headless: bad input script")

var actionNames = map[string]system.Action{
	"left":  system.ActionMoveLeft,
	"right": system.ActionMoveRight,
	"jump":  system.ActionJump,
	"fire":  system.ActionFire,
	"quit":  system.ActionQuit,
}

// parseScript turns "right*30,jump,right+fire*5,idle*60" into one key
// snapshot per frame.
func parseScript(s string) ([]system.KeyState, error) {
	var frames []system.KeyState
	for _, step := range strings.Split(s, ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}

		keys, count := step, 1
		if i := strings.LastIndexByte(step, '*'); i >= 0 {
			n, err := strconv.Atoi(step[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: repeat count in %q", errBadScript, step)
			}
			keys, count = step[:i], n
		}

		state := system.KeyState{}
		for _, name := range strings.Split(keys, "+") {
			name = strings.TrimSpace(name)
			if name == "idle" {
				continue
			}
			a, ok := actionNames[name]
			if !ok {
				return nil, fmt.Errorf("%w: unknown key %q", errBadScript, name)
			}
			state[a] = true
		}
		for i := 0; i < count; i++ {
			frames = append(frames, state)
		}
	}
	return frames, nil
}

func main() {
	script := flag.String("input", "right*60,jump,right*30", "comma separated key steps, e.g. right+fire*10")
	tuningPath := flag.String("tuning", "", "tuning yaml on disk")
	verbose := flag.Bool("v", false, "log every gameplay event")
	power := flag.String("power", "", "start with a power: fire, ice, jump, slippery or invincible")
	powerSeconds := flag.Float64("power-duration", 8, "seconds the -power lasts")
	flag.Parse()

	frames, err := parseScript(*script)
	if err != nil {
		log.Fatal(err)
	}
	tuning, err := prefabs.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := system.NewSimulation(levels.Default(), tuning, system.KeyState{}, system.FixedDelta(common.TargetTPS))
	if err != nil {
		log.Fatal(err)
	}

	if *power != "" {
		kind, err := component.ParsePowerKind(*power)
		if err != nil {
			log.Fatal(err)
		}
		if err := sim.GivePower(kind, *powerSeconds); err != nil {
			log.Fatal(err)
		}
	}
	if *verbose {
		for i, s := range sim.Scheduler.Systems() {
			log.Printf("system %d: %T", i, s)
		}
	}

	counts := make(map[ecs.EventType]int)
	for i, keys := range frames {
		sim.Input.SetSource(keys)
		for _, evt := range sim.Step() {
			counts[evt.Type]++
			if *verbose {
				log.Printf("frame=%d %s entity=%s %v", i, evt.Type, evt.Entity, evt.Data)
			}
		}
		if sim.Quit() {
			log.Printf("quit at frame %d", i)
			break
		}
	}

	fmt.Printf("frames=%d score=%d\n", len(frames), sim.Score())
	for _, cmd := range system.BuildDrawList(sim.World) {
		if cmd.Layer == component.LayerPlayer {
			fmt.Printf("player x=%.2f y=%.2f\n", cmd.Rect.X, cmd.Rect.Y)
		}
	}
	for typ, n := range counts {
		fmt.Printf("%s=%d\n", typ, n)
	}
}
