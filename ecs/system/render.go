package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
)

// DrawCommand is one filled rectangle to draw.
type DrawCommand struct {
	Rect  common.Rect
	Color color.RGBA
	Layer int
}

// PlayerColor returns the player's fill for the active power. Invincible
// cycles through hues driven by the elapsed seconds.
func PlayerColor(kind component.PowerKind, elapsed float64) color.RGBA {
	switch kind {
	case component.PowerInvincible:
		t := elapsed * 1000 / 100
		return color.RGBA{
			R: uint8(int((1+math.Sin(t))*127) % 256),
			G: uint8(int((1+math.Sin(t+2))*127) % 256),
			B: uint8(int((1+math.Sin(t+4))*127) % 256),
			A: 255,
		}
	case component.PowerFire:
		return common.ColorPlayerFire
	case component.PowerIce:
		return common.ColorIce
	case component.PowerJump:
		return common.ColorGold
	case component.PowerSlippery:
		return common.ColorSlippery
	}
	return common.ColorPlayer
}

// BuildDrawList returns the frame's rectangles sorted by layer, then by
// entity id. It only reads the world.
func BuildDrawList(w *ecs.World) []DrawCommand {
	if w == nil {
		return nil
	}

	elapsed := 0.0
	if c := worldClock(w); c != nil {
		elapsed = c.Elapsed
	}

	var cmds []DrawCommand
	ecs.ForEach3(w, component.SpriteComponent, component.TransformComponent, component.ColliderComponent,
		func(e ecs.Entity, s *component.Sprite, t *component.Transform, c *component.Collider) {
			cmd := DrawCommand{Rect: component.Bounds(t, c), Color: s.Color}
			if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
				cmd.Layer = layer.Index
			}
			if pw, ok := ecs.Get(w, e, component.PowerComponent); ok {
				cmd.Color = PlayerColor(pw.Kind, elapsed)
			}
			cmds = append(cmds, cmd)
		})

	sort.SliceStable(cmds, func(i, j int) bool {
		return cmds[i].Layer < cmds[j].Layer
	})
	return cmds
}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || screen == nil {
		return
	}

	screen.Fill(common.ColorBackground)
	for _, cmd := range BuildDrawList(w) {
		vector.FillRect(screen,
			float32(cmd.Rect.X), float32(cmd.Rect.Y),
			float32(cmd.Rect.Width), float32(cmd.Rect.Height),
			cmd.Color, false)
	}
}
