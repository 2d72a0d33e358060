package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/miniplatformer/common"
	"golang.org/x/image/font/gofont/goregular"
)

const hudFontSize = 28

// HUD is the score readout in the top-left corner.
type HUD struct {
	ui    *ebitenui.UI
	score *widget.Text
	last  int
}

func NewHUD() (*HUD, error) {
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	var face ebtext.Face = &ebtext.GoTextFace{Source: src, Size: hudFontSize}

	score := widget.NewText(
		widget.TextOpts.Text(scoreLabel(0), &face, color.Color(common.ColorText)),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Left: 10}),
		)),
	)
	root.AddChild(score)

	return &HUD{ui: &ebitenui.UI{Container: root}, score: score}, nil
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// SetScore updates the label when the score changed.
func (h *HUD) SetScore(score int) {
	if score == h.last {
		return
	}
	h.last = score
	h.score.Label = scoreLabel(score)
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
