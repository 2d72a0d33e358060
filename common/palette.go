package common

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	ColorBackground = colornames.Skyblue
	ColorPlatform   = colornames.Saddlebrown
	ColorCoin       = colornames.Gold
	ColorEnemy      = color.RGBA{R: 80, G: 0, B: 80, A: 255}
	ColorText       = colornames.Black

	ColorFire       = color.RGBA{R: 255, G: 100, B: 0, A: 255}
	ColorIce        = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	ColorGold       = colornames.Gold
	ColorSlippery   = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	ColorInvincible = colornames.Magenta

	ColorPlayer     = colornames.Crimson
	ColorPlayerFire = colornames.Darkorange
)
