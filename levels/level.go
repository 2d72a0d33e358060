package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/miniplatformer/common"
	"github.com/milk9111/miniplatformer/ecs/component"
)

var ErrInvalidLevel = errors.New("levels: invalid level")

// ItemSpawn places a power-up pickup.
type ItemSpawn struct {
	Rect     common.Rect
	Kind     component.PowerKind
	Duration float64
}

// EnemySpawn places a patrolling enemy. A nil bound leaves that side open.
type EnemySpawn struct {
	Rect       common.Rect
	VelocityX  float64
	LeftBound  *float64
	RightBound *float64
}

// PlayerSpawn places the player and sets its base stats.
type PlayerSpawn struct {
	Rect      common.Rect
	Speed     float64
	JumpPower float64
}

// Level is the static platform layout plus the spawn tables used at start
// and on every respawn.
type Level struct {
	Name      string
	Width     float64
	Height    float64
	Platforms []common.Rect
	Player    PlayerSpawn
	Coins     []common.Rect
	Items     []ItemSpawn
	Enemies   []EnemySpawn
}

func bound(v float64) *float64 { return &v }

// Default returns a fresh copy of the built-in level.
func Default() *Level {
	const w, h = common.BaseWidth, common.BaseHeight
	return &Level{
		Name:   "meadow",
		Width:  w,
		Height: h,
		Platforms: []common.Rect{
			{X: 0, Y: h - 40, Width: w, Height: 40},
			{X: 100, Y: 460, Width: 200, Height: 20},
			{X: 380, Y: 360, Width: 180, Height: 20},
			{X: 600, Y: 280, Width: 220, Height: 20},
			{X: 250, Y: 520, Width: 120, Height: 20},
			{X: 480, Y: 520, Width: 80, Height: 20},
		},
		Player: PlayerSpawn{
			Rect:      common.Rect{X: 50, Y: h - 90, Width: 40, Height: 50},
			Speed:     5,
			JumpPower: 14,
		},
		Coins: []common.Rect{
			{X: 150, Y: 420, Width: 12, Height: 12},
			{X: 420, Y: 320, Width: 12, Height: 12},
			{X: 650, Y: 240, Width: 12, Height: 12},
			{X: 270, Y: 480, Width: 12, Height: 12},
		},
		Items: []ItemSpawn{
			{Rect: common.Rect{X: 200, Y: 420, Width: 16, Height: 16}, Kind: component.PowerFire, Duration: 8},
			{Rect: common.Rect{X: 440, Y: 300, Width: 16, Height: 16}, Kind: component.PowerIce, Duration: 8},
			{Rect: common.Rect{X: 680, Y: 220, Width: 16, Height: 16}, Kind: component.PowerJump, Duration: 8},
			{Rect: common.Rect{X: 300, Y: 480, Width: 16, Height: 16}, Kind: component.PowerSlippery, Duration: 8},
			{Rect: common.Rect{X: 520, Y: 500, Width: 16, Height: 16}, Kind: component.PowerInvincible, Duration: 8},
		},
		Enemies: []EnemySpawn{
			{
				Rect:       common.Rect{X: 420, Y: h - 80, Width: 40, Height: 40},
				VelocityX:  2,
				LeftBound:  bound(400),
				RightBound: bound(760),
			},
		},
	}
}

// Validate checks that every shape has a positive size, every item a known
// power and a positive duration, and every patrol range is ordered.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil level", ErrInvalidLevel)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: playfield %vx%v", ErrInvalidLevel, l.Width, l.Height)
	}
	for i, p := range l.Platforms {
		if !p.Valid() {
			return fmt.Errorf("%w: platform %d has size %vx%v", ErrInvalidLevel, i, p.Width, p.Height)
		}
	}
	if !l.Player.Rect.Valid() {
		return fmt.Errorf("%w: player has size %vx%v", ErrInvalidLevel, l.Player.Rect.Width, l.Player.Rect.Height)
	}
	for i, c := range l.Coins {
		if !c.Valid() {
			return fmt.Errorf("%w: coin %d has size %vx%v", ErrInvalidLevel, i, c.Width, c.Height)
		}
	}
	for i, it := range l.Items {
		if !it.Rect.Valid() {
			return fmt.Errorf("%w: item %d has size %vx%v", ErrInvalidLevel, i, it.Rect.Width, it.Rect.Height)
		}
		if _, ok := it.Kind.Effect(); !ok {
			return fmt.Errorf("%w: item %d has kind %v", ErrInvalidLevel, i, it.Kind)
		}
		if it.Duration <= 0 {
			return fmt.Errorf("%w: item %d has duration %v", ErrInvalidLevel, i, it.Duration)
		}
	}
	for i, e := range l.Enemies {
		if !e.Rect.Valid() {
			return fmt.Errorf("%w: enemy %d has size %vx%v", ErrInvalidLevel, i, e.Rect.Width, e.Rect.Height)
		}
		if e.LeftBound != nil && e.RightBound != nil && *e.RightBound-*e.LeftBound < e.Rect.Width {
			return fmt.Errorf("%w: enemy %d patrol [%v,%v] narrower than its width", ErrInvalidLevel, i, *e.LeftBound, *e.RightBound)
		}
	}
	return nil
}
