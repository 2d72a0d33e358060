package component

import "github.com/milk9111/miniplatformer/common"

// Facing is the direction the player last moved in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns 1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Player holds the movement stats of the controllable character. Speed and
// JumpPower are the live values a power may modify; the Base values never
// change after construction.
type Player struct {
	Speed          float64
	JumpPower      float64
	BaseSpeed      float64
	BaseJumpPower  float64
	JumpEnabled    bool
	Facing         Facing
	OnGround       bool
	CanKillOnTouch bool
}

var PlayerComponent = NewComponentKind[Player]()

func NewPlayer(speed, jumpPower float64) *Player {
	return &Player{
		Speed:         speed,
		JumpPower:     jumpPower,
		BaseSpeed:     speed,
		BaseJumpPower: jumpPower,
		JumpEnabled:   true,
		Facing:        FacingRight,
	}
}

// ResetStats restores every power-derived field to its base value.
func (p *Player) ResetStats() {
	p.Speed = p.BaseSpeed
	p.JumpPower = p.BaseJumpPower
	p.JumpEnabled = true
	p.CanKillOnTouch = false
}

// HandleInput maps the frame's key snapshot onto horizontal velocity, facing
// and jump intent. Right wins when both directions are held.
func (p *Player) HandleInput(in *Input, v *Velocity) {
	if p == nil || in == nil || v == nil {
		return
	}

	v.X = 0
	if in.MoveLeft {
		v.X = -p.Speed
	}
	if in.MoveRight {
		v.X = p.Speed
	}

	switch common.Sign(v.X) {
	case 1:
		p.Facing = FacingRight
	case -1:
		p.Facing = FacingLeft
	}

	if in.Jump && p.OnGround && p.JumpEnabled {
		v.Y = -p.JumpPower
		p.OnGround = false
	}
}
