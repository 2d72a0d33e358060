package component

import (
	"errors"
	"fmt"
)

var ErrUnknownPower = errors.New("component: unknown power kind")

// PowerKind identifies a timed power-up. The zero value means no power.
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerFire
	PowerIce
	PowerJump
	PowerSlippery
	PowerInvincible
)

// PowerKinds lists every real power in declaration order.
var PowerKinds = []PowerKind{PowerFire, PowerIce, PowerJump, PowerSlippery, PowerInvincible}

func (k PowerKind) String() string {
	switch k {
	case PowerNone:
		return "none"
	case PowerFire:
		return "fire"
	case PowerIce:
		return "ice"
	case PowerJump:
		return "jump"
	case PowerSlippery:
		return "slippery"
	case PowerInvincible:
		return "invincible"
	}
	return fmt.Sprintf("power(%d)", int(k))
}

// ParsePowerKind is the inverse of String for real powers.
func ParsePowerKind(s string) (PowerKind, error) {
	for _, k := range PowerKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return PowerNone, fmt.Errorf("%w: %q", ErrUnknownPower, s)
}

// Shoots reports whether the power lets the player fire projectiles.
func (k PowerKind) Shoots() bool {
	return k == PowerFire || k == PowerIce
}

// PowerEffect is the stat modifier a power applies on top of base stats.
type PowerEffect struct {
	SpeedScale  float64
	JumpScale   float64
	JumpEnabled bool
	KillOnTouch bool
}

// Effect returns the modifier for k. Invincible changes no stats; contact
// rules check the kind directly.
func (k PowerKind) Effect() (PowerEffect, bool) {
	switch k {
	case PowerFire, PowerIce:
		return PowerEffect{SpeedScale: 1, JumpScale: 1, JumpEnabled: true, KillOnTouch: true}, true
	case PowerJump:
		return PowerEffect{SpeedScale: 1, JumpScale: 2, JumpEnabled: true}, true
	case PowerSlippery:
		return PowerEffect{SpeedScale: 1.6, JumpScale: 1, JumpEnabled: false}, true
	case PowerInvincible:
		return PowerEffect{SpeedScale: 1, JumpScale: 1, JumpEnabled: true}, true
	}
	return PowerEffect{}, false
}

// Power is the player's active power and the seconds it has left.
type Power struct {
	Kind      PowerKind
	Remaining float64
}

var PowerComponent = NewComponentKind[Power]()

func (pw *Power) Active() bool {
	return pw != nil && pw.Kind != PowerNone
}

// Apply resets p to base stats and then applies kind for duration seconds,
// replacing any power already active.
func (pw *Power) Apply(p *Player, kind PowerKind, duration float64) error {
	effect, ok := kind.Effect()
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPower, int(kind))
	}

	p.ResetStats()
	p.Speed = p.BaseSpeed * effect.SpeedScale
	p.JumpPower = p.BaseJumpPower * effect.JumpScale
	p.JumpEnabled = effect.JumpEnabled
	p.CanKillOnTouch = effect.KillOnTouch

	pw.Kind = kind
	pw.Remaining = duration
	return nil
}

// Clear drops the power regardless of the time left.
func (pw *Power) Clear(p *Player) {
	pw.Kind = PowerNone
	pw.Remaining = 0
	p.ResetStats()
}

// Tick advances the power and invulnerability timers by dt seconds and
// reports whether the power ran out on this tick.
func (pw *Power) Tick(p *Player, inv *Invulnerable, dt float64) bool {
	expired := false
	if pw.Active() {
		pw.Remaining -= dt
		if pw.Remaining <= 0 {
			pw.Clear(p)
			expired = true
		}
	}
	inv.Tick(dt)
	return expired
}
