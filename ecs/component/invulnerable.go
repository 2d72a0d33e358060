package component

// Invulnerable holds the seconds left during which a side touch cannot kill
// the player.
type Invulnerable struct {
	Seconds float64
}

var InvulnerableComponent = NewComponentKind[Invulnerable]()

func (i *Invulnerable) Active() bool {
	return i != nil && i.Seconds > 0
}

// Tick counts down by dt and never goes below zero.
func (i *Invulnerable) Tick(dt float64) {
	if i == nil || i.Seconds <= 0 {
		return
	}
	i.Seconds -= dt
	if i.Seconds < 0 {
		i.Seconds = 0
	}
}
