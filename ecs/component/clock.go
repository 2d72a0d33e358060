package component

// Clock carries frame timing for timer decay and time-varying colors.
type Clock struct {
	Frame   int
	Delta   float64
	Elapsed float64
}

var ClockComponent = NewComponentKind[Clock]()

// Advance moves the clock forward by one frame of dt seconds.
func (c *Clock) Advance(dt float64) {
	if c == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.Frame++
	c.Delta = dt
	c.Elapsed += dt
}
