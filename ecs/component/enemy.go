package component

// Enemy patrols horizontally between optional bounds. A bound is only
// enforced when its Has flag is set.
type Enemy struct {
	LeftBound     float64
	RightBound    float64
	HasLeftBound  bool
	HasRightBound bool
}

var EnemyComponent = NewComponentKind[Enemy]()

// Step moves a box of width by vx and reflects it off whichever bound it
// crossed. It returns the new x and velocity.
func (e *Enemy) Step(x, width, vx float64) (float64, float64) {
	x += vx
	if e.HasLeftBound && x < e.LeftBound {
		x = e.LeftBound
		vx = -vx
	}
	if e.HasRightBound && x+width > e.RightBound {
		x = e.RightBound - width
		vx = -vx
	}
	return x, vx
}
