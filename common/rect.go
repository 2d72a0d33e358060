package common

// Rect is an axis-aligned rectangle with a top-left origin and y pointing down.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether the two rectangles overlap. Rectangles that only
// share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Valid reports whether both dimensions are positive.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}
