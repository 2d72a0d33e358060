package component

import "github.com/milk9111/miniplatformer/common"

// Collider is an axis-aligned box anchored at the Transform's top-left.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponentKind[Collider]()

// Bounds returns the world-space rectangle covered by t and c.
func Bounds(t *Transform, c *Collider) common.Rect {
	if t == nil || c == nil {
		return common.Rect{}
	}
	return common.Rect{X: t.X, Y: t.Y, Width: c.Width, Height: c.Height}
}

// SetRight moves t so the box's right edge sits at x.
func SetRight(t *Transform, c *Collider, x float64) { t.X = x - c.Width }

// SetBottom moves t so the box's bottom edge sits at y.
func SetBottom(t *Transform, c *Collider, y float64) { t.Y = y - c.Height }
