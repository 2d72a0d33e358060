package component

import "image/color"

// Sprite is a flat-colored rectangle the size of the entity's collider.
type Sprite struct {
	Color color.RGBA
}

var SpriteComponent = NewComponentKind[Sprite]()
