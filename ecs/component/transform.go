package component

// Transform is the top-left corner of an entity in world units.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponentKind[Transform]()
