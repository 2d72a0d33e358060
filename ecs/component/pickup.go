package component

// Item is a static power-up pickup.
type Item struct {
	Kind     PowerKind
	Duration float64
}

var ItemComponent = NewComponentKind[Item]()
