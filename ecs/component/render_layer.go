package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponentKind[RenderLayer]()

const (
	LayerPlatform = iota * 10
	LayerCoin
	LayerItem
	LayerEnemy
	LayerProjectile
	LayerPlayer
)
