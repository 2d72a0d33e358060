package common

// Playfield size in logical units. Projectiles despawn past the horizontal
// edges and the player dies once its top edge drops below BaseHeight.
const (
	BaseWidth  = 900
	BaseHeight = 600
	TargetTPS  = 60
)
