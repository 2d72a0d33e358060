package component

// DeathRequest marks the player as dead for this frame. The respawn system,
// which runs last, rebuilds the level and removes the marker.
type DeathRequest struct {
	Reason string
}

var DeathRequestComponent = NewComponentKind[DeathRequest]()

const (
	DeathReasonEnemy = "enemy"
	DeathReasonFall  = "fall"
)
