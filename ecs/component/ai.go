package component

// Patrol binds an enemy to the script that moves it each frame.
type Patrol struct {
	ScriptPath string
}

var PatrolComponent = NewComponentKind[Patrol]()
