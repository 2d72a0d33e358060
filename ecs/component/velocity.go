package component

import "github.com/jakecoffman/cp"

// Velocity is expressed in world units per frame.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponentKind[Velocity]()
