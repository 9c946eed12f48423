package component

import "github.com/jakecoffman/cp"

// Patrol walks between two waypoints, waiting at each one.
type Patrol struct {
	PointA     cp.Vector
	PointB     cp.Vector
	Speed      float64
	WaitTime   float64
	StartRight bool

	TowardB     bool
	Waiting     bool
	WaitCounter float64
	Initialized bool
}

var PatrolComponent = NewComponent[Patrol]()
