package component

import "github.com/jakecoffman/cp"

// RotationDrag maps a pointer drag onto the level root's angle. Angles are
// in degrees.
type RotationDrag struct {
	Sensitivity      float64
	MaxRotationSpeed float64
	Damping          float64
	SnapBackSpeed    float64
	UseLimits        bool
	MaxAngle         float64
	AutoSnapBack     bool

	Dragging  bool
	Target    float64
	Current   float64
	Velocity  float64
	LastPoint cp.Vector
}

var RotationDragComponent = NewComponent[RotationDrag]()

// LevelChild marks a dynamic body carried by the rotating level.
type LevelChild struct {
	DownForce      float64
	AngularDamping float64
}

var LevelChildComponent = NewComponent[LevelChild]()
