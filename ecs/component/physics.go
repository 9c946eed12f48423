package component

import "github.com/jakecoffman/cp"

// BodyKind selects how the physics system integrates an entity.
type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyStatic
	BodyKinematic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width/Height describe a box collider centered on the transform; Radius > 0
// switches to a circle.
type PhysicsBody struct {
	Body       Body
	Shape      *cp.Shape
	Kind       BodyKind
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Sensor     bool
	FixedAngle bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
