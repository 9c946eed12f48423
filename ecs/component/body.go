package component

//go:generate go tool mockgen -destination=./mocks/body_mock.go -package=mocks . Body

import "github.com/jakecoffman/cp"

// Body is the kinematic boundary to the physics engine. Systems compute
// velocities and impulses and hand them to the body; integration stays in
// the engine.
type Body interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	ApplyImpulse(j cp.Vector)
	ApplyForce(f cp.Vector)
	Angle() float64
	SetAngle(radians float64)
	AngularVelocity() float64
	SetAngularVelocity(w float64)
	Mass() float64
	// SetFrozen switches the body between dynamic and kinematic integration.
	SetFrozen(frozen bool)
	// SetCollisionEnabled toggles every shape of the body in and out of the
	// collision pipeline.
	SetCollisionEnabled(enabled bool)
}
