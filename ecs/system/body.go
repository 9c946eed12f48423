package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// cpBody adapts a Chipmunk body and its shapes to component.Body. Static
// colliders have no body of their own; their adapter only toggles shapes.
type cpBody struct {
	body    *cp.Body
	shapes  []*cp.Shape
	filters []cp.ShapeFilter
	mass    float64
	moment  float64
	frozen  bool
}

var _ component.Body = (*cpBody)(nil)

func newCPBody(body *cp.Body, shapes []*cp.Shape, filters []cp.ShapeFilter) *cpBody {
	b := &cpBody{body: body, shapes: shapes, filters: filters}
	if body != nil {
		b.mass = body.Mass()
		b.moment = body.Moment()
	}
	return b
}

func (b *cpBody) Position() cp.Vector {
	if b.body == nil {
		return cp.Vector{}
	}
	return b.body.Position()
}

func (b *cpBody) SetPosition(p cp.Vector) {
	if b.body != nil {
		b.body.SetPosition(p)
	}
}

func (b *cpBody) Velocity() cp.Vector {
	if b.body == nil {
		return cp.Vector{}
	}
	return b.body.Velocity()
}

func (b *cpBody) SetVelocity(v cp.Vector) {
	if b.body != nil {
		b.body.SetVelocityVector(v)
	}
}

func (b *cpBody) Angle() float64 {
	if b.body == nil {
		return 0
	}
	return b.body.Angle()
}

func (b *cpBody) SetAngle(a float64) {
	if b.body != nil {
		b.body.SetAngle(a)
	}
}

func (b *cpBody) AngularVelocity() float64 {
	if b.body == nil {
		return 0
	}
	return b.body.AngularVelocity()
}

func (b *cpBody) SetAngularVelocity(w float64) {
	if b.body != nil {
		b.body.SetAngularVelocity(w)
	}
}

func (b *cpBody) Mass() float64 {
	if b.body == nil {
		return 0
	}
	if b.frozen {
		return b.mass
	}
	return b.body.Mass()
}

// ApplyImpulse changes velocity by j/mass through the center of gravity.
func (b *cpBody) ApplyImpulse(j cp.Vector) {
	if b.body == nil || b.frozen {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(j, b.body.Position())
}

func (b *cpBody) ApplyForce(f cp.Vector) {
	if b.body == nil || b.frozen {
		return
	}
	b.body.ApplyForceAtWorldPoint(f, b.body.Position())
}

// SetFrozen turns a dynamic body kinematic and back. Mass and moment are
// restored on thaw.
func (b *cpBody) SetFrozen(frozen bool) {
	if b.body == nil || b.frozen == frozen {
		return
	}
	if b.body.GetType() != cp.BODY_DYNAMIC && !b.frozen {
		return
	}
	b.frozen = frozen
	if frozen {
		b.body.SetVelocity(0, 0)
		b.body.SetAngularVelocity(0)
		b.body.SetType(cp.BODY_KINEMATIC)
		return
	}
	b.body.SetType(cp.BODY_DYNAMIC)
	b.body.SetMass(b.mass)
	b.body.SetMoment(b.moment)
}

func (b *cpBody) SetCollisionEnabled(enabled bool) {
	for i, shape := range b.shapes {
		if shape == nil {
			continue
		}
		if enabled && i < len(b.filters) {
			shape.SetFilter(b.filters[i])
			continue
		}
		shape.SetFilter(cp.ShapeFilter{Group: 0, Categories: 0, Mask: 0})
	}
}
