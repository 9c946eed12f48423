package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// rotationEpsilon is the angle gap in degrees below which the level is left alone.
const rotationEpsilon = 0.01

// RotationDragSystem turns pointer drags around the screen center into a
// target angle for the level.
type RotationDragSystem struct{}

func NewRotationDragSystem() *RotationDragSystem {
	return &RotationDragSystem{}
}

func (s *RotationDragSystem) Update(w *ecs.World) {
	ie, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, ie, component.InputComponent.Kind())
	if !ok {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.RotationDragComponent.Kind(), func(e ecs.Entity, r *component.RotationDrag) {
		DragRotation(r, *input, dt)
	})
}

// DragRotation applies one frame of pointer input to r. Pointer and
// ScreenCenter are y-up screen coordinates.
func DragRotation(r *component.RotationDrag, input component.Input, dt float64) {
	switch {
	case input.PointerPressed:
		r.Dragging = true
		r.LastPoint = input.Pointer
	case input.PointerReleased:
		r.Dragging = false
		if r.AutoSnapBack {
			r.Target = 0
		}
	}
	if !r.Dragging || input.Pointer == r.LastPoint {
		return
	}

	prev := r.LastPoint.Sub(input.ScreenCenter)
	curr := input.Pointer.Sub(input.ScreenCenter)
	delta := common.SignedAngle(prev, curr) * r.Sensitivity
	if r.MaxRotationSpeed > 0 {
		limit := r.MaxRotationSpeed * dt
		delta = common.Clamp(delta, -limit, limit)
	}
	r.Target += delta
	if r.UseLimits {
		r.Target = common.Clamp(r.Target, -r.MaxAngle, r.MaxAngle)
	}
	r.LastPoint = input.Pointer
}

// RotationSmoothingSystem eases the level root toward its target angle every
// physics tick and writes it as a kinematic angle.
type RotationSmoothingSystem struct{}

func NewRotationSmoothingSystem() *RotationSmoothingSystem {
	return &RotationSmoothingSystem{}
}

func (s *RotationSmoothingSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.RotationDragComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, r *component.RotationDrag, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}
		r.Current = common.Rad2Deg(bodyComp.Body.Angle())
		next, changed := SmoothRotation(r, dt)
		if !changed {
			return
		}
		r.Current = next
		bodyComp.Body.SetAngle(common.Deg2Rad(next))
	})
}

// SmoothRotation returns the next level angle in degrees. A drag eases with
// Damping, a snap back with SnapBackSpeed; anything else jumps to the target.
func SmoothRotation(r *component.RotationDrag, dt float64) (float64, bool) {
	if math.Abs(r.Current-r.Target) <= rotationEpsilon {
		r.Velocity = 0
		return r.Current, false
	}
	speed := 0.0
	switch {
	case r.Dragging:
		speed = r.Damping
	case r.AutoSnapBack:
		speed = r.SnapBackSpeed
	}
	if speed <= 0 {
		r.Velocity = 0
		return r.Target, true
	}
	return common.SmoothDamp(r.Current, r.Target, &r.Velocity, 1/speed, 0, dt), true
}

// StabilizeSystem keeps bodies carried by the rotating level from spinning
// up: a constant downward force and a per-tick angular velocity decay.
type StabilizeSystem struct{}

func NewStabilizeSystem() *StabilizeSystem {
	return &StabilizeSystem{}
}

func (s *StabilizeSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.LevelChildComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, child *component.LevelChild, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil || bodyComp.Kind != component.BodyDynamic {
			return
		}
		if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok && !actor.Alive() {
			return
		}
		Stabilize(bodyComp.Body, *child)
	})
}

func Stabilize(body component.Body, child component.LevelChild) {
	if child.DownForce != 0 {
		body.ApplyForce(cp.Vector{X: 0, Y: -child.DownForce})
	}
	if child.AngularDamping > 0 {
		body.SetAngularVelocity(body.AngularVelocity() * child.AngularDamping)
	}
}
