package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// ApplyAirDrag shapes the velocity of an airborne actor for one tick of dt
// seconds. Falling keeps its vertical speed; rising loses half as much
// vertically as it does horizontally.
func ApplyAirDrag(v cp.Vector, air component.AirMovement, dt float64) cp.Vector {
	if dt <= 0 {
		return v
	}
	terminal := math.Max(0, air.TerminalVelocity)
	if v.Y < -terminal {
		v.Y = -terminal
	}
	if air.HorizontalTerminal > 0 {
		v.X = common.Clamp(v.X, -air.HorizontalTerminal, air.HorizontalTerminal)
	}

	speed := v.Length()
	t := 0.0
	if terminal > 0 {
		t = common.Clamp01(speed / terminal)
	}
	curve := air.DragCurve
	if curve == nil {
		curve = common.EaseInOut
	}
	dragFactor := air.AirDrag * curve.Evaluate(t)

	if air.Braking && speed > air.BrakingThreshold {
		dragFactor += (speed - air.BrakingThreshold) * air.BrakingMultiplier * dt
	}

	v.X = common.Lerp(v.X, 0, common.Clamp01(dragFactor*dt))
	if v.Y >= 0 {
		v.Y = common.Lerp(v.Y, 0, common.Clamp01(dragFactor*0.5*dt))
	}
	return v
}

type AirMovementSystem struct{}

func NewAirMovementSystem() *AirMovementSystem {
	return &AirMovementSystem{}
}

func (s *AirMovementSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.AirMovementComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, actor *component.Actor, air *component.AirMovement, bodyComp *component.PhysicsBody) {
		if !actor.Alive() || actor.Grounded || !air.Enabled || bodyComp.Body == nil {
			return
		}
		bodyComp.Body.SetVelocity(ApplyAirDrag(bodyComp.Body.Velocity(), *air, dt))
	})
}
