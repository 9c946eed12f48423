package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

type BounceOutcome int

const (
	// BounceSkipped means bouncing is off or still cooling down.
	BounceSkipped BounceOutcome = iota
	// BounceSoftStop removed the normal component without an impulse.
	BounceSoftStop
	// BounceApplied zeroed the velocity and produced an impulse.
	BounceApplied
)

func (o BounceOutcome) String() string {
	switch o {
	case BounceSoftStop:
		return "soft_stop"
	case BounceApplied:
		return "bounce"
	}
	return "skipped"
}

// BounceResult is what a wall contact does to an actor. Velocity replaces
// the body's velocity before Impulse is applied.
type BounceResult struct {
	Outcome     BounceOutcome
	Velocity    cp.Vector
	Impulse     cp.Vector
	Direction   cp.Vector
	ImpactSpeed float64
	Intensity   float64
	Magnitude   float64
}

// parallelThreshold is the minimum dot(direction, normal) a bounce may leave
// the wall with before it is pushed further out.
const parallelThreshold = 0.1

// ComputeBounce turns a wall contact into a soft stop or a reflected impulse.
// normal points away from the wall; velocity is the actor's velocity before
// the contact was resolved. state records the contact for the cooldown.
func ComputeBounce(velocity, normal cp.Vector, now float64, state *component.BounceState, tuning component.WallBounce) BounceResult {
	res := BounceResult{Outcome: BounceSkipped, Velocity: velocity}
	if !tuning.Enabled || state == nil {
		return res
	}
	if state.Bounced && now-state.LastBounceTime < tuning.Cooldown {
		return res
	}

	normal = common.Normalize(normal)
	state.LastWallNormal = normal

	impactSpeed := normal.Neg().Dot(velocity)
	res.ImpactSpeed = impactSpeed
	if impactSpeed < tuning.Deadzone && !tuning.Force {
		res.Outcome = BounceSoftStop
		res.Velocity = velocity.Add(normal.Mult(velocity.Dot(normal.Neg())))
		return res
	}
	if tuning.Force && impactSpeed < tuning.Deadzone {
		impactSpeed = tuning.Deadzone
	}

	intensity := common.Clamp01(common.InverseLerp(tuning.Deadzone, tuning.MaxBounceVelocity, impactSpeed))
	magnitude := common.Lerp(tuning.MinForce, tuning.MaxForce, intensity)

	dir := common.Reflect(common.Normalize(velocity), normal)
	if dir.Dot(normal) < parallelThreshold {
		dir = common.Normalize(dir.Add(normal.Mult(0.5)))
	}

	impulse := dir.Mult(magnitude * tuning.Multiplier)
	if tuning.UpwardAssist {
		impulse = impulse.Add(common.Up.Mult(tuning.UpwardForce * intensity))
	}

	state.LastBounceTime = now
	state.LastIntensity = intensity
	state.Bounced = true

	res.Outcome = BounceApplied
	res.Velocity = cp.Vector{}
	res.Impulse = impulse
	res.Direction = dir
	res.Intensity = intensity
	res.Magnitude = magnitude
	return res
}

// BounceOffWall runs the bounce model for a wall contact of e and applies the
// result to its body.
func BounceOffWall(w *ecs.World, e ecs.Entity, c component.Contact) BounceResult {
	tuning, ok := ecs.Get(w, e, component.WallBounceComponent.Kind())
	if !ok {
		return BounceResult{}
	}
	body, ok := BodyOf(w, e)
	if !ok {
		return BounceResult{}
	}
	state, ok := ecs.Get(w, e, component.BounceStateComponent.Kind())
	if !ok {
		state = &component.BounceState{}
		if err := ecs.Add(w, e, component.BounceStateComponent.Kind(), state); err != nil {
			return BounceResult{}
		}
	}

	res := ComputeBounce(c.Velocity, c.Normal, w.Now(), state, *tuning)
	switch res.Outcome {
	case BounceSoftStop:
		body.SetVelocity(res.Velocity)
	case BounceApplied:
		body.SetVelocity(res.Velocity)
		body.ApplyImpulse(res.Impulse)
		playSound(w, e, "wall_bounce", res.Intensity)
		fireTrigger(w, e, "Bounce")
		setAnimFloat(w, e, "BounceIntensity", res.Intensity)
		w.Events().Push(ecs.Event{Kind: ecs.EventBounce, Entity: e, Other: ecs.Entity(c.Other), Value: res.Intensity})
		if debugEnabled(w, e) {
			log.Printf("bounce: entity %d impact=%.2f force=%.2f dir=(%.2f, %.2f)", e, res.ImpactSpeed, res.Magnitude, res.Direction.X, res.Direction.Y)
		}
	}
	return res
}

func debugEnabled(w *ecs.World, e ecs.Entity) bool {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	return ok && actor.Debug
}
