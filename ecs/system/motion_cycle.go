package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// MotionEvent reports the phase boundaries crossed by one step.
type MotionEvent uint8

const (
	// MotionArrived is set when a move reached its endpoint.
	MotionArrived MotionEvent = 1 << iota
	// MotionResumed is set when a delay ended and a move began.
	MotionResumed
)

func (e MotionEvent) Has(flag MotionEvent) bool {
	return e&flag != 0
}

// phaseEpsilon absorbs the rounding of accumulated tick deltas so ten steps
// of 0.1s complete a one second phase.
const phaseEpsilon = 1e-9

// StepMotionCycle advances m by dt seconds. Arrival snaps to the endpoint and
// drops any leftover time; a zero delay resumes in the same step.
func StepMotionCycle(m *component.MotionCycle, dt float64) MotionEvent {
	if m == nil || !m.Enabled {
		return 0
	}
	if dt < 0 {
		dt = 0
	}
	var ev MotionEvent
	m.Elapsed += dt

	switch m.Phase {
	case component.MotionDelaying:
		if m.Elapsed+phaseEpsilon >= m.DelayDuration {
			resumeMotion(m)
			ev |= MotionResumed
		}
	default:
		if m.Elapsed+phaseEpsilon >= m.MoveDuration {
			m.Phase = component.MotionDelaying
			m.Elapsed = 0
			m.Forward = !m.Forward
			ev |= MotionArrived
			if m.DelayDuration <= 0 {
				resumeMotion(m)
				ev |= MotionResumed
			}
		}
	}
	return ev
}

func resumeMotion(m *component.MotionCycle) {
	m.Elapsed = 0
	if m.Forward {
		m.Phase = component.MotionMovingForward
	} else {
		m.Phase = component.MotionMovingBackward
	}
}

// MotionPosition is where the cycle places its owner in the current phase.
func MotionPosition(m *component.MotionCycle) cp.Vector {
	progress := 1.0
	if m.MoveDuration > 0 {
		progress = common.Clamp01(m.Elapsed / m.MoveDuration)
	}
	switch m.Phase {
	case component.MotionMovingForward:
		return common.LerpVector(m.Start, m.End, progress)
	case component.MotionMovingBackward:
		return common.LerpVector(m.End, m.Start, progress)
	}
	// delaying sits at the endpoint the next move starts from
	if m.Forward {
		return m.Start
	}
	return m.End
}

// NewMotionCycle builds a cycle that moves distance along direction from
// start. A zero direction or distance never leaves start.
func NewMotionCycle(start, direction cp.Vector, distance, moveDuration, delayDuration float64, startActive bool) component.MotionCycle {
	end := start.Add(common.Normalize(direction).Mult(distance))
	m := component.MotionCycle{
		Start:         start,
		End:           end,
		Phase:         component.MotionMovingForward,
		Forward:       true,
		MoveDuration:  moveDuration,
		DelayDuration: delayDuration,
		Enabled:       true,
	}
	if startActive {
		m.Phase = component.MotionDelaying
	}
	return m
}

type MotionCycleSystem struct{}

func NewMotionCycleSystem() *MotionCycleSystem {
	return &MotionCycleSystem{}
}

func (s *MotionCycleSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.MotionCycleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.MotionCycle, t *component.Transform) {
		ev := StepMotionCycle(m, dt)
		if ev.Has(MotionResumed) {
			if m.ToggleHazard {
				if hz, ok := ecs.Get(w, e, component.HazardComponent.Kind()); ok {
					hz.Active = m.Forward
				}
			}
			setAnimBool(w, e, "IsActive", m.Forward)
			playSound(w, e, "move", 1)
		}

		body, hasBody := BodyOf(w, e)
		pivot, angle := frameOf(w, e)
		if m.Enabled {
			pos := toFrame(pivot, angle, MotionPosition(m))
			t.X, t.Y = pos.X, pos.Y
			if hasBody {
				body.SetPosition(pos)
				body.SetVelocity(cp.Vector{})
			}
		}
		if m.RotationSpeed != 0 || angle != 0 {
			m.Spin += common.Deg2Rad(m.RotationSpeed * dt)
			t.Rotation = m.BaseRotation + m.Spin + angle
			if hasBody {
				body.SetAngle(t.Rotation)
			}
		}
	})
}
