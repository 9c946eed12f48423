package component

import "github.com/jakecoffman/cp"

type MotionPhase int

const (
	MotionMovingForward MotionPhase = iota
	MotionMovingBackward
	MotionDelaying
)

func (p MotionPhase) String() string {
	switch p {
	case MotionMovingForward:
		return "moving_forward"
	case MotionMovingBackward:
		return "moving_backward"
	case MotionDelaying:
		return "delaying"
	}
	return "unknown"
}

// MotionCycle oscillates between Start and End with a delay at each end.
// Forward is the direction of the next (or current) move.
type MotionCycle struct {
	Start         cp.Vector
	End           cp.Vector
	Phase         MotionPhase
	Forward       bool
	Elapsed       float64
	MoveDuration  float64
	DelayDuration float64
	Enabled       bool

	// ToggleHazard drives Hazard.Active from Forward when a delay ends.
	ToggleHazard bool
	// RotationSpeed is a continuous self-rotation in degrees per second,
	// applied in every phase.
	RotationSpeed float64
	// BaseRotation is the placed rotation in radians; Spin accumulates
	// RotationSpeed on top of it.
	BaseRotation float64
	Spin         float64
}

var MotionCycleComponent = NewComponent[MotionCycle]()
