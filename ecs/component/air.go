package component

import "github.com/milk9111/ninjaroll/common"

// AirMovement tunes velocity shaping while an actor is airborne.
type AirMovement struct {
	Enabled            bool
	AirDrag            float64
	TerminalVelocity   float64
	HorizontalTerminal float64
	DragCurve          common.Curve
	// CurveName is the tuning name of DragCurve, or the script file it
	// was compiled from.
	CurveName         string
	Braking           bool
	BrakingThreshold  float64
	BrakingMultiplier float64
}

var AirMovementComponent = NewComponent[AirMovement]()
