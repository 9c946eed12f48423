package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// InputSystem samples mouse, keyboard and the first gamepad. The right stick
// drives a virtual pointer on a circle around the screen center.
type InputSystem struct {
	stickDown bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const (
		stickDeadzone = 0.3
		stickRadius   = 200.0
	)

	center := cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2}
	mx, my := ebiten.CursorPosition()
	pointer := toYUp(float64(mx), float64(my))
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR)
	debug := inpututil.IsKeyJustPressed(ebiten.KeyF3)
	copyTuning := inpututil.IsKeyJustPressed(ebiten.KeyF6)

	stickDown := false
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone && !down {
			stickDown = true
			pointer = center.Add(common.Normalize(cp.Vector{X: rx, Y: -ry}).Mult(stickRadius))
		}
		pause = pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		restart = restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
	}
	if stickDown || i.stickDown {
		pressed = pressed || (stickDown && !i.stickDown)
		released = released || (!stickDown && i.stickDown)
		down = down || stickDown
	}
	i.stickDown = stickDown

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Pointer = pointer
		input.PointerDown = down
		input.PointerPressed = pressed
		input.PointerReleased = released
		input.ScreenCenter = center
		input.PausePressed = pause
		input.RestartPressed = restart
		input.DebugPressed = debug
		input.CopyPressed = copyTuning
	})
}

// toYUp converts an ebiten screen position to y-up screen space.
func toYUp(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: common.BaseHeight - y}
}
